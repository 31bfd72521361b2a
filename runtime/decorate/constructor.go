package decorate

import (
	"fmt"
	"reflect"
)

// Constructor is the unit of class decoration: a named factory bound to the
// type it produces. The front end allocates one Constructor per class; its
// pointer identity is what class-level metadata attaches to.
//
// Parent is the explicit inheritance link. It is declared by the front end
// (compiled from the source-level extends clause) rather than reconstructed
// from the produced type's shape, so unrelated types that happen to share a
// layout can never be mistaken for ancestors.
type Constructor struct {
	Name   string
	Type   reflect.Type
	Func   any
	Parent *Constructor
}

// NewConstructor wraps a factory function. fn must be callable and must
// return at least one value; the first return type becomes the produced
// type.
func NewConstructor(name string, fn any) (*Constructor, error) {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T is not callable", ErrInvalidConstructor, fn)
	}
	if rv.Type().NumOut() == 0 {
		return nil, fmt.Errorf("%w: %s produces no value", ErrInvalidConstructor, rv.Type())
	}
	return &Constructor{Name: name, Type: rv.Type().Out(0), Func: fn}, nil
}

// Extend records parent as the explicit inheritance link and returns c for
// chaining. A self-reference is ignored rather than recorded, since it
// would cycle the metadata chain.
func (c *Constructor) Extend(parent *Constructor) *Constructor {
	if parent != c {
		c.Parent = parent
	}
	return c
}

// MetadataParent implements metadata.ParentCarrier.
func (c *Constructor) MetadataParent() (any, bool) {
	if c.Parent == nil || c.Parent == c {
		return nil, false
	}
	return c.Parent, true
}

// Call invokes the underlying factory with args and returns its first
// result. nil arguments become the zero value of the parameter type.
func (c *Constructor) Call(args ...any) (any, error) {
	if !constructorLike(c) {
		return nil, fmt.Errorf("%w: no callable factory", ErrInvalidConstructor)
	}
	fn := reflect.ValueOf(c.Func)
	ft := fn.Type()

	if ft.IsVariadic() {
		if len(args) < ft.NumIn()-1 {
			return nil, fmt.Errorf("%w: %s requires at least %d arguments, got %d",
				ErrInvalidConstructor, ft, ft.NumIn()-1, len(args))
		}
	} else if len(args) != ft.NumIn() {
		return nil, fmt.Errorf("%w: %s requires %d arguments, got %d",
			ErrInvalidConstructor, ft, ft.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramType(ft, i)
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("%w: argument %d: %s is not assignable to %s",
				ErrInvalidConstructor, i, av.Type(), pt)
		}
		in[i] = av
	}

	out := fn.Call(in)
	return out[0].Interface(), nil
}

func (c *Constructor) String() string {
	if c == nil {
		return "Constructor(<nil>)"
	}
	return fmt.Sprintf("Constructor(%s)", c.Name)
}

// paramType returns the declared type of the i-th argument, unrolling the
// variadic tail.
func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

// constructorLike reports whether c can stand in as a constructor: non-nil
// with a callable factory.
func constructorLike(c *Constructor) bool {
	if c == nil || c.Func == nil {
		return false
	}
	rv := reflect.ValueOf(c.Func)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}
