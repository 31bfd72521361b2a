package metadata

import "reflect"

// ParentResolver produces the logical parent of a target for chain-walking
// reads (Has, Get, Keys). The relationship it reports must be acyclic: the
// store walks it with unbounded recursion and a cycle causes non-termination.
//
// Resolvers must not call back into the registry they are installed on.
type ParentResolver interface {
	// ParentOf returns the target's parent, or ok=false when the target
	// is a chain root.
	ParentOf(target any) (parent any, ok bool)
}

// ParentCarrier is implemented by targets that carry their own inheritance
// link, such as decorate.Constructor. The default resolver consults it
// before falling back to reflective recovery.
type ParentCarrier interface {
	// MetadataParent returns the carrier's declared parent, or ok=false
	// when none was declared.
	MetadataParent() (parent any, ok bool)
}

// defaultResolver reconstructs the inheritance link for targets that do not
// declare one explicitly:
//
//   - a ParentCarrier reports its own parent (a carrier returning itself
//     is treated as a root, since a self-link would cycle)
//   - a pointer-to-struct instance chains to its reflect.Type
//   - a pointer-to-struct type chains to its element type
//   - a struct type chains to the type of its first embedded struct field
//
// Embedded-field recovery is a heuristic: it assumes the first embedded
// struct is the "extends" relationship, which is the convention the
// Ornament front end compiles to. Callers with other conventions install
// their own resolver or declare parents explicitly via SetParent.
type defaultResolver struct{}

func (defaultResolver) ParentOf(target any) (any, bool) {
	if c, ok := target.(ParentCarrier); ok {
		parent, ok := c.MetadataParent()
		if !ok || parent == nil || parent == target {
			return nil, false
		}
		return parent, true
	}

	if t, ok := target.(reflect.Type); ok {
		return embeddedParent(t)
	}

	// Instances chain to their type, the way an object chains to the
	// class that produced it.
	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Ptr && rv.Elem().Kind() == reflect.Struct {
		return rv.Type(), true
	}

	return nil, false
}

// embeddedParent recovers the inheritance predecessor of a type. A pointer
// type's parent is its element type; a struct type's parent is its first
// embedded struct field. A type that embeds itself through a pointer
// (type Node struct{ *Node }) is a root, not its own parent.
func embeddedParent(t reflect.Type) (any, bool) {
	if t.Kind() == reflect.Ptr {
		if t.Elem().Kind() == reflect.Struct {
			return t.Elem(), true
		}
		return nil, false
	}
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() != reflect.Struct {
			continue
		}
		if ft == t {
			return nil, false
		}
		return ft, true
	}
	return nil, false
}
