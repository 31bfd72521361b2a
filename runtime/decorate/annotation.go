package decorate

import "github.com/ornament-lang/ornament/runtime/metadata"

// Annotation is the decorator produced by Metadata: applied at class level
// it writes one entry onto the constructor, applied at member level it
// writes one entry onto (target, member). It never replaces what it
// decorates. The Class and Member methods are valid ClassDecorator and
// MemberDecorator values, so one annotation works in either variant.
type Annotation struct {
	key      any
	value    any
	registry *metadata.Registry
}

// Metadata returns an annotation bound to the default registry.
//
// Example usage:
//
//	ctor, _ := decorate.NewConstructor("Widget", NewWidget)
//	_, err := decorate.DecorateClass([]decorate.ClassDecorator{
//		decorate.Metadata("design:role", "container").Class,
//	}, ctor)
//
//	role, ok, _ := metadata.GetMetadata("design:role", ctor)
func Metadata(key, value any) Annotation {
	return Annotation{key: key, value: value}
}

// MetadataIn returns an annotation bound to an explicit registry.
func MetadataIn(r *metadata.Registry, key, value any) Annotation {
	return Annotation{key: key, value: value, registry: r}
}

// Class writes the annotation onto the constructor and returns no
// replacement.
func (a Annotation) Class(ctor *Constructor) (*Constructor, error) {
	if !constructorLike(ctor) {
		return nil, ErrInvalidConstructor
	}
	if err := a.store().Define(a.key, a.value, ctor, metadata.NoMember); err != nil {
		return nil, err
	}
	return nil, nil
}

// Member writes the annotation onto (target, member) and returns no
// replacement descriptor.
func (a Annotation) Member(target any, member metadata.Key, desc *Descriptor) (*Descriptor, error) {
	if err := a.store().Define(a.key, a.value, target, member); err != nil {
		return nil, err
	}
	return nil, nil
}

// store resolves the registry lazily so annotations constructed before a
// test's metadata.Reset still write to the current default registry.
func (a Annotation) store() *metadata.Registry {
	if a.registry != nil {
		return a.registry
	}
	return metadata.Default()
}
