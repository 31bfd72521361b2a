package decorate

import (
	"fmt"

	"github.com/ornament-lang/ornament/runtime/metadata"
)

// ClassDecorator transforms a constructor. Returning nil keeps the current
// constructor; a non-nil return replaces it for the decorators that run
// after it and becomes the final result.
type ClassDecorator func(ctor *Constructor) (*Constructor, error)

// MemberDecorator transforms the property descriptor of one member of a
// target. Returning nil keeps the current descriptor.
type MemberDecorator func(target any, member metadata.Key, desc *Descriptor) (*Descriptor, error)

// DecorateClass applies decorators to ctor in reverse list order (the last
// decorator runs first), threading each non-nil replacement into the next
// decorator. If every decorator returns nil the original constructor is
// returned unchanged.
//
// The list is validated before any decorator runs; a decorator that errors
// or returns a replacement without a callable factory aborts the fold with
// nothing further applied.
func DecorateClass(decorators []ClassDecorator, ctor *Constructor) (*Constructor, error) {
	if !constructorLike(ctor) {
		return nil, fmt.Errorf("%w: decoration target is not constructor-like", ErrInvalidConstructor)
	}
	if err := validateList(len(decorators), func(i int) bool { return decorators[i] == nil }); err != nil {
		return nil, err
	}

	current := ctor
	for i := len(decorators) - 1; i >= 0; i-- {
		replacement, err := decorators[i](current)
		if err != nil {
			return nil, err
		}
		if replacement == nil {
			continue
		}
		if !constructorLike(replacement) {
			return nil, fmt.Errorf("%w: decorator %d returned a constructor without a callable factory",
				ErrInvalidReplacement, i)
		}
		current = replacement
	}
	return current, nil
}

// DecorateMember applies decorators to the (target, member, descriptor)
// triple in reverse list order, threading each non-nil replacement
// descriptor into the next decorator. The final descriptor is returned and
// may be nil when none was supplied and no decorator produced one.
//
// target must be a valid metadata target, member must coerce to a property
// key (the no-member sentinel is rejected), and desc, when supplied, must
// be a valid descriptor. All validation happens before any decorator runs.
func DecorateMember(decorators []MemberDecorator, target any, member any, desc *Descriptor) (*Descriptor, error) {
	if err := metadata.ValidateTarget(target); err != nil {
		return nil, err
	}
	key, err := metadata.ToKey(member)
	if err != nil {
		return nil, err
	}
	if key.IsNoMember() {
		return nil, fmt.Errorf("%w: member decoration requires a member key", metadata.ErrInvalidMemberKey)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if err := validateList(len(decorators), func(i int) bool { return decorators[i] == nil }); err != nil {
		return nil, err
	}

	current := desc
	for i := len(decorators) - 1; i >= 0; i-- {
		replacement, err := decorators[i](target, key, current)
		if err != nil {
			return nil, err
		}
		if replacement == nil {
			continue
		}
		if err := replacement.Validate(); err != nil {
			return nil, fmt.Errorf("%w: decorator %d: %v", ErrInvalidReplacement, i, err)
		}
		current = replacement
	}
	return current, nil
}

func validateList(n int, isNil func(int) bool) error {
	for i := 0; i < n; i++ {
		if isNil(i) {
			return fmt.Errorf("%w: decorator %d is nil", ErrInvalidDecorator, i)
		}
	}
	return nil
}
