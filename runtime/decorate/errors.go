package decorate

import "errors"

// Validation errors raised by the decoration combinators. Every failure is
// synchronous and occurs before the offending value takes effect; a
// decorator that errors or returns an invalid replacement leaves nothing
// applied after it.
var (
	// ErrInvalidConstructor indicates a constructor target that is nil or
	// carries no callable.
	ErrInvalidConstructor = errors.New("decorate: invalid constructor")

	// ErrInvalidDecorator indicates a nil entry in a decorator list.
	ErrInvalidDecorator = errors.New("decorate: invalid decorator")

	// ErrInvalidReplacement indicates a decorator return value that is
	// present but not a valid replacement for what was decorated.
	ErrInvalidReplacement = errors.New("decorate: invalid decorator return value")

	// ErrInvalidDescriptor indicates a property descriptor that mixes the
	// data form and the accessor form.
	ErrInvalidDescriptor = errors.New("decorate: invalid property descriptor")
)
