package metadata

import "errors"

// Validation errors returned by store operations. All failures are
// synchronous and raised before any registry state is mutated; absence of
// metadata is reported through the ok result, never as an error.
var (
	// ErrInvalidTarget indicates a value that cannot serve as a metadata
	// target because it has no usable identity (see ValidateTarget).
	ErrInvalidTarget = errors.New("metadata: invalid target")

	// ErrInvalidMemberKey indicates a member key that cannot be coerced
	// to a property name or symbol (see ToKey).
	ErrInvalidMemberKey = errors.New("metadata: invalid member key")

	// ErrInvalidMetadataKey indicates a metadata key whose type is not
	// comparable and therefore cannot be stored or looked up.
	ErrInvalidMetadataKey = errors.New("metadata: invalid metadata key")
)
