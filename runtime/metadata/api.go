package metadata

import "fmt"

// defaultRegistry is the process-wide registry used by the package-level
// functions. Code that needs isolation (per-test, per-tenant) constructs
// its own registry via New and calls its methods directly.
var defaultRegistry = New()

// Default returns the process-wide registry backing the package-level
// functions.
func Default() *Registry {
	return defaultRegistry
}

// Reset replaces the default registry with a fresh one (used for testing).
// Not safe to call concurrently with other package-level functions.
func Reset() {
	defaultRegistry = New()
}

// optionalKey normalizes the trailing optional member argument accepted by
// the package-level functions: absent means the target itself.
func optionalKey(member []any) (Key, error) {
	switch len(member) {
	case 0:
		return NoMember, nil
	case 1:
		return ToKey(member[0])
	default:
		return Key{}, fmt.Errorf("%w: at most one member key may be supplied", ErrInvalidMemberKey)
	}
}

// DefineMetadata inserts or overwrites a metadata entry on target, or on
// the named member of target when a member key is supplied.
//
// Example usage:
//
//	widget := &Widget{}
//	metadata.DefineMetadata("design:role", "container", widget)
//	metadata.DefineMetadata("design:type", "string", widget, "title")
func DefineMetadata(key, value any, target any, member ...any) error {
	k, err := optionalKey(member)
	if err != nil {
		return err
	}
	return defaultRegistry.Define(key, value, target, k)
}

// HasMetadata reports whether key is defined on (target, member) or
// anywhere up the target's parent chain.
func HasMetadata(key, target any, member ...any) (bool, error) {
	k, err := optionalKey(member)
	if err != nil {
		return false, err
	}
	return defaultRegistry.Has(key, target, k)
}

// HasOwnMetadata reports whether key is defined directly on
// (target, member), ignoring the parent chain.
func HasOwnMetadata(key, target any, member ...any) (bool, error) {
	k, err := optionalKey(member)
	if err != nil {
		return false, err
	}
	return defaultRegistry.HasOwn(key, target, k)
}

// GetMetadata returns the value for key on (target, member), consulting the
// parent chain. ok is false when the chain holds no entry.
func GetMetadata(key, target any, member ...any) (any, bool, error) {
	k, err := optionalKey(member)
	if err != nil {
		return nil, false, err
	}
	return defaultRegistry.Get(key, target, k)
}

// GetOwnMetadata returns the value for key defined directly on
// (target, member), ignoring the parent chain.
func GetOwnMetadata(key, target any, member ...any) (any, bool, error) {
	k, err := optionalKey(member)
	if err != nil {
		return nil, false, err
	}
	return defaultRegistry.GetOwn(key, target, k)
}

// GetMetadataKeys returns the metadata keys visible on (target, member):
// own keys first in insertion order, then inherited keys not already seen.
func GetMetadataKeys(target any, member ...any) ([]any, error) {
	k, err := optionalKey(member)
	if err != nil {
		return nil, err
	}
	return defaultRegistry.Keys(target, k)
}

// GetOwnMetadataKeys returns the metadata keys defined directly on
// (target, member) in insertion order.
func GetOwnMetadataKeys(target any, member ...any) ([]any, error) {
	k, err := optionalKey(member)
	if err != nil {
		return nil, err
	}
	return defaultRegistry.OwnKeys(target, k)
}

// DeleteMetadata removes the entry for key defined directly on
// (target, member) and reports whether a deletion occurred.
func DeleteMetadata(key, target any, member ...any) (bool, error) {
	k, err := optionalKey(member)
	if err != nil {
		return false, err
	}
	return defaultRegistry.Delete(key, target, k)
}

// SetParent declares an explicit inheritance link on the default registry.
func SetParent(child, parent any) error {
	return defaultRegistry.SetParent(child, parent)
}

// Unregister removes all metadata for target from the default registry.
func Unregister(target any) error {
	return defaultRegistry.Unregister(target)
}
