package metadata

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/google/uuid"
)

// Symbol is a unique member key token. Two symbols are never equal, even
// when created with the same description: identity is the pointer itself.
// The uuid exists only to give log output and debug dumps a stable handle.
type Symbol struct {
	id          uuid.UUID
	description string
}

// NewSymbol creates a fresh symbol. The description is informational and
// carries no identity.
func NewSymbol(description string) *Symbol {
	return &Symbol{id: uuid.New(), description: description}
}

// Description returns the informational description the symbol was created with.
func (s *Symbol) Description() string { return s.description }

// ID returns the symbol's debug identifier.
func (s *Symbol) ID() uuid.UUID { return s.id }

func (s *Symbol) String() string {
	return fmt.Sprintf("Symbol(%s)", s.description)
}

// Key identifies a member of a target: a property name, a symbol, or the
// zero Key meaning the target itself (no member). Keys are comparable and
// are used directly as map keys, so a symbol key and a string key with the
// same text never collide.
type Key struct {
	name string
	sym  *Symbol
	str  bool // distinguishes StringKey("") from the no-member sentinel
}

// NoMember is the sentinel member key addressing target-level metadata.
var NoMember = Key{}

// StringKey returns the member key for a named property.
func StringKey(name string) Key { return Key{name: name, str: true} }

// SymbolKey returns the member key for a symbol-named property.
func SymbolKey(sym *Symbol) Key { return Key{sym: sym} }

// IsNoMember reports whether k addresses the target itself.
func (k Key) IsNoMember() bool { return k == NoMember }

// Name returns the property name for string keys, or the empty string.
func (k Key) Name() string { return k.name }

// Symbol returns the symbol for symbol keys.
func (k Key) Symbol() (*Symbol, bool) { return k.sym, k.sym != nil }

func (k Key) String() string {
	switch {
	case k.sym != nil:
		return k.sym.String()
	case k.str:
		return k.name
	default:
		return "<target>"
	}
}

// ToKey coerces an arbitrary value to a member Key. Key, *Symbol and string
// values pass through unchanged. Everything else goes through an explicit
// two-step coercion: a stringify step (fmt.Stringer), then a value-of step
// (primitive bool/integer/float kinds rendered to their canonical text).
// Values that survive neither step are rejected with ErrInvalidMemberKey.
func ToKey(v any) (Key, error) {
	switch k := v.(type) {
	case Key:
		return k, nil
	case *Symbol:
		// Checked before fmt.Stringer: symbols keep their identity and
		// must not collapse to their rendered text.
		if k == nil {
			return Key{}, fmt.Errorf("%w: nil symbol", ErrInvalidMemberKey)
		}
		return SymbolKey(k), nil
	case string:
		return StringKey(k), nil
	case nil:
		return Key{}, fmt.Errorf("%w: nil", ErrInvalidMemberKey)
	}

	if s, ok := v.(fmt.Stringer); ok {
		return StringKey(s.String()), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return StringKey(strconv.FormatBool(rv.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return StringKey(strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return StringKey(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return StringKey(strconv.FormatFloat(rv.Float(), 'g', -1, 64)), nil
	}

	return Key{}, fmt.Errorf("%w: cannot coerce %T to a property key", ErrInvalidMemberKey, v)
}

// ValidateTarget reports whether v can serve as a metadata target. Targets
// are stored and compared by identity, so only values with a usable
// identity are accepted: pointers, channels, unsafe pointers, and
// reflect.Type values. Funcs, maps and slices are not comparable in Go and
// plain values have no identity at all; both are rejected.
func ValidateTarget(v any) error {
	if v == nil {
		return fmt.Errorf("%w: nil", ErrInvalidTarget)
	}
	if _, ok := v.(reflect.Type); ok {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return fmt.Errorf("%w: nil %T", ErrInvalidTarget, v)
		}
		return nil
	}
	return fmt.Errorf("%w: %T has no identity (use a pointer or a reflect.Type)", ErrInvalidTarget, v)
}

// validateMetadataKey rejects metadata keys whose type cannot be compared,
// since they could neither be stored in nor retrieved from a map.
func validateMetadataKey(k any) error {
	if k == nil {
		return nil
	}
	if !reflect.TypeOf(k).Comparable() {
		return fmt.Errorf("%w: %T is not comparable", ErrInvalidMetadataKey, k)
	}
	return nil
}
