package decorate

import "fmt"

// Descriptor is the property-descriptor shape threaded through member
// decoration. It exists in two mutually exclusive forms: the data form
// (Value, Writable) and the accessor form (Get, Set). The engine passes
// descriptors through unmodified; only decorators reshape them.
type Descriptor struct {
	Value any
	Get   func() any
	Set   func(any)

	Writable     bool
	Enumerable   bool
	Configurable bool
}

// Validate rejects descriptors that mix the data form and the accessor
// form. A nil descriptor is valid: member decoration tolerates absent
// descriptors.
func (d *Descriptor) Validate() error {
	if d == nil {
		return nil
	}
	if (d.Get != nil || d.Set != nil) && (d.Value != nil || d.Writable) {
		return fmt.Errorf("%w: data form and accessor form are mutually exclusive", ErrInvalidDescriptor)
	}
	return nil
}
