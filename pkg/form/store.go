package form

import (
	"github.com/goliatone/go-formstate/pkg/validate"
)

// Store holds the mutable state of one form instance: current values,
// touched flags, and the latest validation result. Touched flags are
// monotonic: once a field is touched it stays touched for the life of the
// store. Errors are never written directly by callers; the controller
// recomputes them from values on every event.
type Store struct {
	values  map[string]string
	touched map[string]bool
	errors  validate.Errors
}

// NewStore seeds a store with the supplied defaults.
func NewStore(defaults map[string]string) *Store {
	values := make(map[string]string, len(defaults))
	for name, value := range defaults {
		values[name] = value
	}
	return &Store{
		values:  values,
		touched: make(map[string]bool),
	}
}

// Value returns the current value for a field.
func (s *Store) Value(field string) string {
	return s.values[field]
}

// Values returns a copy of the current value map.
func (s *Store) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for name, value := range s.values {
		out[name] = value
	}
	return out
}

// SetValue updates a field's value.
func (s *Store) SetValue(field, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[field] = value
}

// Touch marks a field as visited. Idempotent; there is no way to un-touch.
func (s *Store) Touch(field string) {
	if s.touched == nil {
		s.touched = make(map[string]bool)
	}
	s.touched[field] = true
}

// TouchAll marks every named field as visited.
func (s *Store) TouchAll(fields []string) {
	for _, field := range fields {
		s.Touch(field)
	}
}

// Touched reports whether a field has been visited.
func (s *Store) Touched(field string) bool {
	return s.touched[field]
}

// TouchedFields returns a copy of the touched map.
func (s *Store) TouchedFields() map[string]bool {
	out := make(map[string]bool, len(s.touched))
	for name, touched := range s.touched {
		out[name] = touched
	}
	return out
}

// Errors returns the latest validation result.
func (s *Store) Errors() validate.Errors {
	return s.errors
}

// replaceErrors swaps in a freshly computed validation result. Only the
// controller calls this; errors stay a pure function of values and schema.
func (s *Store) replaceErrors(errs validate.Errors) {
	s.errors = errs
}
