package schema

import (
	"errors"
	"fmt"
	"strings"
)

// InputType is the simplified enum renderers use to pick a control.
type InputType string

const (
	InputText     InputType = "text"
	InputEmail    InputType = "email"
	InputPassword InputType = "password"
	InputNumber   InputType = "number"
	InputTextArea InputType = "textarea"
	InputSelect   InputType = "select"
)

// Field describes one named input in a form: presentation hints plus the
// ordered validation rules applied to its value.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Description string
	Type        InputType
	Default     string
	// Options lists the permitted values for select fields.
	Options  []string
	Rules    []Rule
	Metadata map[string]string
}

// Required reports whether the field carries a required rule.
func (f Field) Required() bool {
	for _, rule := range f.Rules {
		if rule.Kind == RuleRequired {
			return true
		}
	}
	return false
}

// DisplayLabel falls back to the field name when no label is configured.
func (f Field) DisplayLabel() string {
	if strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	return f.Name
}

// Schema is the declarative rule set for one form instance. Field order is
// the declaration order and is preserved through validation and rendering.
type Schema struct {
	Name   string
	Fields []Field
}

var errNoFields = errors.New("schema: at least one field is required")

// New builds a schema from the supplied fields and validates it.
func New(name string, fields ...Field) (Schema, error) {
	s := Schema{Name: strings.TrimSpace(name), Fields: fields}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// MustNew is the panic-on-error variant of New for static schemas.
func MustNew(name string, fields ...Field) Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks the schema for structural problems: missing or duplicate
// field names and malformed rules.
func (s Schema) Validate() error {
	if len(s.Fields) == 0 {
		return errNoFields
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for i, field := range s.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("schema: field %d has no name", i)
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("schema: duplicate field %q", name)
		}
		seen[name] = struct{}{}
		if field.Type == InputSelect && len(field.Options) == 0 {
			return fmt.Errorf("schema: select field %q needs options", name)
		}
		for _, rule := range field.Rules {
			if err := rule.validate(); err != nil {
				return fmt.Errorf("%w (field %q)", err, name)
			}
		}
	}
	return nil
}

// Field looks up a field by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Names returns field names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		names = append(names, field.Name)
	}
	return names
}

// Defaults returns the initial value map for a new form instance.
func (s Schema) Defaults() map[string]string {
	out := make(map[string]string, len(s.Fields))
	for _, field := range s.Fields {
		out[field.Name] = field.Default
	}
	return out
}
