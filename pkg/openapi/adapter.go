// Package openapi derives validation schemas from OpenAPI operations: the
// request body's top-level properties become form fields, with the schema's
// declarative constraints (required, length bounds, email format, pattern,
// numeric range) mapped onto validation rules.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formstate/pkg/schema"
)

// Options configures document loading.
type Options struct {
	// ResolveReferences validates the document and resolves $ref targets,
	// including external ones.
	ResolveReferences bool
}

// FromFile loads an OpenAPI document from disk and derives the schema for
// the named operation.
func FromFile(ctx context.Context, path, operationID string, opts Options) (schema.Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return FromData(ctx, raw, operationID, opts)
}

// FromData derives the schema for the named operation from a raw OpenAPI
// document (JSON or YAML).
func FromData(ctx context.Context, raw []byte, operationID string, opts Options) (schema.Schema, error) {
	if ctx == nil {
		return schema.Schema{}, errors.New("openapi: context is required")
	}
	if len(raw) == 0 {
		return schema.Schema{}, errors.New("openapi: document payload is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return schema.Schema{}, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if opts.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return schema.Schema{}, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return schema.Schema{}, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	body := requestBodySchema(operation.RequestBody)
	if body == nil {
		return schema.Schema{}, fmt.Errorf("openapi: operation %q has no usable request body schema", operationID)
	}

	return buildSchema(operationID, body)
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestBodySchema(ref *openapi3.RequestBodyRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	content := ref.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// buildSchema flattens the body's top-level scalar properties into fields.
// Property maps are unordered, so fields are emitted in sorted name order to
// keep derivation deterministic. Nested objects and arrays are skipped; the
// form controller models flat value maps.
func buildSchema(operationID string, body *openapi3.Schema) (schema.Schema, error) {
	required := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]schema.Field, 0, len(names))
	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		property := ref.Value
		if !scalarProperty(property) {
			continue
		}
		_, isRequired := required[name]
		field, err := buildField(name, property, isRequired)
		if err != nil {
			return schema.Schema{}, err
		}
		fields = append(fields, field)
	}

	if len(fields) == 0 {
		return schema.Schema{}, fmt.Errorf("openapi: operation %q yields no form fields", operationID)
	}
	return schema.New(operationID, fields...)
}

func buildField(name string, property *openapi3.Schema, required bool) (schema.Field, error) {
	field := schema.Field{
		Name:        name,
		Label:       property.Title,
		Description: property.Description,
		Type:        inputTypeFor(property),
	}
	if value, ok := property.Default.(string); ok {
		field.Default = value
	}
	if len(property.Enum) > 0 {
		field.Type = schema.InputSelect
		for _, value := range property.Enum {
			field.Options = append(field.Options, fmt.Sprint(value))
		}
	}

	if required {
		field.Rules = append(field.Rules, schema.Required())
	}
	if property.MinLength != 0 {
		field.Rules = append(field.Rules, schema.MinLength(int(property.MinLength)))
	}
	if property.MaxLength != nil {
		field.Rules = append(field.Rules, schema.MaxLength(int(*property.MaxLength)))
	}
	if property.Pattern != "" {
		rule, err := schema.Pattern(property.Pattern)
		if err != nil {
			return schema.Field{}, fmt.Errorf("openapi: field %q: %w", name, err)
		}
		field.Rules = append(field.Rules, rule)
	}
	if strings.EqualFold(property.Format, "email") {
		field.Rules = append(field.Rules, schema.Email())
	}
	if property.Min != nil {
		field.Rules = append(field.Rules, schema.Min(*property.Min))
	}
	if property.Max != nil {
		field.Rules = append(field.Rules, schema.Max(*property.Max))
	}

	return field, nil
}

func scalarProperty(property *openapi3.Schema) bool {
	switch firstSchemaType(property.Type) {
	case "object", "array":
		return false
	default:
		return true
	}
}

func inputTypeFor(property *openapi3.Schema) schema.InputType {
	switch strings.ToLower(property.Format) {
	case "email":
		return schema.InputEmail
	case "password":
		return schema.InputPassword
	}
	switch firstSchemaType(property.Type) {
	case "integer", "number":
		return schema.InputNumber
	default:
		return schema.InputText
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
