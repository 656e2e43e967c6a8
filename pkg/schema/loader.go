package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape for declarative schema files. A single file
// can carry several named forms:
//
//	forms:
//	  signup:
//	    fields:
//	      - name: firstName
//	        label: First Name
//	        required: true
//	        maxLength: 15
//	      - name: email
//	        required: true
//	        format: email
type document struct {
	Forms map[string]formDoc `json:"forms" yaml:"forms"`
}

type formDoc struct {
	Fields []fieldDoc `json:"fields" yaml:"fields"`
}

type fieldDoc struct {
	Name        string            `json:"name" yaml:"name"`
	Label       string            `json:"label" yaml:"label"`
	Placeholder string            `json:"placeholder" yaml:"placeholder"`
	Description string            `json:"description" yaml:"description"`
	Type        string            `json:"type" yaml:"type"`
	Default     string            `json:"default" yaml:"default"`
	Options     []string          `json:"options" yaml:"options"`
	Required    bool              `json:"required" yaml:"required"`
	MinLength   *int              `json:"minLength" yaml:"minLength"`
	MaxLength   *int              `json:"maxLength" yaml:"maxLength"`
	Pattern     string            `json:"pattern" yaml:"pattern"`
	Format      string            `json:"format" yaml:"format"`
	Min         *float64          `json:"min" yaml:"min"`
	Max         *float64          `json:"max" yaml:"max"`
	Messages    map[string]string `json:"messages" yaml:"messages"`
	Metadata    map[string]string `json:"metadata" yaml:"metadata"`
}

// Parse decodes a single schema document. JSON payloads are accepted because
// YAML 1.2 is a superset, but files named *.json get a stricter decode so
// malformed JSON is reported as such.
func Parse(data []byte) (map[string]Schema, error) {
	return parseDocument(data, "schema.yaml")
}

// LoadFS walks fsys and parses every *.yaml, *.yml, and *.json schema file.
// Form IDs must be unique across the whole tree.
func LoadFS(fsys fs.FS) (map[string]Schema, error) {
	out := make(map[string]Schema)
	if fsys == nil {
		return out, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}

		forms, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		for id, form := range forms {
			if _, exists := out[id]; exists {
				return fmt.Errorf("schema: duplicate form %q (file %s)", id, path)
			}
			out[id] = form
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseDocument(data []byte, path string) (map[string]Schema, error) {
	var doc document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("schema: parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("schema: parse %s: %w", path, err)
		}
	}

	out := make(map[string]Schema, len(doc.Forms))
	for rawID, form := range doc.Forms {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return nil, fmt.Errorf("schema: file %s defines an empty form id", path)
		}
		built, err := buildSchema(id, form)
		if err != nil {
			return nil, fmt.Errorf("%w (file %s)", err, path)
		}
		out[id] = built
	}
	return out, nil
}

func buildSchema(id string, doc formDoc) (Schema, error) {
	fields := make([]Field, 0, len(doc.Fields))
	for _, fd := range doc.Fields {
		field, err := buildField(fd)
		if err != nil {
			return Schema{}, err
		}
		fields = append(fields, field)
	}
	return New(id, fields...)
}

// buildField assembles rules in a fixed canonical order: required first, then
// length bounds, pattern, format, numeric range. Declarative documents cannot
// express arbitrary rule ordering; the canonical order matches what callers
// expect from the scalar attributes.
func buildField(doc fieldDoc) (Field, error) {
	field := Field{
		Name:        strings.TrimSpace(doc.Name),
		Label:       doc.Label,
		Placeholder: doc.Placeholder,
		Description: doc.Description,
		Type:        inputTypeFor(doc),
		Default:     doc.Default,
		Options:     doc.Options,
		Metadata:    doc.Metadata,
	}

	if doc.Required {
		field.Rules = append(field.Rules, withDocMessage(Required(), doc.Messages))
	}
	if doc.MinLength != nil {
		field.Rules = append(field.Rules, withDocMessage(MinLength(*doc.MinLength), doc.Messages))
	}
	if doc.MaxLength != nil {
		field.Rules = append(field.Rules, withDocMessage(MaxLength(*doc.MaxLength), doc.Messages))
	}
	if doc.Pattern != "" {
		rule, err := Pattern(doc.Pattern)
		if err != nil {
			return Field{}, err
		}
		field.Rules = append(field.Rules, withDocMessage(rule, doc.Messages))
	}
	if strings.EqualFold(strings.TrimSpace(doc.Format), "email") {
		field.Rules = append(field.Rules, withDocMessage(Email(), doc.Messages))
	}
	if doc.Min != nil {
		field.Rules = append(field.Rules, withDocMessage(Min(*doc.Min), doc.Messages))
	}
	if doc.Max != nil {
		field.Rules = append(field.Rules, withDocMessage(Max(*doc.Max), doc.Messages))
	}

	return field, nil
}

func withDocMessage(rule Rule, messages map[string]string) Rule {
	if msg, ok := messages[string(rule.Kind)]; ok {
		return rule.WithMessage(msg)
	}
	return rule
}

func inputTypeFor(doc fieldDoc) InputType {
	switch strings.ToLower(strings.TrimSpace(doc.Type)) {
	case "email":
		return InputEmail
	case "password":
		return InputPassword
	case "number", "integer":
		return InputNumber
	case "textarea":
		return InputTextArea
	case "select":
		return InputSelect
	case "", "text", "string":
		if strings.EqualFold(strings.TrimSpace(doc.Format), "email") {
			return InputEmail
		}
		if len(doc.Options) > 0 {
			return InputSelect
		}
		return InputText
	default:
		return InputText
	}
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
