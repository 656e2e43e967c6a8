// Package html renders form state snapshots into standalone HTML markup
// using embedded pongo2 templates. Field errors are emitted only when the
// field has been touched, matching the controller's display contract.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/render"
	"github.com/goliatone/go-formstate/pkg/render/template"
	"github.com/goliatone/go-formstate/pkg/render/template/pongo2adapter"
	"github.com/goliatone/go-formstate/pkg/schema"
)

const (
	defaultMethod      = "POST"
	defaultSubmitLabel = "Submit"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer template.Renderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer template.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer implements render.Renderer for HTML output.
type Renderer struct {
	templates template.Renderer
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo2adapter.New(
			pongo2adapter.WithFS(cfg.templateFS),
			pongo2adapter.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full <form> markup for the snapshot.
func (r *Renderer) Render(ctx context.Context, state form.State, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("html renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", buildContext(state, options))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func buildContext(state form.State, options render.Options) map[string]any {
	method := strings.ToUpper(strings.TrimSpace(options.Method))
	if method == "" {
		method = defaultMethod
	}
	submitLabel := strings.TrimSpace(options.SubmitLabel)
	if submitLabel == "" {
		submitLabel = defaultSubmitLabel
	}

	fields := make([]map[string]any, 0, len(state.Fields))
	for _, field := range state.Fields {
		fields = append(fields, fieldContext(state.Name, field))
	}

	hidden := make([]map[string]any, 0)
	for _, field := range render.SortedHiddenFields(options.HiddenFields) {
		hidden = append(hidden, map[string]any{
			"name":  field.Name,
			"value": field.Value,
		})
	}

	return map[string]any{
		"name":         state.Name,
		"action":       options.Action,
		"method":       method,
		"submitLabel":  submitLabel,
		"fields":       fields,
		"hiddenFields": hidden,
		"formError":    state.FormError,
		"accepted":     state.LastOutcome == form.OutcomeAccepted && state.FormError == "",
		"chrome":       chromeClasses(),
		"theme":        buildThemeContext(options.Theme),
	}
}

func fieldContext(formName string, field form.FieldState) map[string]any {
	out := map[string]any{
		"id":          fieldID(formName, field.Name),
		"name":        field.Name,
		"label":       sanitizeInline(field.Label),
		"placeholder": field.Placeholder,
		"description": sanitizeInline(field.Description),
		"inputType":   htmlInputType(field.Type),
		"textarea":    field.Type == schema.InputTextArea,
		"select":      field.Type == schema.InputSelect,
		"options":     optionContexts(field),
		"required":    field.Required,
		"value":       field.Value,
		"touched":     field.Touched,
		"error":       field.ErrorText(),
	}
	return out
}

func optionContexts(field form.FieldState) []map[string]any {
	if len(field.Options) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(field.Options))
	for _, option := range field.Options {
		out = append(out, map[string]any{
			"value":    option,
			"selected": option == field.Value,
		})
	}
	return out
}

func fieldID(formName, fieldName string) string {
	if strings.TrimSpace(formName) == "" {
		return fieldName
	}
	return formName + "-" + fieldName
}

func htmlInputType(t schema.InputType) string {
	switch t {
	case schema.InputEmail:
		return "email"
	case schema.InputPassword:
		return "password"
	case schema.InputNumber:
		return "number"
	default:
		return "text"
	}
}
