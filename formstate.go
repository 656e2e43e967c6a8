// Package formstate is the convenience facade over the form-state
// controller: schema construction, controller wiring, and one-call HTML
// rendering for callers that do not need the underlying packages.
package formstate

import (
	"context"
	"sync"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/render"
	"github.com/goliatone/go-formstate/pkg/renderers/html"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/validate"
)

// Schema aliases re-exported for single-import callers.
type (
	Schema = schema.Schema
	Field  = schema.Field
	Rule   = schema.Rule
)

// Controller aliases.
type (
	Controller    = form.Controller
	State         = form.State
	Result        = form.Result
	SubmitHandler = form.SubmitHandler
)

// Errors is the validation result type: field name to first failing message.
type Errors = validate.Errors

// RenderOptions aliases render.Options for the HTML convenience path.
type RenderOptions = render.Options

// New constructs a controller for one form instance. See form.New.
func New(s Schema, options ...form.Option) (*Controller, error) {
	return form.New(s, options...)
}

// WithDefaults seeds initial values. See form.WithDefaults.
func WithDefaults(defaults map[string]string) form.Option {
	return form.WithDefaults(defaults)
}

// WithSubmitHandler registers the accepted-submission consumer.
func WithSubmitHandler(handler SubmitHandler) form.Option {
	return form.WithSubmitHandler(handler)
}

// WithEngine injects a custom validation engine.
func WithEngine(engine *validate.Engine) form.Option {
	return form.WithEngine(engine)
}

var (
	registryOnce    sync.Once
	defaultRegistry *render.Registry
)

// Renderers returns the default renderer registry, seeded with the built-in
// HTML renderer. Callers can register additional renderers on it and resolve
// them by name through Render.
func Renderers() *render.Registry {
	registryOnce.Do(func() {
		defaultRegistry = render.NewRegistry()
		renderer, err := html.New()
		if err != nil {
			panic(err)
		}
		defaultRegistry.MustRegister(renderer)
	})
	return defaultRegistry
}

// Render resolves a renderer by name from the default registry and renders
// the controller's current state with it.
func Render(ctx context.Context, controller *Controller, renderer string, options RenderOptions) ([]byte, error) {
	r, err := Renderers().Get(renderer)
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, controller.Snapshot(), options)
}

// RenderHTML renders the controller's current state using the built-in HTML
// renderer. It is the simplest entry point for callers that just want form
// markup.
func RenderHTML(ctx context.Context, controller *Controller, options RenderOptions) ([]byte, error) {
	return Render(ctx, controller, "html", options)
}
