// Package render defines the boundary between the form-state controller and
// view layers: a Renderer turns a state snapshot into bytes (HTML, terminal
// output, ...), and a Registry keeps named renderers discoverable.
package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formstate/pkg/form"
)

// Renderer converts a form state snapshot into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, state form.State, options Options) ([]byte, error)
}

// Options carries per-render instructions. The snapshot itself holds the
// field values, touched flags, and errors; Options covers everything around
// it (submission target, hidden inputs, theming).
type Options struct {
	// Action is the submission target URL for HTML output.
	Action string
	// Method overrides the submission method (default POST).
	Method string
	// SubmitLabel overrides the submit button text.
	SubmitLabel string
	// HiddenFields are emitted alongside the visible fields. See the helpers
	// in hidden.go for common entries (CSRF tokens, version fields).
	HiddenFields map[string]string
	// Theme supplies resolved go-theme configuration (class tokens, CSS
	// variables). Nil renders with the renderer's built-in chrome.
	Theme *theme.RendererConfig
}
