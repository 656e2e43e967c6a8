// Package template declares the rendering-engine seam HTML renderers depend
// on, keeping the concrete template library swappable.
package template

import "io"

// Renderer is the engine contract: named-template and inline-string
// rendering plus filter registration and global context seeding.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
