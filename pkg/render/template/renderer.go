package template

import (
	"io"
)

// TemplateRenderer is the engine contract label renderers depend on.
type TemplateRenderer interface {
	// RenderTemplate executes a named template from the engine's file set.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString parses and executes an inline template.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	// RegisterFilter exposes a Go function as a template filter.
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	// Preload parses the named templates eagerly so syntax errors surface at
	// construction time instead of during a print run.
	Preload(names ...string) error
}
