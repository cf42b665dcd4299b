package render

import "github.com/goliatone/go-printlabel/pkg/model"

// Renderer turns one TemplateData record into label markup. Implementations
// are pure: the same input always yields the same output, and rendering never
// fails. Missing values degrade to defaults instead.
type Renderer interface {
	Name() string
	ContentType() string
	Render(data model.TemplateData) string
}

// RendererFunc adapts a plain function into a Renderer.
type RendererFunc struct {
	FormatName string
	Fn         func(model.TemplateData) string
}

func (r RendererFunc) Name() string { return r.FormatName }

func (r RendererFunc) ContentType() string { return "text/html; charset=utf-8" }

func (r RendererFunc) Render(data model.TemplateData) string {
	if r.Fn == nil {
		return ""
	}
	return r.Fn(data)
}
