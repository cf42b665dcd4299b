package printlabel

import (
	"context"

	"github.com/goliatone/go-printlabel/pkg/model"
	"github.com/goliatone/go-printlabel/pkg/orchestrator"
	"github.com/goliatone/go-printlabel/pkg/pricing"
	"github.com/goliatone/go-printlabel/pkg/records"
	"github.com/goliatone/go-printlabel/pkg/render"
)

// TemplateData aliases the renderer input for callers that only import the
// root package.
type TemplateData = model.TemplateData

// Format aliases render.Format.
type Format = render.Format

// PageBreak separates consecutive labels in a multi-item run.
const PageBreak = orchestrator.PageBreak

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GetTemplate resolves a format name to its renderer. Unknown names return
// the a4 renderer.
func GetTemplate(format string) render.Renderer {
	return orchestrator.DefaultRegistry().Resolve(format)
}

// GenerateProductHTML renders one label in the named format.
func GenerateProductHTML(format string, data TemplateData) string {
	return orchestrator.GenerateProductHTML(format, data)
}

// GenerateMultipleProductsHTML renders items in order, separated by page
// breaks.
func GenerateMultipleProductsHTML(format string, items []TemplateData) string {
	return orchestrator.GenerateMultipleProductsHTML(format, items)
}

// PrepareTemplateData adapts a print selection into renderer input.
func PrepareTemplateData(selection *model.PrintSelection, formatPrice pricing.FormatFunc, opts ...orchestrator.PrepareOption) TemplateData {
	return orchestrator.PrepareTemplateData(selection, formatPrice, opts...)
}

// RenderFile loads a record file and renders every selection in format, each
// with its own print template. It is the simplest entry point for batch
// printing.
func RenderFile(ctx context.Context, path, format string, options ...orchestrator.Option) (string, error) {
	batch, err := records.LoadFile(path)
	if err != nil {
		return "", err
	}
	return orchestrator.New(options...).GenerateBatch(ctx, format, Requests(batch))
}

// Requests pairs every selection of batch with its print template.
func Requests(batch *records.Batch) []orchestrator.Request {
	selections := batch.Selections()
	reqs := make([]orchestrator.Request, 0, len(selections))
	for i := range selections {
		sel := selections[i]
		req := orchestrator.Request{Selection: &sel}
		if tpl, ok := batch.TemplateFor(sel); ok {
			req.Template = tpl
		}
		reqs = append(reqs, req)
	}
	return reqs
}
