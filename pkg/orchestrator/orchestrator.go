package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-printlabel/pkg/model"
	"github.com/goliatone/go-printlabel/pkg/pricing"
	"github.com/goliatone/go-printlabel/pkg/render"
	"github.com/goliatone/go-printlabel/pkg/renderers/labels"
)

// PageBreak separates consecutive labels in a multi-item run.
const PageBreak = `<div class="page-break" style="page-break-after: always; break-after: page;"></div>`

// Observer receives one call per finished render.
type Observer interface {
	ObserveRender(format string, items int, elapsed time.Duration)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultFormat overrides the format used when a request names none.
func WithDefaultFormat(format string) Option {
	return func(o *Orchestrator) {
		o.defaultFormat = render.ParseFormat(format)
	}
}

// WithFormatter sets the price formatter used for record-based requests. Its
// Decimal output fills the decimal fields.
func WithFormatter(f *pricing.Formatter) Option {
	return func(o *Orchestrator) {
		o.formatter = f
	}
}

// WithPriceFunc overrides only the whole-price formatting function.
func WithPriceFunc(fn pricing.FormatFunc) Option {
	return func(o *Orchestrator) {
		o.formatPrice = fn
	}
}

// WithTransformer registers a Transformer that can patch TemplateData after
// preparation and before rendering.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDefaultLocale sets the print_date locale used when a request carries none.
func WithDefaultLocale(locale string) Option {
	return func(o *Orchestrator) {
		o.locale = strings.TrimSpace(locale)
	}
}

// WithNow overrides the clock stamped into print_date.
func WithNow(clock func() time.Time) Option {
	return func(o *Orchestrator) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver reports render timings, typically to metrics.
func WithObserver(observer Observer) Option {
	return func(o *Orchestrator) {
		o.observer = observer
	}
}

// Orchestrator coordinates record preparation, format resolution and
// rendering. It applies sensible defaults (embedded label templates, default
// price rules) while remaining open to dependency injection.
type Orchestrator struct {
	registry      *render.Registry
	defaultFormat render.Format
	formatter     *pricing.Formatter
	formatPrice   pricing.FormatFunc
	transformer   Transformer
	locale        string
	clock         func() time.Time
	logger        *zap.Logger
	observer      Observer
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultFormat: render.DefaultFormat,
		clock:         time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.formatter == nil {
		o.formatter = pricing.NewFormatter()
	}
	if o.formatPrice == nil {
		o.formatPrice = o.formatter.FormatFunc()
	}
	if o.registry == nil {
		registry, err := labels.Registry(labels.WithLogger(o.logger))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default registry: %w", err)
			o.registry = render.NewRegistry()
			return
		}
		o.registry = registry
	}
}

// Registry exposes the renderer registry in use.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Request describes one label to render. Either Data or Selection is
// required; Data wins when both are set.
type Request struct {
	// Format names the layout. Empty falls back to the template's format and
	// then to the orchestrator default.
	Format string

	// Data is rendered as-is.
	Data *model.TemplateData

	// Selection is prepared into TemplateData with Template's captions.
	Selection *model.PrintSelection
	Template  *model.PrintTemplate

	// Locale overrides the print_date locale.
	Locale string
}

// Generate prepares and renders one label.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (string, error) {
	if err := o.ready(ctx); err != nil {
		return "", err
	}
	data, err := o.templateData(ctx, req)
	if err != nil {
		return "", err
	}

	format := o.formatFor(req.Format, req.Template)
	start := time.Now()
	out := o.GenerateProductHTML(format, data)
	o.observe(format, 1, time.Since(start))
	return out, nil
}

// GenerateBatch renders reqs in order with one format, joined by PageBreak.
// Per-request formats are ignored so every page of a run shares the layout.
func (o *Orchestrator) GenerateBatch(ctx context.Context, format string, reqs []Request) (string, error) {
	if err := o.ready(ctx); err != nil {
		return "", err
	}
	items := make([]model.TemplateData, 0, len(reqs))
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		data, err := o.templateData(ctx, req)
		if err != nil {
			return "", fmt.Errorf("orchestrator: item %d: %w", i, err)
		}
		items = append(items, data)
	}

	var tpl *model.PrintTemplate
	if len(reqs) > 0 {
		tpl = reqs[0].Template
	}
	resolved := o.formatFor(format, tpl)

	start := time.Now()
	out := o.GenerateMultipleProductsHTML(resolved, items)
	o.observe(resolved, len(items), time.Since(start))
	return out, nil
}

// GenerateProductHTML resolves the renderer for format and renders data once.
func (o *Orchestrator) GenerateProductHTML(format string, data model.TemplateData) string {
	renderer := o.registry.Resolve(format)
	if renderer == nil {
		o.logger.Warn("no renderer registered", zap.String("format", format))
		return ""
	}
	return renderer.Render(data)
}

// GenerateMultipleProductsHTML resolves the renderer once and renders items
// sequentially, placing PageBreak between consecutive items only.
func (o *Orchestrator) GenerateMultipleProductsHTML(format string, items []model.TemplateData) string {
	if len(items) == 0 {
		return ""
	}
	renderer := o.registry.Resolve(format)
	if renderer == nil {
		o.logger.Warn("no renderer registered", zap.String("format", format))
		return ""
	}
	pages := make([]string, len(items))
	for i, item := range items {
		pages[i] = renderer.Render(item)
	}
	return strings.Join(pages, PageBreak)
}

// Prepare builds TemplateData for a selection using the orchestrator's
// formatter, clock and locale.
func (o *Orchestrator) Prepare(selection *model.PrintSelection, tpl *model.PrintTemplate, locale string) model.TemplateData {
	if locale == "" {
		locale = o.locale
	}
	opts := []PrepareOption{
		WithPrintTemplate(tpl),
		WithDecimalFunc(o.formatter.DecimalFunc()),
		WithClock(o.clock),
	}
	if locale != "" {
		opts = append(opts, WithLocale(locale))
	}
	return PrepareTemplateData(selection, o.formatPrice, opts...)
}

func (o *Orchestrator) templateData(ctx context.Context, req Request) (model.TemplateData, error) {
	var data model.TemplateData
	switch {
	case req.Data != nil:
		data = *req.Data
	case req.Selection != nil:
		data = o.Prepare(req.Selection, req.Template, req.Locale)
	default:
		return model.TemplateData{}, errors.New("orchestrator: data or selection is required")
	}

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &data); err != nil {
			return model.TemplateData{}, fmt.Errorf("orchestrator: transform data: %w", err)
		}
	}
	return data, nil
}

func (o *Orchestrator) formatFor(name string, tpl *model.PrintTemplate) string {
	if strings.TrimSpace(name) == "" && tpl != nil {
		name = tpl.Format
	}
	if strings.TrimSpace(name) == "" {
		return string(o.defaultFormat)
	}
	return string(render.ParseFormat(name))
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.initialiseErr
}

func (o *Orchestrator) observe(format string, items int, elapsed time.Duration) {
	o.logger.Debug("rendered labels",
		zap.String("format", format),
		zap.Int("items", items),
		zap.Duration("elapsed", elapsed),
	)
	if o.observer != nil {
		o.observer.ObserveRender(format, items, elapsed)
	}
}

var defaultOrchestrator = sync.OnceValue(func() *Orchestrator {
	return New()
})

// GenerateProductHTML renders data with the built-in label registry.
func GenerateProductHTML(format string, data model.TemplateData) string {
	return defaultOrchestrator().GenerateProductHTML(format, data)
}

// GenerateMultipleProductsHTML renders items with the built-in label
// registry, joined by PageBreak. Empty input yields "".
func GenerateMultipleProductsHTML(format string, items []model.TemplateData) string {
	return defaultOrchestrator().GenerateMultipleProductsHTML(format, items)
}

// DefaultRegistry returns the built-in label registry shared by the
// package-level helpers.
func DefaultRegistry() *render.Registry {
	return defaultOrchestrator().Registry()
}
