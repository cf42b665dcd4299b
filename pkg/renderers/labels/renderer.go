package labels

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-printlabel/pkg/model"
	"github.com/goliatone/go-printlabel/pkg/render"
	rendertemplate "github.com/goliatone/go-printlabel/pkg/render/template"
	"github.com/goliatone/go-printlabel/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
	logger           *zap.Logger
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. Templates
// are looked up as "<format>.tpl" at the root of files.
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
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme resolves background images and CSS variables from a go-theme
// renderer configuration.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithLogger sets the logger used to report template failures.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Renderer renders one label format. It satisfies render.Renderer.
type Renderer struct {
	layout    layout
	templates rendertemplate.TemplateRenderer
	logger    *zap.Logger

	sale       []Bucket
	original   []Bucket
	bucketCSS  string
	background string
	styleVars  string
}

var _ render.Renderer = (*Renderer)(nil)

// New builds the renderer for format. Unknown formats are an error here; the
// silent a4 fallback belongs to the registry.
func New(format string, options ...Option) (*Renderer, error) {
	f, ok := render.LookupFormat(format)
	if !ok {
		return nil, fmt.Errorf("labels: unknown format %q", format)
	}
	cfg, err := buildConfig(options)
	if err != nil {
		return nil, err
	}
	return newRenderer(f, cfg)
}

// All builds one renderer per supported format sharing a single template
// engine, in render.Formats order.
func All(options ...Option) ([]*Renderer, error) {
	cfg, err := buildConfig(options)
	if err != nil {
		return nil, err
	}
	renderers := make([]*Renderer, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		r, err := newRenderer(f, cfg)
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, r)
	}
	return renderers, nil
}

// Registry returns a registry holding every label format.
func Registry(options ...Option) (*render.Registry, error) {
	renderers, err := All(options...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	for _, r := range renderers {
		if err := registry.Register(r); err != nil {
			return nil, fmt.Errorf("labels: %w", err)
		}
	}
	return registry, nil
}

func buildConfig(options []Option) (config, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.templateRenderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return config{}, fmt.Errorf("labels: configure template renderer: %w", err)
		}
		cfg.templateRenderer = engine
	}
	return cfg, nil
}

func newRenderer(format render.Format, cfg config) (*Renderer, error) {
	l, ok := layoutFor(format)
	if !ok {
		return nil, fmt.Errorf("labels: no layout for format %q", format)
	}
	if err := cfg.templateRenderer.Preload(l.template); err != nil {
		return nil, fmt.Errorf("labels: load %s template: %w", format, err)
	}

	sale, original := tablesFor(format)
	r := &Renderer{
		layout:     l,
		templates:  cfg.templateRenderer,
		logger:     cfg.logger.With(zap.String("format", string(format))),
		sale:       sale,
		original:   original,
		bucketCSS:  bucketCSS(sale, original),
		background: l.background,
	}
	if cfg.theme != nil {
		if !l.sheet && cfg.theme.AssetURL != nil {
			if url := strings.TrimSpace(cfg.theme.AssetURL(BackgroundKey(format))); url != "" {
				r.background = url
			}
		}
		r.styleVars = cssVarsStyle(cfg.theme.CSSVars)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return string(r.layout.format)
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Format reports the layout this renderer produces.
func (r *Renderer) Format() render.Format {
	return r.layout.format
}

// Render produces the label markup for data. It never fails: a template error
// is logged and yields an empty string so one bad record cannot abort a batch.
func (r *Renderer) Render(data model.TemplateData) string {
	if r == nil || r.templates == nil {
		return ""
	}
	out, err := r.templates.RenderTemplate(r.layout.template, r.buildView(data))
	if err != nil {
		r.logger.Error("render label template",
			zap.String("product_code", data.ProductCode),
			zap.Error(err),
		)
		return ""
	}
	return out
}
