// Package server exposes the label engine over HTTP: render and batch
// endpoints validated against an embedded OpenAPI contract, the formats
// listing, background assets, health and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goliatone/go-printlabel/components/formats"
	"github.com/goliatone/go-printlabel/internal/metrics"
	"github.com/goliatone/go-printlabel/pkg/model"
	"github.com/goliatone/go-printlabel/pkg/orchestrator"
	"github.com/goliatone/go-printlabel/pkg/render"
	"github.com/goliatone/go-printlabel/pkg/renderers/labels"
)

const (
	defaultMaxBodyBytes  = 1 << 20
	defaultMaxBatchItems = 200
)

// Option customises a Server.
type Option func(*Server)

// WithOrchestrator sets the render engine.
func WithOrchestrator(o *orchestrator.Orchestrator) Option {
	return func(s *Server) {
		s.engine = o
	}
}

// WithContract replaces the embedded OpenAPI contract.
func WithContract(c *Contract) Option {
	return func(s *Server) {
		s.contract = c
	}
}

// WithAssets serves files under /assets/.
func WithAssets(assets fs.FS) Option {
	return func(s *Server) {
		s.assets = assets
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxBodyBytes caps request bodies. Zero keeps the default.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// WithMaxBatchItems caps the items of one batch request. Zero keeps the
// default.
func WithMaxBatchItems(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBatch = n
		}
	}
}

// WithMetrics toggles the /metrics endpoint (on by default).
func WithMetrics(enabled bool) Option {
	return func(s *Server) {
		s.metrics = enabled
	}
}

// Server holds the HTTP handlers.
type Server struct {
	engine   *orchestrator.Orchestrator
	contract *Contract
	assets   fs.FS
	logger   *zap.Logger
	maxBody  int64
	maxBatch int
	metrics  bool
}

// New builds a Server. The embedded contract is loaded when none is given and
// the default orchestrator reports to the Prometheus collectors.
func New(ctx context.Context, opts ...Option) (*Server, error) {
	s := &Server{
		logger:   zap.NewNop(),
		maxBody:  defaultMaxBodyBytes,
		maxBatch: defaultMaxBatchItems,
		metrics:  true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.contract == nil {
		c, err := LoadContract(ctx)
		if err != nil {
			return nil, err
		}
		s.contract = c
	}
	if s.engine == nil {
		s.engine = orchestrator.New(
			orchestrator.WithLogger(s.logger),
			orchestrator.WithObserver(metrics.Observer{}),
		)
	}
	return s, nil
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Get("/api/openapi.yaml", s.openapi)
	r.Post("/api/render", s.render)
	r.Post("/api/render/batch", s.renderBatch)

	fh := formats.Handler()
	r.Method(http.MethodGet, "/api/formats", fh)
	r.Method(http.MethodHead, "/api/formats", fh)

	if s.metrics {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}
	if s.assets != nil {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServerFS(s.assets)))
		// Labels reference their backgrounds at the site root.
		for _, format := range render.Formats() {
			if bg := labels.DefaultBackground(format); bg != "" {
				r.Get(bg, s.background(strings.TrimPrefix(bg, "/")))
			}
		}
	}
	return r
}

// renderRequest mirrors the RenderRequest schema.
type renderRequest struct {
	Format    string                `json:"format"`
	Locale    string                `json:"locale"`
	Data      *model.TemplateData   `json:"data"`
	Selection *model.PrintSelection `json:"selection"`
	Template  *model.PrintTemplate  `json:"template"`
}

func (r renderRequest) toRequest() orchestrator.Request {
	return orchestrator.Request{
		Format:    r.Format,
		Data:      r.Data,
		Selection: r.Selection,
		Template:  r.Template,
		Locale:    r.Locale,
	}
}

type batchRequest struct {
	Format string          `json:"format"`
	Items  []renderRequest `json:"items"`
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, SchemaRenderRequest, &req) {
		return
	}
	out, err := s.engine.Generate(r.Context(), req.toRequest())
	if err != nil {
		s.fail(w, r, http.StatusUnprocessableEntity, "render_failed", err)
		return
	}
	writeHTML(w, out)
}

func (s *Server) renderBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !s.decode(w, r, SchemaBatchRequest, &req) {
		return
	}
	if len(req.Items) > s.maxBatch {
		err := fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(req.Items), s.maxBatch)
		s.fail(w, r, http.StatusRequestEntityTooLarge, "too_many_items", err)
		return
	}

	reqs := make([]orchestrator.Request, len(req.Items))
	for i, item := range req.Items {
		reqs[i] = item.toRequest()
	}
	out, err := s.engine.GenerateBatch(r.Context(), req.Format, reqs)
	if err != nil {
		s.fail(w, r, http.StatusUnprocessableEntity, "render_failed", err)
		return
	}
	writeHTML(w, out)
}

// decode reads, validates and unmarshals the body. It writes the error
// response and returns false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, schema string, dst any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, r, http.StatusRequestEntityTooLarge, "body_too_large", err)
			return false
		}
		s.fail(w, r, http.StatusBadRequest, "read_body", err)
		return false
	}
	if err := s.contract.ValidateJSON(schema, body); err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid_body", err)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid_body", fmt.Errorf("%w: %v", ErrInvalidBody, err))
		return false
	}
	return true
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"formats": s.engine.Registry().List(),
		"default": render.DefaultFormat,
	})
}

func (s *Server) background(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, s.assets, name)
	}
}

func (s *Server) openapi(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.contract.Raw())
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, reason string, err error) {
	metrics.RejectRequest(reason)
	s.logger.Warn("render request rejected",
		zap.String("reason", reason),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err),
	)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func writeHTML(w http.ResponseWriter, out string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
