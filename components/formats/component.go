package formats

import "net/http"

// Component bundles resolved options so the handler and its mount path stay
// in sync.
type Component struct {
	opts Options
}

func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

func (c *Component) Options() Options { return c.opts }

func (c *Component) Handler() http.Handler { return newHandler(c.opts) }

// RegisterRoutes mounts the handler under basePath and returns the pattern.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	return register(mux, basePath, c.opts)
}
