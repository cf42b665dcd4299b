package formats

import (
	"errors"
	"net/http"
	"path"
	"strings"
)

// Mux is satisfied by *http.ServeMux and chi.Router.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the route the handler would be mounted at under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	return mountPath(basePath, NewOptions(fns...).RoutePath)
}

// RegisterRoutes mounts the formats handler under basePath on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return register(mux, basePath, NewOptions(fns...))
}

func register(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", errors.New("formats: missing mux")
	}
	pattern := mountPath(basePath, opts.RoutePath)
	mux.Handle(pattern, newHandler(opts))
	return pattern, nil
}

func mountPath(basePath, routePath string) string {
	routePath = "/" + strings.Trim(strings.TrimSpace(routePath), "/")
	basePath = strings.Trim(strings.TrimSpace(basePath), "/")
	if basePath == "" {
		return routePath
	}
	return path.Join("/"+basePath, routePath)
}
