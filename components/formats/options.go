package formats

import "net/http"

// Query parameters read by the handler.
const (
	SearchParam = "q"
	LimitParam  = "limit"
)

const (
	defaultRoutePath = "/api/formats"
	defaultLimit     = 20
	defaultMaxLimit  = 50
)

// EmptySearchMode controls the response to a request without a query.
type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

// GuardFunc rejects a request by returning an error. Errors implementing
// HTTPError choose the status code; anything else is a 403.
type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath       string
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	// Entries replaces the embedded list when non-nil.
	Entries []Entry
}

type OptionFn func(*Options)

func NewOptions(fns ...OptionFn) Options {
	opts := Options{
		RoutePath:       defaultRoutePath,
		MaxLimit:        defaultMaxLimit,
		EmptySearchMode: EmptySearchTop,
	}
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = defaultMaxLimit
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchTop
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) { o.RoutePath = path }
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) { o.MaxLimit = limit }
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) { o.EmptySearchMode = mode }
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) { o.Guard = guard }
}

// WithEntries replaces the embedded format list, e.g. to hide formats a
// deployment does not stock paper for.
func WithEntries(entries []Entry) OptionFn {
	return func(o *Options) {
		if entries == nil {
			o.Entries = nil
			return
		}
		o.Entries = append([]Entry{}, entries...)
	}
}

func clampLimit(limit int, opts Options) int {
	switch {
	case limit < 0:
		return 0
	case limit == 0:
		limit = defaultLimit
	}
	return min(limit, opts.MaxLimit)
}
