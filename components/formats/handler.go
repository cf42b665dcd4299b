package formats

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

// HTTPError lets a guard pick the response status.
type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int { return e.Code }

type listResponse struct {
	Data []Entry `json:"data"`
}

// Handler serves the format list as {"data": [...]} for GET and HEAD.
func Handler(fns ...OptionFn) http.Handler {
	return newHandler(NewOptions(fns...))
}

func newHandler(opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				code := guardStatus(err)
				http.Error(w, http.StatusText(code), code)
				return
			}
		}

		entries := opts.Entries
		if entries == nil {
			loaded, err := DefaultEntries()
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			entries = loaded
		}

		q := r.URL.Query()
		limit, _ := strconv.Atoi(q.Get(LimitParam))
		results := Search(entries, q.Get(SearchParam), limit, opts)
		if results == nil {
			results = []Entry{}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_ = json.NewEncoder(w).Encode(listResponse{Data: results})
	})
}

func guardStatus(err error) int {
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode() > 0 {
		return httpErr.StatusCode()
	}
	return http.StatusForbidden
}
