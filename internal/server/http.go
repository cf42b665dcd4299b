package server

import (
	"net/http"
	"time"
)

// NewHTTPServer constructs an *http.Server with timeouts suited to render
// traffic: bodies are small but batch renders may take a while to write.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
