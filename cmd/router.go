package main

import (
	"net/http"

	"github.com/mkourtis/staticfall/internal/fallback"
	"github.com/mkourtis/staticfall/internal/health"
	"github.com/mkourtis/staticfall/internal/metrics"
)

// setupRouter binds exactly the root path to the fallback handler.
// Anything else gets the mux's default not-found response, so the
// process never pretends to serve routes the static config owns.
func setupRouter(fallbackHandler *fallback.Handler, collector *metrics.Collector) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/{$}", fallbackHandler.ServeHTTP)
	mux.HandleFunc("/healthz", health.Handler)
	mux.HandleFunc("/metrics", collector.Handler())

	return mux
}
