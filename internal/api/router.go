package api

import (
	"net/http"

	"github.com/Synt4xB4ndit/coffee-shops/internal/api/handlers"
	"github.com/Synt4xB4ndit/coffee-shops/internal/platform/metrics"
	"github.com/Synt4xB4ndit/coffee-shops/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	source ports.PoiSource,
	locator ports.LocationProvider,
	defaultRadius int,
	defaultLimit int,
) http.Handler {
	mux := http.NewServeMux()

	cafeHandler := &handlers.CafeHandler{
		Source:        source,
		Locator:       locator,
		DefaultRadius: defaultRadius,
		DefaultLimit:  defaultLimit,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/cafes", cafeHandler.Nearby)
	mux.Handle("/metrics", metrics.Handler())

	return loggingMiddleware(mux)
}
