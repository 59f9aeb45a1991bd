package api

import (
	"net/http"

	"qibla-direction-service/internal/api/handlers"
	"qibla-direction-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(resolver ports.CoordinateResolver, calculator ports.QiblaCalculator) http.Handler {
	mux := http.NewServeMux()

	qiblaHandler := &handlers.QiblaHandler{
		Resolver:   resolver,
		Calculator: calculator,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/qibla", qiblaHandler.Direction)
	mux.HandleFunc("/qibla/table", qiblaHandler.Table)

	return loggingMiddleware(mux)
}
