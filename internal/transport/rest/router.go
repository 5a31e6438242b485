package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/carnutri-backend/internal/transport/middleware"
)

// Operational routes.
const (
	PathLive    = "/live"
	PathReady   = "/ready"
	PathHealth  = "/health"
	PathMetrics = "/metrics"
)

// NewRouter wires the operational endpoints behind the standard middleware
// chain. HTTP traffic metrics are registered on reg and served from gatherer;
// with a nil reg they are not recorded.
func NewRouter(
	log *slog.Logger,
	health *HealthHandler,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+PathLive, health.Live)
	mux.HandleFunc("GET "+PathReady, health.Ready)
	mux.HandleFunc("GET "+PathHealth, health.Health)
	mux.Handle("GET "+PathMetrics, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	var metrics middleware.Middleware
	if reg != nil {
		routes := []string{PathLive, PathReady, PathHealth, PathMetrics}
		metrics = middleware.Metrics(middleware.NewHTTPMetrics(reg), routes...)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logger(log, PathLive, PathReady, PathMetrics),
		metrics,
	)(mux)
}
