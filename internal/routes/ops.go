package routes

import (
	"net/http"

	"github.com/tessvale/embla/internal/handler"
	"github.com/tessvale/embla/internal/router"
)

// RegisterOpsRoutes registers operational endpoints: Prometheus metrics
// and the load balancer health check.
func RegisterOpsRoutes(r *router.Router, deps OpsDeps) {
	r.Handle(http.MethodGet, "/metrics", deps.MetricsHandler)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Catch-all so unmatched GETs get the JSON error envelope instead of
	// the mux's plain-text 404.
	r.Get("/", handler.NotFoundResponse)
}
