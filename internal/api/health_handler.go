package api

import (
	"net/http"
	"time"

	"github.com/gvsu-realestate/clubsite/internal/pkg/httputil"
)

// HealthCheck reports liveness, plus document store reachability when a
// ping is wired in.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}

	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			resp["status"] = "degraded"
			resp["database"] = "unreachable"
			httputil.JSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp["database"] = "ok"
	}

	httputil.OK(w, resp)
}
