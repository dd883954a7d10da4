package core

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler serves Prometheus metrics in the standard format.
// Scraping is limited to an exact-match IP allow list; everyone else gets
// the same not-found answer as a disabled endpoint.
// Endpoint: GET /metrics
// Authenticated: No
func (a *App) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	cfg := a.Config()

	if !cfg.Metrics.Enabled {
		writeJsonError(w, errorNotFound)
		return
	}

	clientIP := getClientIP(r, cfg.Server.ClientIpProxyHeader)
	if clientIP == "" {
		writeJsonError(w, errorInvalidRequest)
		return
	}

	allowed := false
	for _, ip := range cfg.Metrics.AllowedIPs {
		if ip == clientIP {
			allowed = true
			break
		}
	}

	if !allowed {
		writeJsonError(w, errorNotFound)
		return
	}

	promhttp.Handler().ServeHTTP(w, r)
}
