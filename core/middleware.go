package core

import (
	"net/http"
	"time"
)

// RequestLog is a middleware that logs every request after it completes.
func (a *App) RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		cfg := a.Config()
		a.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"ip", getClientIP(r, cfg.Server.ClientIpProxyHeader),
			"duration", time.Since(start),
		)
	})
}
