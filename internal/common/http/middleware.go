// internal/common/http/middleware.go
package http

import (
	"net/http"
	"strconv"
	"time"

	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/common/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Instrument wraps a handler with request logging and Prometheus metrics.
// The route label is the registered pattern, not the raw path, to keep
// metric cardinality bounded.
func Instrument(route string, log logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		duration := time.Since(start)
		metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(duration.Seconds())
		if recorder.status >= 400 {
			metrics.HTTPRequestsFailed.WithLabelValues(route, r.Method, strconv.Itoa(recorder.status)).Inc()
		}

		log.Debug("Request handled", map[string]interface{}{
			"route":    route,
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   recorder.status,
			"duration": duration.String(),
		})
	})
}

// Recover converts a handler panic into a 500 response instead of killing
// the connection.
func Recover(log logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("Handler panicked", map[string]interface{}{
					"path":  r.URL.Path,
					"panic": rec,
				})
				WriteMessage(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
