package middleware

import (
	"net/http"
	"time"

	"github.com/cargohost/backend/internal/contextkeys"
	log "github.com/sirupsen/logrus"
)

// Logger logs each HTTP request with method, path, status, and duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		entry := log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.status,
			"duration": time.Since(start).Round(time.Millisecond).String(),
		})
		if id, ok := r.Context().Value(contextkeys.RequestID).(string); ok {
			entry = entry.WithField("request_id", id)
		}
		if ww.status >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Info("request")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
