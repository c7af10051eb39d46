package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/cargohost/backend/internal/handler"
	log "github.com/sirupsen/logrus"
)

// Recovery catches panics and returns a 500 error instead of crashing the server.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.WithField("panic", err).Errorf("PANIC on %s %s\n%s", r.Method, r.URL.Path, debug.Stack())
				handler.JSON(w, http.StatusInternalServerError, map[string]string{
					"error": "internal server error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
