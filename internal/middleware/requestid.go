package middleware

import (
	"context"
	"net/http"

	"github.com/cargohost/backend/internal/contextkeys"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation ID in and out.
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with an ID, reusing a sane incoming one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), contextkeys.RequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
