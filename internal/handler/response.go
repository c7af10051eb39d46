package handler

import (
	"encoding/json"
	"net/http"

	"github.com/cargohost/backend/internal/contextkeys"
	"github.com/cargohost/backend/internal/domain"
	log "github.com/sirupsen/logrus"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.WithError(err).Error("failed to encode JSON response")
		}
	}
}

// Error writes an error JSON response, using AppError status codes when available.
func Error(w http.ResponseWriter, err error) {
	if appErr, ok := domain.AsAppError(err); ok {
		if appErr.Code >= http.StatusInternalServerError {
			log.WithError(err).Error("request failed")
		}
		JSON(w, appErr.Code, map[string]string{"error": appErr.Message})
		return
	}
	log.WithError(err).Error("unhandled error")
	JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// DecodeJSON decodes a JSON request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.ErrBadRequest("invalid JSON body")
	}
	return nil
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Error(w, domain.ErrMethodNotAllowed())
}

// requestLogger returns a logger tagged with the request's correlation ID.
func requestLogger(r *http.Request) log.FieldLogger {
	if id, ok := r.Context().Value(contextkeys.RequestID).(string); ok {
		return log.WithField("request_id", id)
	}
	return log.StandardLogger()
}
