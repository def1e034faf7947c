// Package response writes the {error, message, ...payload} JSON envelope
// used by every route.
package response

import (
	"encoding/json"
	"net/http"

	"notesapp/pkg/apperror"
	"notesapp/pkg/logger"
)

// Payload carries the route-specific keys merged into the envelope.
type Payload map[string]any

// JSON writes a success envelope.
func JSON(w http.ResponseWriter, status int, message string, payload Payload) {
	write(w, status, false, message, payload)
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, message string, payload Payload) {
	JSON(w, http.StatusOK, message, payload)
}

// Fail writes an error envelope with an explicit status.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, true, message, nil)
}

// Error maps err to its status code and writes an error envelope. Internal
// errors are logged and reported with a generic message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(apperror.KindOf(err))
	if status == http.StatusInternalServerError {
		logger.Sugar.Errorw("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		Fail(w, status, "Internal Server Error")
		return
	}
	Fail(w, status, apperror.MessageOf(err))
}

// StatusFor maps an error kind to an HTTP status code.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindDuplicateEmail:
		return http.StatusConflict
	case apperror.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func write(w http.ResponseWriter, status int, isError bool, message string, payload Payload) {
	body := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		body[k] = v
	}
	body["error"] = isError
	body["message"] = message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Sugar.Errorf("Failed to encode response: %v", err)
	}
}
