package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// APIError is the uniform error body returned by every endpoint.
// swagger:model APIError
type APIError struct {
	// Time the error was produced, UTC
	Timestamp time.Time `json:"timestamp"`

	// HTTP status code
	// default: 400
	Status int `json:"status"`

	// HTTP status text
	// default: Bad Request
	Error string `json:"error"`

	// Human-readable description
	Message string `json:"message"`

	// Request path that failed
	Path string `json:"path"`
}

// writeError emits the uniform error body. Anything >= 400 also makes
// the transaction middleware roll back the request transaction.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
