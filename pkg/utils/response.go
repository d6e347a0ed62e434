package utils

import (
	"encoding/json"
	"net/http"
	"time"
)

// APIResponse is the standard envelope for mutation-style endpoints.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// JSON sends any payload with the given status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Respond sends a success envelope.
func Respond(w http.ResponseWriter, status int, message string, data interface{}) {
	JSON(w, status, APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

// RespondError sends the error envelope. Message must be safe to show to
// clients; internal detail belongs in the server log, not here.
func RespondError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]interface{}{
		"success":     false,
		"error":       message,
		"status_code": status,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}
