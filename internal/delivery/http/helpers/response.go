package helpers

import (
	"encoding/json"
	"net/http"
	"time"
)

// SuccessResponse is the envelope for all successful API responses.
// swagger:model SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the envelope for all failed API responses. Errors carries
// per-field validation messages and is omitted when there are none.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Errors    []string `json:"errors,omitempty"`
	Timestamp string   `json:"timestamp"`
	Path      string   `json:"path"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode,
// and encodes a SuccessResponse with the given data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(SuccessResponse{Success: true, Data: data})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an ErrorResponse with the given message and optional error list.
func WriteJSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string, errs []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      r.URL.Path,
	})
}
