package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the structured error body every failing handler returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteJSONResponse writes a JSON payload with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// WriteErrorResponse writes a structured error body. Store faults always end
// up here rather than leaving the request without a response.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	WriteJSONResponse(w, statusCode, ErrorResponse{Success: false, Message: message})
}

// WriteValidationErrors writes a 400 with a field-to-message map.
func WriteValidationErrors(w http.ResponseWriter, errors map[string]string) {
	WriteJSONResponse(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": "Validation failed",
		"errors":  errors,
	})
}
