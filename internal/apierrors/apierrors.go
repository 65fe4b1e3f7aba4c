package apierrors

import (
	"encoding/json"
	"net/http"
)

// APIError is the JSON error body every endpoint returns on failure:
// {"code": ..., "error": ..., "message": ...}.
type APIError struct {
	Code    int    `json:"code"`
	Name    string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func New(code int, name, message string) *APIError {
	return &APIError{Code: code, Name: name, Message: message}
}

func BadRequest(message string) *APIError {
	return New(http.StatusBadRequest, "Bad Request", message)
}

func NotFound(message string) *APIError {
	return New(http.StatusNotFound, "Not Found", message)
}

func TooManyRequests() *APIError {
	return New(http.StatusTooManyRequests, "Too many requests", "Too many requests. Slow down.")
}

func Internal() *APIError {
	return New(http.StatusInternalServerError, "Internal Server Error",
		"Something went wrong on our end. Please contact our support team if this error persists.")
}

// Write sends the error as a JSON response with its status code.
func Write(w http.ResponseWriter, apiError *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiError.Code)
	json.NewEncoder(w).Encode(apiError)
}
