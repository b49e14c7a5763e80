package api

import (
	"encoding/json"
	"net/http"
)

// Error messages returned to clients
const (
	MsgInternalError    = "Internal server error"
	MsgStartFailed      = "Failed to start test"
	MsgStopFailed       = "Failed to stop test"
	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// ErrorEnvelope is the body of every failed response
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// WriteJSON encodes payload before touching the response, so an encoding
// failure leaves the writer untouched for an error response.
func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(append(body, '\n'))
	return err
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, &ErrorEnvelope{Error: message})
}

func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = WriteError(w, http.StatusNotFound, MsgNotFound)
	})
}

func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = WriteError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	})
}
