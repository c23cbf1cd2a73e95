package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// requestError is a failure detected before the operation reaches the engine.
type requestError struct {
	status  int
	message string
	code    string
}

func (e *requestError) Error() string { return e.message }

type errorEntry struct {
	Message    string            `json:"message"`
	Extensions map[string]string `json:"extensions,omitempty"`
}

type errorPayload struct {
	Errors []errorEntry `json:"errors"`
}

// writeRequestError answers with a GraphQL-shaped error document so clients
// parse transport failures the same way as execution errors.
func writeRequestError(w http.ResponseWriter, e *requestError) {
	entry := errorEntry{Message: e.message}
	if e.code != "" {
		entry.Extensions = map[string]string{"code": e.code}
	}
	writeJSON(w, e.status, errorPayload{Errors: []errorEntry{entry}})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("write response", zap.Error(err))
	}
}
