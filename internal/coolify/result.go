package coolify

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// unknownError is reported when a transport failure carries no message.
const unknownError = "Unknown error occurred"

// Result is the normalized outcome of one backend call. Data is set only on
// success (JSON null when the body was empty or not JSON), Error only on
// failure, and Status whenever an HTTP response was received.
type Result struct {
	Success bool             `json:"success"`
	Data    *json.RawMessage `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
	Status  *int             `json:"status,omitempty"`
}

// HasStatus reports whether the backend answered at all.
func (r Result) HasStatus() bool {
	return r.Status != nil
}

// successResult wraps a 2xx response body.
func successResult(status int, body []byte) Result {
	data := parseBody(body)
	return Result{Success: true, Data: &data, Status: &status}
}

// failureResult wraps a non-2xx response, preferring the backend's message.
func failureResult(status int, body []byte) Result {
	return Result{Success: false, Error: errorMessage(status, body), Status: &status}
}

// transportFailure wraps an error raised before any response arrived.
func transportFailure(err error) Result {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = unknownError
	}
	return Result{Success: false, Error: msg}
}

// parseBody returns the body when it is valid JSON and JSON null otherwise.
func parseBody(body []byte) json.RawMessage {
	if len(body) == 0 || !json.Valid(body) {
		return json.RawMessage("null")
	}
	return json.RawMessage(body)
}

// errorMessage extracts the "message" field from an error body, falling back
// to the status line.
func errorMessage(status int, body []byte) string {
	var errResp struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
		return errResp.Message
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}
