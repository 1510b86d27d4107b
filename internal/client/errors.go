package client

import (
	"errors"
	"fmt"
)

// ErrNoCredentials is returned when a private endpoint is called on a
// client constructed without key material.
var ErrNoCredentials = errors.New("client has no credentials configured")

// APIError is a non-success response from the exchange.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	return &APIError{Status: status, Message: payload.Message}
}
