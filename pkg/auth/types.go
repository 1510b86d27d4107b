package auth

import (
	"fmt"
)

// Credentials hold the key material for one exchange API key. The access
// key is sent verbatim in a request header; the secret key only ever
// contributes to the HMAC and must never appear in any output.
type Credentials struct {
	AccessKey string
	SecretKey []byte
}

// NewCredentials validates the key material. Empty keys are rejected here,
// at construction, rather than on every request.
func NewCredentials(accessKey, secretKey string) (Credentials, error) {
	if accessKey == "" {
		return Credentials{}, ErrMissingAccessKey
	}
	if secretKey == "" {
		return Credentials{}, ErrMissingSecretKey
	}
	return Credentials{AccessKey: accessKey, SecretKey: []byte(secretKey)}, nil
}

// String redacts the secret key so Credentials are safe to pass to loggers
// and format verbs.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{AccessKey:%s, SecretKey:<redacted>}", c.AccessKey)
}

type Payload interface {
	// DeterministicBytes returns a deterministic byte slice that represents the payload.
	DeterministicBytes() []byte
}

// BytesPayload is a payload that is represented by a byte slice.
type BytesPayload []byte

func (b BytesPayload) DeterministicBytes() []byte {
	return b
}
