package auth

import (
	"encoding/base64"
	"fmt"
)

// MaxPayloadSize bounds the raw request body accepted by EncodePayload.
// The encoded payload travels in an HTTP header, so it cannot grow without
// limit; 64 KiB is far beyond the largest multi-order batch the v1 API
// accepts.
const MaxPayloadSize = 64 * 1024

// EncodePayload returns the base64 form of body, used both as the payload
// header value and as the signing input. Bodies over MaxPayloadSize fail
// with ErrPayloadTooLarge; trailing bytes are never silently dropped.
func EncodePayload(body []byte) (string, error) {
	if len(body) > MaxPayloadSize {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrPayloadTooLarge, len(body), MaxPayloadSize)
	}
	return base64.StdEncoding.EncodeToString(body), nil
}
