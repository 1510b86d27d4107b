package auth

import (
	"crypto/hmac"
	"net/http"
)

// Header names carrying the v1 authentication triple.
const (
	HeaderAPIKey    = "X-BFX-APIKEY"
	HeaderPayload   = "X-BFX-PAYLOAD"
	HeaderSignature = "X-BFX-SIGNATURE"
)

// Headers are the header values that authenticate one private request.
type Headers struct {
	APIKey    string `header:"X-BFX-APIKEY"`
	Payload   string `header:"X-BFX-PAYLOAD"`
	Signature string `header:"X-BFX-SIGNATURE"`
}

// BuildHeaders encodes and signs body, producing the three authentication
// header values for one outbound private request. The body must already
// contain a fresh nonce; BuildHeaders does not generate one.
//
// The only possible failure is ErrPayloadTooLarge from the encoding step.
func BuildHeaders(creds Credentials, body Payload) (*Headers, error) {
	encoded, err := EncodePayload(body.DeterministicBytes())
	if err != nil {
		return nil, err
	}
	return &Headers{
		APIKey:    creds.AccessKey,
		Payload:   encoded,
		Signature: Sign(creds.SecretKey, encoded),
	}, nil
}

// Apply sets the three authentication headers on dst.
func (h *Headers) Apply(dst http.Header) {
	dst.Set(HeaderAPIKey, h.APIKey)
	dst.Set(HeaderPayload, h.Payload)
	dst.Set(HeaderSignature, h.Signature)
}

// Equal returns true if the headers are equal.
//
// It compares every value using hmac.Equal to prevent timing attacks.
func (h *Headers) Equal(other *Headers) bool {
	keyMatches := hmac.Equal([]byte(h.APIKey), []byte(other.APIKey))
	payloadMatches := hmac.Equal([]byte(h.Payload), []byte(other.Payload))
	sigMatches := hmac.Equal([]byte(h.Signature), []byte(other.Signature))
	return keyMatches && payloadMatches && sigMatches
}
