package auth

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// SignatureLength is the length of a rendered signature: a SHA-384 digest
// is 48 bytes, so 96 hex characters.
const SignatureLength = sha512.Size384 * 2

// Sign computes the HMAC-SHA384 of the encoded payload, keyed with the raw
// secret key, and renders it as lowercase hex.
func Sign(secretKey []byte, encodedPayload string) string {
	mac := hmac.New(sha512.New384, secretKey)
	mac.Write([]byte(encodedPayload))
	return hex.EncodeToString(mac.Sum(nil))
}
