// Package types holds the request and response shapes for the v1 REST
// endpoints. Request bodies embed [Request], whose fields are stamped with
// the endpoint path and a fresh nonce immediately before signing.
package types

// Request is the base of every private request body: the endpoint path the
// server checks the signature against, and the per-request nonce.
type Request struct {
	Request string `json:"request"`
	Nonce   string `json:"nonce"`
}

// Stamp fills in the base fields. It must be called with a freshly
// generated nonce before the body is encoded and signed.
func (r *Request) Stamp(requestPath, nonce string) {
	r.Request = requestPath
	r.Nonce = nonce
}

// Signable is any private request body carrying the [Request] base.
type Signable interface {
	Stamp(requestPath, nonce string)
}
