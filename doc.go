// Package bitfinex is a client SDK for the Bitfinex v1 REST API.
//
// The SDK builds request payloads, authenticates private requests with the
// exchange's payload/signature header scheme, and decodes responses into
// typed values. It does not interpret what the responses mean for a trading
// strategy; that is the caller's concern.
//
// # Overview of Packages
//
//   - bitfinex - The main SDK package, construction and options
//   - rest - The typed v1 endpoint surface, one method per endpoint
//   - pkg/auth - Nonces, payload encoding and request signing
//   - pkg/jsonset - Schema-validated decoding of flat string-array responses
package bitfinex
