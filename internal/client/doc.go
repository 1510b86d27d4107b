// Package client provides the raw HTTP transport for the exchange's REST
// API: unauthenticated GETs against the public endpoints and signed POSTs
// against the private ones. Everything above it deals in typed requests and
// responses; everything below it is the network.
package client
