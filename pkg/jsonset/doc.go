// Package jsonset decodes an untrusted JSON document that is expected to be
// a flat array of strings (such as the exchange's symbol listing) into a set
// of unique strings.
//
// The document is streamed token by token through two independent state
// machines: a schema validator driven by the bundled schema artifact, and a
// set collector that accumulates the string values. Both must accept every
// token for the decode to succeed; the first offending token aborts the
// whole decode with its byte offset, so a large response is rejected without
// being parsed to the end. A failed decode never returns a partial set.
package jsonset
