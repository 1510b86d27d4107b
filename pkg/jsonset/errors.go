package jsonset

import (
	"fmt"
)

// MalformedJSONError reports input that is not syntactically valid JSON.
type MalformedJSONError struct {
	Offset int64 // byte offset where parsing stopped
	Reason string
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON at offset %d: %s", e.Offset, e.Reason)
}

// SchemaViolationError reports syntactically valid JSON that does not match
// the flat array-of-strings schema.
type SchemaViolationError struct {
	Offset  int64  // byte offset of the offending token
	Keyword string // violated schema keyword ("type" or "items")
	Detail  string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation at offset %d: keyword %q: %s", e.Offset, e.Keyword, e.Detail)
}
