package jsonset

import (
	stdjson "encoding/json"
	"errors"
	"io"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Decode streams input through the schema validator and the set collector
// simultaneously. It returns the set of unique strings if and only if the
// document is a flat array of strings; otherwise it fails with
// *MalformedJSONError or *SchemaViolationError and no partial result.
//
// The stdlib tokenizer is used here rather than jsoniter because its
// InputOffset is the only way to report byte-accurate offsets in the
// diagnostics.
func Decode(input string) (mapset.Set[string], error) {
	dec := stdjson.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	validator := newSchemaValidator(defaultSchema)
	collector := newSetCollector()

	for {
		before := dec.InputOffset()
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Clean EOF is only fine once both automatons accepted;
				// otherwise the document was truncated or empty.
				if set, ok := collector.result(); ok && validator.valid() {
					return set, nil
				}
				return nil, &MalformedJSONError{Offset: dec.InputOffset(), Reason: "unexpected end of input"}
			}
			return nil, malformed(err, dec.InputOffset())
		}

		ev := eventFor(tok, input, before, dec.InputOffset())
		if err := validator.handle(ev); err != nil {
			return nil, err
		}
		if err := collector.handle(ev); err != nil {
			return nil, err
		}
	}
}

func malformed(err error, offset int64) *MalformedJSONError {
	var syntaxErr *stdjson.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &MalformedJSONError{Offset: syntaxErr.Offset, Reason: syntaxErr.Error()}
	}
	return &MalformedJSONError{Offset: offset, Reason: err.Error()}
}

// eventFor converts one tokenizer result into a tagged event. The token was
// consumed between the from and to offsets; its own first byte is found by
// skipping the separators the tokenizer swallowed along with it.
func eventFor(tok stdjson.Token, input string, from, to int64) Event {
	off := tokenStart(input, from, to)
	switch v := tok.(type) {
	case stdjson.Delim:
		switch v {
		case '[':
			return Event{Kind: ArrayStart, Offset: off}
		case ']':
			return Event{Kind: ArrayEnd, Offset: off}
		default:
			return Event{Kind: Other, Detail: "object", Offset: off}
		}
	case string:
		return Event{Kind: StringValue, Str: v, Offset: off}
	case stdjson.Number:
		return Event{Kind: Other, Detail: "number", Offset: off}
	case bool:
		return Event{Kind: Other, Detail: "boolean", Offset: off}
	default: // nil
		return Event{Kind: Other, Detail: "null", Offset: off}
	}
}

func tokenStart(input string, from, to int64) int64 {
	for from < to && from < int64(len(input)) {
		switch input[from] {
		case ' ', '\t', '\r', '\n', ',', ':':
			from++
		default:
			return from
		}
	}
	return from
}
