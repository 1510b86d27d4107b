package jsonset

import (
	_ "embed"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// The schema is a static artifact bundled with the package; it is never
// fetched at request time.
//
//go:embed schema.json
var schemaJSON []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// flatSchema is the decoded form of the embedded schema artifact.
type flatSchema struct {
	Type  string `json:"type"`
	Items struct {
		Type string `json:"type"`
	} `json:"items"`
}

func loadSchema() flatSchema {
	var s flatSchema
	if err := json.Unmarshal(schemaJSON, &s); err != nil {
		panic(fmt.Sprintf("jsonset: invalid embedded schema: %v", err))
	}
	return s
}

var defaultSchema = loadSchema()

type schemaState int

const (
	schemaExpectRoot schemaState = iota
	schemaInArray
	schemaDone
)

// schemaValidator checks the event stream against the flat array-of-strings
// schema. It rejects on the first event the schema has no production for,
// naming the violated keyword.
type schemaValidator struct {
	schema flatSchema
	state  schemaState
}

func newSchemaValidator(schema flatSchema) *schemaValidator {
	return &schemaValidator{schema: schema}
}

func (v *schemaValidator) handle(ev Event) error {
	switch v.state {
	case schemaExpectRoot:
		if ev.Kind == ArrayStart && v.schema.Type == "array" {
			v.state = schemaInArray
			return nil
		}
		return &SchemaViolationError{
			Offset:  ev.Offset,
			Keyword: "type",
			Detail:  fmt.Sprintf("top-level value must be %s, got %s", v.schema.Type, ev.describe()),
		}

	case schemaInArray:
		switch {
		case ev.Kind == StringValue && v.schema.Items.Type == "string":
			return nil
		case ev.Kind == ArrayEnd:
			v.state = schemaDone
			return nil
		}
		return &SchemaViolationError{
			Offset:  ev.Offset,
			Keyword: "items",
			Detail:  fmt.Sprintf("array elements must be %s, got %s", v.schema.Items.Type, ev.describe()),
		}

	default:
		return &SchemaViolationError{
			Offset:  ev.Offset,
			Keyword: "type",
			Detail:  fmt.Sprintf("unexpected %s after document end", ev.describe()),
		}
	}
}

func (v *schemaValidator) valid() bool {
	return v.state == schemaDone
}
