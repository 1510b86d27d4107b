package jsonset

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSchemaValidatorAcceptsFlatArray(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	v := newSchemaValidator(defaultSchema)
	events := []Event{
		{Kind: ArrayStart},
		{Kind: StringValue, Str: "a"},
		{Kind: StringValue, Str: "b"},
		{Kind: ArrayEnd},
	}
	for _, ev := range events {
		c.Assert(v.handle(ev), qt.IsNil)
	}
	c.Assert(v.valid(), qt.Equals, true)
}

func TestSchemaValidatorRejectsNonArrayRoot(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	for _, ev := range []Event{
		{Kind: StringValue, Str: "a", Offset: 0},
		{Kind: Other, Detail: "object", Offset: 0},
		{Kind: Other, Detail: "number", Offset: 0},
	} {
		v := newSchemaValidator(defaultSchema)
		err := v.handle(ev)

		var violation *SchemaViolationError
		c.Assert(err, qt.ErrorAs, &violation)
		c.Assert(violation.Keyword, qt.Equals, "type")
		c.Assert(v.valid(), qt.Equals, false)
	}
}

func TestSchemaValidatorRejectsBadElements(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	for _, ev := range []Event{
		{Kind: Other, Detail: "number", Offset: 4},
		{Kind: Other, Detail: "null", Offset: 4},
		{Kind: ArrayStart, Offset: 4}, // nested array
	} {
		v := newSchemaValidator(defaultSchema)
		c.Assert(v.handle(Event{Kind: ArrayStart}), qt.IsNil)
		err := v.handle(ev)

		var violation *SchemaViolationError
		c.Assert(err, qt.ErrorAs, &violation)
		c.Assert(violation.Keyword, qt.Equals, "items")
		c.Assert(violation.Offset, qt.Equals, int64(4))
	}
}

func TestSchemaValidatorIncompleteIsNotValid(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	v := newSchemaValidator(defaultSchema)
	c.Assert(v.handle(Event{Kind: ArrayStart}), qt.IsNil)
	c.Assert(v.handle(Event{Kind: StringValue, Str: "a"}), qt.IsNil)
	c.Assert(v.valid(), qt.Equals, false, qt.Commentf("an unclosed array must not validate"))
}

func TestLoadSchemaArtifact(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	// The embedded artifact pins the only shape this decoder accepts.
	c.Assert(defaultSchema.Type, qt.Equals, "array")
	c.Assert(defaultSchema.Items.Type, qt.Equals, "string")
}
