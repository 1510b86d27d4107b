package jsonset

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSetCollectorCollects(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	sc := newSetCollector()
	events := []Event{
		{Kind: ArrayStart},
		{Kind: StringValue, Str: "a"},
		{Kind: StringValue, Str: "b"},
		{Kind: StringValue, Str: "a"},
		{Kind: ArrayEnd},
	}
	for _, ev := range events {
		c.Assert(sc.handle(ev), qt.IsNil)
	}

	set, ok := sc.result()
	c.Assert(ok, qt.Equals, true)
	c.Assert(set.Cardinality(), qt.Equals, 2)
	c.Assert(set.Contains("a", "b"), qt.Equals, true)
}

func TestSetCollectorRejectsWithoutArrayStart(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	sc := newSetCollector()
	err := sc.handle(Event{Kind: StringValue, Str: "a"})

	var violation *SchemaViolationError
	c.Assert(err, qt.ErrorAs, &violation)
	_, ok := sc.result()
	c.Assert(ok, qt.Equals, false)
}

func TestSetCollectorRejectsNonStringElements(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	for _, ev := range []Event{
		{Kind: Other, Detail: "number"},
		{Kind: Other, Detail: "object"},
		{Kind: ArrayStart}, // the starting state is never re-entered
	} {
		sc := newSetCollector()
		c.Assert(sc.handle(Event{Kind: ArrayStart}), qt.IsNil)
		c.Assert(sc.handle(ev), qt.IsNotNil)
	}
}

func TestSetCollectorIncompleteIsNotAccepted(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	sc := newSetCollector()
	c.Assert(sc.handle(Event{Kind: ArrayStart}), qt.IsNil)
	c.Assert(sc.handle(Event{Kind: StringValue, Str: "a"}), qt.IsNil)

	_, ok := sc.result()
	c.Assert(ok, qt.Equals, false, qt.Commentf("no accept state before the closing bracket"))
}

func TestSetCollectorRejectsSecondArray(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	sc := newSetCollector()
	c.Assert(sc.handle(Event{Kind: ArrayStart}), qt.IsNil)
	c.Assert(sc.handle(Event{Kind: ArrayEnd}), qt.IsNil)
	c.Assert(sc.handle(Event{Kind: ArrayStart}), qt.IsNotNil, qt.Commentf("exactly one top-level array is allowed"))
}
