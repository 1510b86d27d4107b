package jsonset

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

type collectorState int

const (
	expectArrayStart collectorState = iota
	expectValueOrArrayEnd
	collected
)

// setCollector accumulates top-level string values into a set. It accepts
// exactly one array and never re-enters its starting state; duplicate
// strings collapse silently.
type setCollector struct {
	state collectorState
	set   mapset.Set[string]
}

func newSetCollector() *setCollector {
	return &setCollector{
		state: expectArrayStart,
		set:   mapset.NewSet[string](),
	}
}

func (sc *setCollector) handle(ev Event) error {
	switch sc.state {
	case expectArrayStart:
		if ev.Kind == ArrayStart {
			sc.state = expectValueOrArrayEnd
			return nil
		}
		return &SchemaViolationError{
			Offset:  ev.Offset,
			Keyword: "type",
			Detail:  fmt.Sprintf("expected array start, got %s", ev.describe()),
		}

	case expectValueOrArrayEnd:
		switch ev.Kind {
		case StringValue:
			sc.set.Add(ev.Str)
			return nil
		case ArrayEnd:
			sc.state = collected
			return nil
		}
		return &SchemaViolationError{
			Offset:  ev.Offset,
			Keyword: "items",
			Detail:  fmt.Sprintf("expected string value or array end, got %s", ev.describe()),
		}

	default:
		return &SchemaViolationError{
			Offset:  ev.Offset,
			Keyword: "type",
			Detail:  fmt.Sprintf("unexpected %s after array end", ev.describe()),
		}
	}
}

// result returns the collected set, and whether the automaton reached its
// accept state.
func (sc *setCollector) result() (mapset.Set[string], bool) {
	return sc.set, sc.state == collected
}
