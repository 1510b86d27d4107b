package jsonset

// Kind tags a single parse event.
type Kind int

const (
	// ArrayStart is the opening bracket of an array.
	ArrayStart Kind = iota
	// ArrayEnd is the closing bracket of an array.
	ArrayEnd
	// StringValue is a string scalar.
	StringValue
	// Other is any token the flat-array schema has no use for: object
	// delimiters, numbers, booleans and nulls.
	Other
)

func (k Kind) String() string {
	switch k {
	case ArrayStart:
		return "array start"
	case ArrayEnd:
		return "array end"
	case StringValue:
		return "string"
	default:
		return "other"
	}
}

// Event is one token observed in the input stream. Events are dispatched to
// every automaton participating in a decode.
type Event struct {
	Kind   Kind
	Str    string // the decoded value when Kind is StringValue
	Detail string // token description when Kind is Other
	Offset int64  // byte offset of the token within the input
}

func (e Event) describe() string {
	if e.Kind == Other {
		return e.Detail
	}
	return e.Kind.String()
}
