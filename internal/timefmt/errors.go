package timefmt

import "fmt"

// Kind classifies a ParseError.
type Kind int

const (
	// KindSyntax means the input did not match either duration grammar.
	KindSyntax Kind = iota
	// KindOverflow means the value was well-formed but outside the
	// representable duration range.
	KindOverflow
	// KindNegative means the value was negative where the caller requires a
	// non-negative duration.
	KindNegative
)

// ParseError describes why a duration string was rejected.
type ParseError struct {
	Kind  Kind
	Input string
	Msg   string
	Hint  string // optional usage hint shown to the user, may be empty
}

func (e *ParseError) Error() string {
	return e.Msg
}

func overflowErr(input, what string) *ParseError {
	return &ParseError{
		Kind:  KindOverflow,
		Input: input,
		Msg:   fmt.Sprintf("duration overflow while parsing %s", what),
		Hint:  "this duration is too large to be represented",
	}
}

// IsKind reports whether err is a ParseError of the given kind.
func IsKind(err error, kind Kind) bool {
	if pe, ok := err.(*ParseError); ok {
		return pe.Kind == kind
	}
	return false
}
