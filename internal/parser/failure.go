package parser

import (
	"fmt"
	"strings"
)

// FailKind is the elementary condition a rule failed on.
type FailKind int

const (
	// EndOfInput means a rule required a token but the stream was exhausted.
	EndOfInput FailKind = iota
	// UnexpectedToken means the next token did not satisfy a rule's predicate.
	UnexpectedToken
)

// Failure is the error-construction capability every grammar rule is generic
// over. Constructors are value-receiver methods so a rule can build a failure
// from the zero value of E; WithContext enriches an already-built failure.
// Implementations decide how much detail to retain, which is how the same
// grammar runs in a cheap first-failure mode and a full diagnostic mode
// without changing a single rule.
type Failure[E any] interface {
	error
	FromEndOfInput(in TokenSlice) E
	FromExpectation(in TokenSlice, want string) E
	WithContext(in TokenSlice, label string) E
}

// PlainFailure records where a parse diverged and what was expected there,
// nothing more. Context labels are dropped on the floor.
type PlainFailure struct {
	Kind FailKind
	Want string // expected token description, empty for end of input
	Got  Token  // offending token, zero value for end of input
	// Remaining is the stream length at the divergence point. Because rules
	// never consume on failure, comparing Remaining values orders failures
	// by depth without any extra bookkeeping.
	Remaining int
}

func (f PlainFailure) FromEndOfInput(in TokenSlice) PlainFailure {
	return PlainFailure{Kind: EndOfInput, Remaining: len(in)}
}

func (f PlainFailure) FromExpectation(in TokenSlice, want string) PlainFailure {
	next := PlainFailure{Kind: UnexpectedToken, Want: want, Remaining: len(in)}
	if len(in) > 0 {
		next.Got = in[0]
	} else {
		next.Kind = EndOfInput
	}
	return next
}

func (f PlainFailure) WithContext(in TokenSlice, label string) PlainFailure {
	return f
}

func (f PlainFailure) Error() string {
	if f.Kind == EndOfInput {
		if f.Want != "" {
			return fmt.Sprintf("expected %s, got end of input", f.Want)
		}
		return "unexpected end of input"
	}
	return fmt.Sprintf("expected %s, got %s %q at %d:%d",
		f.Want, f.Got.Type, f.Got.Lexeme, f.Got.Position.Line, f.Got.Position.Column)
}

// ContextFrame names one grammar construct that was being attempted when a
// failure occurred.
type ContextFrame struct {
	Label string
	At    Position
}

// TraceFailure is PlainFailure plus the ordered trail of context labels
// active at the failure, outermost first. This is the mode every
// human-facing surface parses with.
type TraceFailure struct {
	PlainFailure
	Trace []ContextFrame
}

func (f TraceFailure) FromEndOfInput(in TokenSlice) TraceFailure {
	return TraceFailure{PlainFailure: PlainFailure{}.FromEndOfInput(in)}
}

func (f TraceFailure) FromExpectation(in TokenSlice, want string) TraceFailure {
	return TraceFailure{PlainFailure: PlainFailure{}.FromExpectation(in, want)}
}

func (f TraceFailure) WithContext(in TokenSlice, label string) TraceFailure {
	var at Position
	if len(in) > 0 {
		at = in[0].Position
	}
	f.Trace = append([]ContextFrame{{Label: label, At: at}}, f.Trace...)
	return f
}

func (f TraceFailure) Error() string {
	var b strings.Builder
	for _, frame := range f.Trace {
		b.WriteString(frame.Label)
		b.WriteString(": ")
	}
	b.WriteString(f.PlainFailure.Error())
	return b.String()
}
