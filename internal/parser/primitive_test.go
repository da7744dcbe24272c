package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tok(tt TokenType, lexeme string) Token {
	return Token{Type: tt, Lexeme: lexeme}
}

func TestAnyTokenConsumesOne(t *testing.T) {
	in := TokenSlice{tok(NAME, "event"), tok(NAME, "Greet")}

	rest, got, err := AnyToken[PlainFailure](in)
	assert.NoError(t, err)
	assert.Equal(t, "event", got.Lexeme)
	assert.Len(t, rest, 1)
}

func TestAnyTokenEmptyStream(t *testing.T) {
	rest, _, err := AnyToken[PlainFailure](nil)
	assert.Error(t, err)
	assert.Empty(t, rest)

	fail := err.(PlainFailure)
	assert.Equal(t, EndOfInput, fail.Kind)
	assert.Equal(t, 0, fail.Remaining)
}

func TestOfTypeMismatchDoesNotConsume(t *testing.T) {
	in := TokenSlice{tok(OP, ":"), tok(NAME, "x")}

	rest, _, err := Name[PlainFailure](in)
	assert.Error(t, err)
	assert.Len(t, rest, 2, "failed match must leave the stream untouched")

	fail := err.(PlainFailure)
	assert.Equal(t, UnexpectedToken, fail.Kind)
	assert.Equal(t, "NAME token", fail.Want)
	assert.Equal(t, ":", fail.Got.Lexeme)
	assert.Equal(t, 2, fail.Remaining)
}

func TestNamedSpecializations(t *testing.T) {
	cases := []struct {
		rule Rule[Token, PlainFailure]
		tok  Token
	}{
		{Name[PlainFailure], tok(NAME, "x")},
		{Op[PlainFailure], tok(OP, ":")},
		{Number[PlainFailure], tok(NUMBER, "42")},
		{StringLit[PlainFailure], tok(STRING, `"hi"`)},
		{Indent[PlainFailure], tok(INDENT, "    ")},
		{Dedent[PlainFailure], tok(DEDENT, "")},
		{Newline[PlainFailure], tok(NEWLINE, "\n")},
		{EndMarker[PlainFailure], tok(ENDMARKER, "")},
	}

	for _, tc := range cases {
		rest, got, err := tc.rule(TokenSlice{tc.tok})
		assert.NoError(t, err, "matcher for %s", tc.tok.Type)
		assert.Equal(t, tc.tok, got)
		assert.Empty(t, rest)
	}
}

func TestNameWithExactText(t *testing.T) {
	in := TokenSlice{tok(NAME, "event")}

	rest, got, err := NameWith[PlainFailure]("event")(in)
	assert.NoError(t, err)
	assert.Equal(t, "event", got.Lexeme)
	assert.Empty(t, rest)

	// Case-sensitive, no normalization.
	rest, _, err = NameWith[PlainFailure]("Event")(in)
	assert.Error(t, err)
	assert.Len(t, rest, 1)
	assert.Equal(t, `"Event"`, err.(PlainFailure).Want)
}

func TestOpWithExactText(t *testing.T) {
	in := TokenSlice{tok(OP, ":")}

	_, got, err := OpWith[PlainFailure](":")(in)
	assert.NoError(t, err)
	assert.Equal(t, ":", got.Lexeme)

	_, _, err = OpWith[PlainFailure](",")(in)
	assert.Error(t, err)
}

func TestNameWithRejectsWrongType(t *testing.T) {
	// A keyword matcher still requires a NAME token underneath.
	in := TokenSlice{tok(OP, "event")}
	rest, _, err := NameWith[PlainFailure]("event")(in)
	assert.Error(t, err)
	assert.Len(t, rest, 1)
	assert.Equal(t, "NAME token", err.(PlainFailure).Want)
}
