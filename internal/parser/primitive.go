package parser

import "fmt"

// Rule is one grammar production: it reads a prefix of its input and returns
// the unconsumed remainder plus a produced value, or fails without having
// consumed anything. A non-nil error always has dynamic type E, so callers
// holding the type parameter can recover the concrete failure.
type Rule[O any, E Failure[E]] func(in TokenSlice) (TokenSlice, O, error)

// AnyToken consumes exactly one token of any type. It fails only on an
// exhausted stream.
func AnyToken[E Failure[E]](in TokenSlice) (TokenSlice, Token, error) {
	if len(in) == 0 {
		var fail E
		return in, Token{}, fail.FromEndOfInput(in)
	}
	return in[1:], in[0], nil
}

// OfType matches the next token iff its type tag equals tt.
func OfType[E Failure[E]](tt TokenType) Rule[Token, E] {
	return Verify[Token, E](AnyToken[E], tt.String()+" token", func(t Token) bool {
		return t.Type == tt
	})
}

// Named specializations, one per grammatically relevant token type.

func Name[E Failure[E]](in TokenSlice) (TokenSlice, Token, error)      { return OfType[E](NAME)(in) }
func Op[E Failure[E]](in TokenSlice) (TokenSlice, Token, error)        { return OfType[E](OP)(in) }
func Number[E Failure[E]](in TokenSlice) (TokenSlice, Token, error)    { return OfType[E](NUMBER)(in) }
func StringLit[E Failure[E]](in TokenSlice) (TokenSlice, Token, error) { return OfType[E](STRING)(in) }
func Indent[E Failure[E]](in TokenSlice) (TokenSlice, Token, error)    { return OfType[E](INDENT)(in) }
func Dedent[E Failure[E]](in TokenSlice) (TokenSlice, Token, error)    { return OfType[E](DEDENT)(in) }
func Newline[E Failure[E]](in TokenSlice) (TokenSlice, Token, error)   { return OfType[E](NEWLINE)(in) }
func EndMarker[E Failure[E]](in TokenSlice) (TokenSlice, Token, error) {
	return OfType[E](ENDMARKER)(in)
}

// NameWith matches a NAME token whose lexeme equals text exactly. Keywords
// are ordinary NAME tokens to the scanner; the grammar tells them apart
// here, which keeps the scanner free of any keyword table.
func NameWith[E Failure[E]](text string) Rule[Token, E] {
	return Verify[Token, E](Name[E], fmt.Sprintf("%q", text), func(t Token) bool {
		return t.Lexeme == text
	})
}

// OpWith matches an OP token whose lexeme equals text exactly.
func OpWith[E Failure[E]](text string) Rule[Token, E] {
	return Verify[Token, E](Op[E], fmt.Sprintf("%q", text), func(t Token) bool {
		return t.Lexeme == text
	})
}
