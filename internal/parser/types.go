package parser

// TokenType classifies the tokens the scanner produces. The parser only ever
// inspects the type tag and the lexeme; everything else about a token is
// positional metadata for diagnostics.
type TokenType int

const (
	ILLEGAL TokenType = iota
	ENDMARKER

	// Content-bearing tokens
	NAME
	OP
	NUMBER
	STRING

	// Structural tokens
	NEWLINE // grammatically significant end of a logical line
	NL      // blank or comment-only line, filtered before parsing
	COMMENT
	INDENT
	DEDENT
)

var tokenTypeNames = map[TokenType]string{
	ILLEGAL:   "ILLEGAL",
	ENDMARKER: "ENDMARKER",
	NAME:      "NAME",
	OP:        "OP",
	NUMBER:    "NUMBER",
	STRING:    "STRING",
	NEWLINE:   "NEWLINE",
	NL:        "NL",
	COMMENT:   "COMMENT",
	INDENT:    "INDENT",
	DEDENT:    "DEDENT",
}

func (tt TokenType) String() string {
	if name, ok := tokenTypeNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

// Token is an immutable unit of lexical input. Tokens are produced once by
// the scanner and only ever read afterwards.
type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

// TokenSlice is a borrowed view of the remaining token stream. Consuming a
// token means re-slicing past it; the backing array is never copied or
// written to, so any number of rules may inspect the same stream.
type TokenSlice []Token
