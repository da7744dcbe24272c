package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

const tabSize = 8

// lineLexer classifies the tokens within one physical line. Line structure
// and indentation are the Scanner's business; participle only ever sees a
// single line at a time, so the rule set stays flat.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Name", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `0[xX][0-9a-fA-F]+|[0-9]+(\.[0-9]+)?`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"|'(\\.|[^'\\])*'`},
	{Name: "Op", Pattern: `->|\*\*|==|!=|<=|>=|[-+*/%<>=:,.()\[\]{}]`},
	{Name: "Blank", Pattern: `[ \t\r]+`},
})

// lineTokenTypes maps the line lexer's symbol table onto scanner token
// types. Blank is deliberately absent: whitespace is skipped.
var lineTokenTypes = map[lexer.TokenType]TokenType{}

func init() {
	symbols := lineLexer.Symbols()
	lineTokenTypes[symbols["Comment"]] = COMMENT
	lineTokenTypes[symbols["Name"]] = NAME
	lineTokenTypes[symbols["Number"]] = NUMBER
	lineTokenTypes[symbols["String"]] = STRING
	lineTokenTypes[symbols["Op"]] = OP
}

// Scanner turns source text into the token stream the grammar consumes,
// translating physical indentation into balanced INDENT/DEDENT pairs. Blank
// and comment-only lines emit an insignificant NL and never touch the
// indent stack; every code line ends in a significant NEWLINE, synthesized
// when the file lacks a trailing one. The stream always terminates in
// exactly one ENDMARKER.
type Scanner struct {
	source  string
	tokens  []Token
	indents []int
	errors  []ScanError
}

type ScanError struct {
	Message  string
	Position Position
	Length   int
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source:  source,
		indents: []int{0},
	}
}

func (s *Scanner) ScanTokens() []Token {
	offset := 0
	line := 0
	for _, raw := range strings.Split(s.source, "\n") {
		line++
		s.scanLine(raw, line, offset)
		offset += len(raw) + 1
	}

	end := Position{Line: line + 1, Column: 1, Offset: len(s.source)}
	for len(s.indents) > 1 {
		s.indents = s.indents[:len(s.indents)-1]
		s.add(DEDENT, "", end)
	}
	s.add(ENDMARKER, "", end)
	return s.tokens
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanLine(raw string, line, offset int) {
	toks, ok := s.lexLine(raw, line, offset)
	if !ok {
		return
	}

	code := false
	for _, t := range toks {
		if t.Type != COMMENT {
			code = true
			break
		}
	}
	eol := Position{Line: line, Column: len(raw) + 1, Offset: offset + len(raw)}
	if !code {
		s.tokens = append(s.tokens, toks...)
		s.add(NL, "\n", eol)
		return
	}

	s.scanIndent(raw, line, offset)
	s.tokens = append(s.tokens, toks...)
	s.add(NEWLINE, "\n", eol)
}

// scanIndent compares the line's leading whitespace against the indent
// stack and emits INDENT or DEDENT tokens. Tabs align to the next multiple
// of eight columns. A dedent must land exactly on an outer level.
func (s *Scanner) scanIndent(raw string, line, offset int) {
	width := 0
	chars := 0
	for _, c := range raw {
		if c == ' ' {
			width++
		} else if c == '\t' {
			width = width/tabSize*tabSize + tabSize
		} else {
			break
		}
		chars++
	}

	if width > s.indents[len(s.indents)-1] {
		s.indents = append(s.indents, width)
		s.add(INDENT, raw[:chars], Position{Line: line, Column: 1, Offset: offset})
		return
	}

	at := Position{Line: line, Column: chars + 1, Offset: offset + chars}
	for width < s.indents[len(s.indents)-1] {
		s.indents = s.indents[:len(s.indents)-1]
		s.add(DEDENT, "", at)
	}
	if width != s.indents[len(s.indents)-1] {
		s.errors = append(s.errors, ScanError{
			Message:  "unindent does not match any outer indentation level",
			Position: Position{Line: line, Column: 1, Offset: offset},
			Length:   chars,
		})
	}
}

// lexLine runs the participle line lexer over one raw line, mapping its
// symbols onto scanner token types and file-absolute positions.
func (s *Scanner) lexLine(raw string, line, offset int) ([]Token, bool) {
	lx, err := lineLexer.LexString("", raw)
	if err != nil {
		s.errors = append(s.errors, ScanError{
			Message:  err.Error(),
			Position: Position{Line: line, Column: 1, Offset: offset},
			Length:   len(raw),
		})
		return nil, false
	}

	var toks []Token
	for {
		t, err := lx.Next()
		if err != nil {
			s.errors = append(s.errors, ScanError{
				Message:  err.Error(),
				Position: Position{Line: line, Column: 1, Offset: offset},
				Length:   len(raw),
			})
			return nil, false
		}
		if t.EOF() {
			break
		}
		tt, ok := lineTokenTypes[t.Type]
		if !ok {
			continue
		}
		toks = append(toks, Token{
			Type:   tt,
			Lexeme: t.Value,
			Position: Position{
				Line:   line,
				Column: t.Pos.Column,
				Offset: offset + t.Pos.Offset,
			},
		})
	}
	return toks, true
}

func (s *Scanner) add(tt TokenType, lexeme string, pos Position) {
	s.tokens = append(s.tokens, Token{Type: tt, Lexeme: lexeme, Position: pos})
}
