package lsp

import "ember/internal/parser"

// Indices into SemanticTokenTypes.
const (
	semKeyword uint32 = iota
	semType
	semVariable
	semNumber
	semString
	semOperator
	semComment
)

var builtinTypes = []string{
	"address",
	"bool",
	"bytes32",
	"int128",
	"uint8",
	"uint256",
}

var builtinTypeSet = func() map[string]bool {
	set := make(map[string]bool, len(builtinTypes))
	for _, name := range builtinTypes {
		set[name] = true
	}
	return set
}()

type semanticToken struct {
	Line           uint32 // 0-based
	StartChar      uint32 // 0-based
	Length         uint32
	TokenType      uint32
	TokenModifiers uint32
}

// collectSemanticTokens classifies the raw token stream for highlighting.
// It works even on files that fail to parse, which is when highlighting
// matters most.
func collectSemanticTokens(source string) []semanticToken {
	scanner := parser.NewScanner(source)

	var out []semanticToken
	for _, token := range scanner.ScanTokens() {
		var kind uint32
		switch token.Type {
		case parser.NAME:
			kind = semVariable
			if token.Lexeme == "event" {
				kind = semKeyword
			} else if builtinTypeSet[token.Lexeme] {
				kind = semType
			}
		case parser.NUMBER:
			kind = semNumber
		case parser.STRING:
			kind = semString
		case parser.OP:
			kind = semOperator
		case parser.COMMENT:
			kind = semComment
		default:
			continue
		}
		out = append(out, semanticToken{
			Line:      uint32(token.Position.Line - 1),
			StartChar: uint32(token.Position.Column - 1),
			Length:    uint32(len(token.Lexeme)),
			TokenType: kind,
		})
	}
	return out
}
