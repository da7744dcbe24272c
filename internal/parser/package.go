package parser

import "ember/internal/ast"

// ParseSource scans source text and parses it with rich trace failures, the
// mode every human-facing surface uses. Scan errors preempt parsing: a
// stream with holes in it would only produce misleading parse failures.
func ParseSource(source string) (*ast.Module, []ScanError, error) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()
	if len(scanner.errors) > 0 {
		return nil, scanner.errors, nil
	}

	module, err := ParseTokens(tokens)
	return module, nil, err
}

// ParseTokens runs the grammar over a scanned token stream, collecting the
// full context trail on failure. The caller keeps ownership of the tokens;
// the returned AST holds no references into them.
func ParseTokens(tokens []Token) (*ast.Module, error) {
	_, module, err := File[TraceFailure](FilterTokens(tokens))
	return module, err
}

// ParseTokensQuick is ParseTokens without the context bookkeeping: the
// failure carries only the divergence position and the elementary
// condition.
func ParseTokensQuick(tokens []Token) (*ast.Module, error) {
	_, module, err := File[PlainFailure](FilterTokens(tokens))
	return module, err
}

// FilterTokens drops the tokens the grammar never sees: comments and the
// NL markers of blank lines.
func FilterTokens(tokens []Token) TokenSlice {
	out := make(TokenSlice, 0, len(tokens))
	for _, t := range tokens {
		if t.Type == NL || t.Type == COMMENT {
			continue
		}
		out = append(out, t)
	}
	return out
}
