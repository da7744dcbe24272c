package parser

import "ember/internal/ast"

// The grammar, one generic rule per production. Rules sequence their pieces
// imperatively and bail on the first failure, returning the untouched input
// so enclosing alternatives can retry from the same position.

// File is the entry production: optional leading newlines, module statements
// until the stream runs out, then the end marker. An empty stream is a valid
// empty module.
func File[E Failure[E]](in TokenSlice) (TokenSlice, *ast.Module, error) {
	rest, _, _ := Many0[Token, E](Newline[E])(in)

	var body []ast.ModuleStmt
	for {
		next, stmt, err := ModuleStmt[E](rest)
		if err != nil {
			// Statements are exhausted; the end marker must be next. When it
			// is not, the statement failure is the real story and is
			// reported instead of a bare ENDMARKER mismatch.
			if len(rest) == 0 {
				return rest, module(in, body, Token{}), nil
			}
			end, marker, endErr := EndMarker[E](rest)
			if endErr != nil {
				return in, nil, err
			}
			return end, module(in, body, marker), nil
		}
		body = append(body, stmt)
		rest = next
	}
}

// ModuleStmt dispatches to the statement alternatives in order; the first
// one to succeed wins. Event definitions are the only kind today, and new
// kinds slot in as further ordered attempts.
func ModuleStmt[E Failure[E]](in TokenSlice) (TokenSlice, ast.ModuleStmt, error) {
	return Context[ast.ModuleStmt, E]("expected event definition", EventDef[E])(in)
}

// EventDef parses `event <name>:` followed by an indented block of one or
// more fields. An empty block is a syntax error: the DEDENT right after the
// INDENT fails the mandatory first field.
func EventDef[E Failure[E]](in TokenSlice) (TokenSlice, ast.ModuleStmt, error) {
	rest, keyword, err := NameWith[E]("event")(in)
	if err != nil {
		return in, nil, err
	}
	rest, name, err := Name[E](rest)
	if err != nil {
		return in, nil, err
	}
	rest, _, err = OpWith[E](":")(rest)
	if err != nil {
		return in, nil, err
	}
	rest, _, err = Newline[E](rest)
	if err != nil {
		return in, nil, err
	}
	rest, _, err = Indent[E](rest)
	if err != nil {
		return in, nil, err
	}
	rest, fields, err := Many1[*ast.EventField, E](EventField[E])(rest)
	if err != nil {
		return in, nil, err
	}
	rest, dedent, err := Dedent[E](rest)
	if err != nil {
		return in, nil, err
	}

	return rest, &ast.EventDef{
		Pos:    posOf(keyword),
		EndPos: endOf(dedent),
		Name:   identOf(name),
		Fields: fields,
	}, nil
}

// EventField parses one `name: Type` line inside an event block. The type
// stays an opaque name at this layer; resolving it belongs to semantic
// analysis.
func EventField[E Failure[E]](in TokenSlice) (TokenSlice, *ast.EventField, error) {
	rest, name, err := Name[E](in)
	if err != nil {
		return in, nil, err
	}
	rest, _, err = OpWith[E](":")(rest)
	if err != nil {
		return in, nil, err
	}
	rest, varType, err := Name[E](rest)
	if err != nil {
		return in, nil, err
	}
	rest, _, err = Newline[E](rest)
	if err != nil {
		return in, nil, err
	}

	return rest, &ast.EventField{
		Pos:     posOf(name),
		EndPos:  endOf(varType),
		Name:    identOf(name),
		VarType: identOf(varType),
	}, nil
}

func module(in TokenSlice, body []ast.ModuleStmt, marker Token) *ast.Module {
	mod := &ast.Module{Body: body}
	if len(in) > 0 {
		mod.Pos = posOf(in[0])
	}
	mod.EndPos = endOf(marker)
	return mod
}

// Token text becomes owned AST string data at node construction; the tokens
// themselves stay read-only.

func posOf(tok Token) ast.Position {
	return ast.Position{
		Offset: tok.Position.Offset,
		Line:   tok.Position.Line,
		Column: tok.Position.Column,
	}
}

func endOf(tok Token) ast.Position {
	return ast.Position{
		Offset: tok.Position.Offset + len(tok.Lexeme),
		Line:   tok.Position.Line,
		Column: tok.Position.Column + len(tok.Lexeme),
	}
}

func identOf(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    posOf(tok),
		EndPos: endOf(tok),
		Value:  tok.Lexeme,
	}
}
