package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ember/internal/parser"
)

// ConvertScanErrors transforms scanner errors into LSP diagnostics:
// unclassifiable input, inconsistent dedents and the like.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		length := scanErr.Length
		if length <= 0 {
			length = 1
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rangeAt(scanErr.Position, length),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("ember-scanner"),
			Message:  scanErr.Message,
		})
	}

	return diagnostics
}

// ConvertParseFailure transforms the parser's failure value into a single
// diagnostic at the divergence point, message carrying the full context
// trail.
func ConvertParseFailure(err error) []protocol.Diagnostic {
	if err == nil {
		return nil
	}

	diagnostic := protocol.Diagnostic{
		Range:    rangeAt(parser.Position{Line: 1, Column: 1}, 1),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("ember-parser"),
		Message:  err.Error(),
	}
	if fail, ok := err.(parser.TraceFailure); ok && fail.Got.Position.Line > 0 {
		length := len(fail.Got.Lexeme)
		if length == 0 {
			length = 1
		}
		diagnostic.Range = rangeAt(fail.Got.Position, length)
	}

	return []protocol.Diagnostic{diagnostic}
}

func rangeAt(pos parser.Position, length int) protocol.Range {
	line := pos.Line
	if line < 1 {
		line = 1
	}
	column := pos.Column
	if column < 1 {
		column = 1
	}
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(line - 1),
			Character: uint32(column - 1),
		},
		End: protocol.Position{
			Line:      uint32(line - 1),
			Character: uint32(column - 1 + length),
		},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
