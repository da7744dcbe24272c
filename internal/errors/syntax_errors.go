package errors

import (
	"fmt"
	"strings"

	"ember/internal/parser"
)

// FromScanError lifts a scanner error into a renderable diagnostic.
func FromScanError(scanErr parser.ScanError) CompilerError {
	code := ErrorScanFailure
	if strings.Contains(scanErr.Message, "unindent") {
		code = ErrorBadIndentation
	}
	return CompilerError{
		Level:    Error,
		Code:     code,
		Message:  scanErr.Message,
		Position: scanErr.Position,
		Length:   scanErr.Length,
	}
}

// FromParseFailure unpacks a parse failure: the innermost condition becomes
// the message and the enclosing context labels become notes, outermost
// first, so the reader sees the same trail the grammar walked.
func FromParseFailure(err error) CompilerError {
	fail, ok := err.(parser.TraceFailure)
	if !ok {
		return CompilerError{
			Level:   Error,
			Code:    ErrorUnexpectedToken,
			Message: err.Error(),
			Length:  1,
		}
	}

	diag := CompilerError{
		Level:    Error,
		Position: fail.Got.Position,
		Length:   len(fail.Got.Lexeme),
	}
	switch fail.Kind {
	case parser.EndOfInput:
		diag.Code = ErrorEndOfInput
		diag.Message = "unexpected end of input"
		if fail.Want != "" {
			diag.Message = fmt.Sprintf("expected %s, got end of input", fail.Want)
		}
	default:
		diag.Code = ErrorUnexpectedToken
		diag.Message = fmt.Sprintf("expected %s, got %s %q",
			fail.Want, fail.Got.Type, fail.Got.Lexeme)
	}

	for _, frame := range fail.Trace {
		diag.Notes = append(diag.Notes,
			fmt.Sprintf("while parsing %s (at %d:%d)",
				strings.TrimPrefix(frame.Label, "expected "), frame.At.Line, frame.At.Column))
	}
	return diag
}
