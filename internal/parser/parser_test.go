package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ember/internal/ast"
)

func TestParseEmptySource(t *testing.T) {
	examples := []string{"", "  \t ", " \n\n   \t \n \t "}

	for _, source := range examples {
		module, scanErrors, err := ParseSource(source)
		assert.Empty(t, scanErrors, "source %q", source)
		assert.NoError(t, err, "source %q", source)
		assert.NotNil(t, module, "source %q", source)
		assert.Empty(t, module.Body, "source %q", source)
	}
}

func TestParseEmptyTokenStream(t *testing.T) {
	module, err := ParseTokens(nil)
	assert.NoError(t, err)
	assert.NotNil(t, module)
	assert.Empty(t, module.Body)
}

func TestParseSingleEvent(t *testing.T) {
	examples := []string{
		// No leading or trailing whitespace
		"event Greet:\n    name: bytes32\n    age: uint8",
		// Leading whitespace
		"\nevent Greet:\n    name: bytes32\n    age: uint8",
		// Leading and trailing whitespace
		"\nevent Greet:\n    name: bytes32\n    age: uint8\n",
	}

	for _, source := range examples {
		module, scanErrors, err := ParseSource(source)
		assert.Empty(t, scanErrors, "source %q", source)
		assert.NoError(t, err, "source %q", source)
		assert.Len(t, module.Body, 1)

		event, ok := module.Body[0].(*ast.EventDef)
		assert.True(t, ok, "statement should be an EventDef")
		assert.Equal(t, "Greet", event.Name.Value)
		assert.Len(t, event.Fields, 2)
		assert.Equal(t, "name", event.Fields[0].Name.Value)
		assert.Equal(t, "bytes32", event.Fields[0].VarType.Value)
		assert.Equal(t, "age", event.Fields[1].Name.Value)
		assert.Equal(t, "uint8", event.Fields[1].VarType.Value)
	}
}

func TestParseWhitespaceInvariance(t *testing.T) {
	examples := []string{
		// No blank line between statements
		"event Greet:\n    name: bytes32\n    age: uint8\nevent Other:\n    info1: uint256\n    info2: bool",
		// Leading whitespace
		"\nevent Greet:\n    name: bytes32\n    age: uint8\nevent Other:\n    info1: uint256\n    info2: bool",
		// Trailing whitespace
		"event Greet:\n    name: bytes32\n    age: uint8\nevent Other:\n    info1: uint256\n    info2: bool\n",
		// Blank lines everywhere
		"\n\nevent Greet:\n    name: bytes32\n    age: uint8\n\n\nevent Other:\n    info1: uint256\n    info2: bool\n\n",
	}

	var canonical string
	for i, source := range examples {
		module, scanErrors, err := ParseSource(source)
		assert.Empty(t, scanErrors, "source %q", source)
		assert.NoError(t, err, "source %q", source)
		assert.Len(t, module.Body, 2)

		first := module.Body[0].(*ast.EventDef)
		second := module.Body[1].(*ast.EventDef)
		assert.Equal(t, "Greet", first.Name.Value)
		assert.Equal(t, "Other", second.Name.Value)

		if i == 0 {
			canonical = module.String()
		} else {
			assert.Equal(t, canonical, module.String(),
				"blank lines must not change the resulting AST")
		}
	}
}

func TestParsePrintsCanonicalSource(t *testing.T) {
	module, _, err := ParseSource("event Greet:\n    name: bytes32\n    age: uint8\n")
	assert.NoError(t, err)
	assert.Equal(t, "event Greet:\n    name: bytes32\n    age: uint8\n", module.String())
}

func TestParseConsumesThroughEndMarker(t *testing.T) {
	scanner := NewScanner("event Greet:\n    name: bytes32\n    age: uint8\n")
	rest, module, err := File[TraceFailure](FilterTokens(scanner.ScanTokens()))
	assert.NoError(t, err)
	assert.NotNil(t, module)
	assert.Empty(t, rest, "the stream must be fully consumed, end marker included")
}

func TestEventRequiresAtLeastOneField(t *testing.T) {
	// An indent immediately followed by a dedent: a syntax error, never an
	// EventDef with empty fields.
	in := []Token{
		tok(NAME, "event"), tok(NAME, "Empty"), tok(OP, ":"), tok(NEWLINE, "\n"),
		tok(INDENT, "    "), tok(DEDENT, ""), tok(ENDMARKER, ""),
	}

	module, err := ParseTokens(in)
	assert.Error(t, err)
	assert.Nil(t, module)

	fail := err.(TraceFailure)
	assert.Equal(t, UnexpectedToken, fail.Kind)
	assert.Equal(t, 2, fail.Remaining, "failure is at the dedent, two tokens from the end")
}

func TestEventDefFailureIsAtomic(t *testing.T) {
	// Missing the final dedent.
	in := TokenSlice{
		tok(NAME, "event"), tok(NAME, "Greet"), tok(OP, ":"), tok(NEWLINE, "\n"),
		tok(INDENT, "    "),
		tok(NAME, "name"), tok(OP, ":"), tok(NAME, "bytes32"), tok(NEWLINE, "\n"),
		tok(ENDMARKER, ""),
	}

	rest, stmt, err := EventDef[TraceFailure](in)
	assert.Error(t, err)
	assert.Nil(t, stmt, "no partial EventDef on failure")
	assert.Len(t, rest, len(in), "failed rule must hand back its input untouched")

	fail := err.(TraceFailure)
	assert.Equal(t, "DEDENT token", fail.Want)
	assert.Equal(t, 1, fail.Remaining, "divergence is at the end marker")
}

func TestParseFailureCarriesContextTrail(t *testing.T) {
	scanner := NewScanner("event Greet:\n    name = bytes32\n")
	tokens := scanner.ScanTokens()
	assert.Empty(t, scanner.Errors())

	module, err := ParseTokens(tokens)
	assert.Nil(t, module)
	assert.Error(t, err)
	assert.Equal(t, `expected event definition: expected ":", got OP "=" at 2:10`, err.Error())

	fail := err.(TraceFailure)
	assert.Len(t, fail.Trace, 1)
	assert.Equal(t, "expected event definition", fail.Trace[0].Label)
}

func TestParseQuickDropsContext(t *testing.T) {
	scanner := NewScanner("event Greet:\n    name = bytes32\n")
	tokens := scanner.ScanTokens()

	module, err := ParseTokensQuick(tokens)
	assert.Nil(t, module)
	assert.Error(t, err)
	assert.NotContains(t, err.Error(), "event definition")

	fail := err.(PlainFailure)
	assert.Equal(t, `":"`, fail.Want)
	assert.Equal(t, "=", fail.Got.Lexeme)
}

func TestParseSourceScanErrorsPreemptParsing(t *testing.T) {
	module, scanErrors, err := ParseSource("event A:\n    x: bool\n  y: bool\n")
	assert.Nil(t, module)
	assert.NotEmpty(t, scanErrors)
	assert.NoError(t, err)
}

func TestModuleStmtRejectsNonEvent(t *testing.T) {
	in := TokenSlice{tok(NAME, "import"), tok(NAME, "foo"), tok(NEWLINE, "\n")}

	rest, _, err := ModuleStmt[TraceFailure](in)
	assert.Error(t, err)
	assert.Len(t, rest, 3)
	assert.Equal(t, `"event"`, err.(TraceFailure).Want)
}
