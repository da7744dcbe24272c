package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"ember/internal/parser"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// CompilerError is one renderable diagnostic with enough structure for both
// terminal output and editor tooling.
type CompilerError struct {
	Level    ErrorLevel
	Code     string          // Error code like E0100
	Message  string          // Primary message
	Position parser.Position // Location in source
	Length   int             // Width of the problematic region
	Notes    []string        // Additional context, outermost first
	HelpText string
}

// ErrorReporter renders diagnostics against the source they point into.
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders one diagnostic: a coloured header, the location, the
// offending source line with a caret marker, then notes and help.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder

	levelColor := er.levelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	width := er.lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, dim("│"))

	if err.Position.Line > 0 && err.Position.Line <= len(er.lines) {
		bold := color.New(color.Bold).SprintFunc()
		fmt.Fprintf(&b, "%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, err.Position.Line)),
			dim("│"),
			er.lines[err.Position.Line-1])
		fmt.Fprintf(&b, "%s %s %s\n", indent, dim("│"), er.marker(err))
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, dim("│"), noteColor("note:"), note)
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, dim("│"), helpColor("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

func (er *ErrorReporter) levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (er *ErrorReporter) marker(err CompilerError) string {
	length := err.Length
	if length <= 0 {
		length = 1
	}
	column := err.Position.Column
	if column < 1 {
		column = 1
	}
	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if err.Level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return strings.Repeat(" ", column-1) + markerColor(strings.Repeat("^", length))
}

func (er *ErrorReporter) lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}
