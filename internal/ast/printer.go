package ast

import (
	"fmt"
	"strings"
)

// String methods render nodes back to canonical source text.

func (m *Module) String() string {
	var b strings.Builder
	for i, stmt := range m.Body {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}
	return b.String()
}

func (e *EventDef) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "event %s:\n", e.Name.Value)
	for _, field := range e.Fields {
		b.WriteString("    " + field.String() + "\n")
	}
	return b.String()
}

func (f *EventField) String() string {
	return fmt.Sprintf("%s: %s", f.Name.Value, f.VarType.Value)
}

func (i *Ident) String() string {
	return i.Value
}
