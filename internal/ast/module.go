package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Offset int
	Line   int
	Column int
}

// Ident represents a name appearing in source: an event name, a field name
// or a type name.
// Example: "Greet", "age", "uint8"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Module is the root AST node: the ordered top-level statements of one
// source file. Declaration order is preserved because later passes care
// about it even though parsing does not.
type Module struct {
	Pos    Position
	EndPos Position
	Body   []ModuleStmt
}

// EventDef declares an event and its fields.
// Example: "event Greet:\n    name: bytes32\n    age: uint8"
// A parsed event always has at least one field; the grammar rejects an
// empty block outright.
type EventDef struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Fields []*EventField
}

// EventField is one `name: Type` declaration inside an event block. The
// type is kept as the raw source name; resolving it to a concrete type is
// a semantic-analysis concern.
type EventField struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	VarType Ident
}
