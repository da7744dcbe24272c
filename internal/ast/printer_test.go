package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func greetEvent() *EventDef {
	return &EventDef{
		Name: Ident{Value: "Greet"},
		Fields: []*EventField{
			{Name: Ident{Value: "name"}, VarType: Ident{Value: "bytes32"}},
			{Name: Ident{Value: "age"}, VarType: Ident{Value: "uint8"}},
		},
	}
}

func TestEventFieldString(t *testing.T) {
	field := &EventField{
		Name:    Ident{Value: "age"},
		VarType: Ident{Value: "uint8"},
	}
	assert.Equal(t, "age: uint8", field.String())
}

func TestEventDefString(t *testing.T) {
	assert.Equal(t, "event Greet:\n    name: bytes32\n    age: uint8\n", greetEvent().String())
}

func TestModuleString(t *testing.T) {
	module := &Module{
		Body: []ModuleStmt{
			greetEvent(),
			&EventDef{
				Name: Ident{Value: "Other"},
				Fields: []*EventField{
					{Name: Ident{Value: "info"}, VarType: Ident{Value: "bool"}},
				},
			},
		},
	}
	expected := "event Greet:\n    name: bytes32\n    age: uint8\n" +
		"\nevent Other:\n    info: bool\n"
	assert.Equal(t, expected, module.String())
}

func TestEmptyModuleString(t *testing.T) {
	assert.Equal(t, "", (&Module{}).String())
}

func TestNodePositions(t *testing.T) {
	event := &EventDef{
		Pos:    Position{Offset: 0, Line: 1, Column: 1},
		EndPos: Position{Offset: 46, Line: 3, Column: 15},
	}
	assert.Equal(t, 1, event.NodePos().Line)
	assert.Equal(t, 3, event.NodeEndPos().Line)

	var stmt ModuleStmt = event
	assert.Equal(t, event.Pos, stmt.NodePos())
}
