package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	String() string
}

func (m *Module) NodePos() Position    { return m.Pos }
func (m *Module) NodeEndPos() Position { return m.EndPos }

func (e *EventDef) NodePos() Position    { return e.Pos }
func (e *EventDef) NodeEndPos() Position { return e.EndPos }

func (f *EventField) NodePos() Position    { return f.Pos }
func (f *EventField) NodeEndPos() Position { return f.EndPos }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
