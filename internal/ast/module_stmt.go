package ast

// ModuleStmt is the closed set of top-level statement kinds. Adding a kind
// means adding a node type and its marker method here, never modifying the
// existing ones.
type ModuleStmt interface {
	Node
	isModuleStmt()
}

func (*EventDef) isModuleStmt() {}
