package ast

// TypeField is a single (id, type-id) pair, used both for record fields
// and for function parameters.
type TypeField struct {
	ID     string
	TypeID string
}

// TypeDeclaration introduces a new named type. Bound into the type
// category of the enclosing Let's scope.
type TypeDeclaration struct {
	ID   string
	Type Type
}

func (*TypeDeclaration) declarationNode() {}

// VariableDeclaration introduces a new variable, optionally annotated
// with a type id. Its scope begins after the declaration (spec.md §4.1).
type VariableDeclaration struct {
	ID     string
	TypeID *string // nil when the declaration omits an explicit type
	Expr   Expression
}

func (*VariableDeclaration) declarationNode() {}

// FunctionDeclaration introduces a new function or procedure.
// Parameters are ordered; ReturnTypeID is nil for a procedure.
type FunctionDeclaration struct {
	ID           string
	Parameters   []*TypeField
	ReturnTypeID *string
	Body         Expression
}

func (*FunctionDeclaration) declarationNode() {}
