// Package ast defines the Abstract Syntax Tree node types produced by a
// Tiger parser (out of scope here) and consumed by the symbol table, the
// type finder and the semantic checkers.
//
// The tree is a rooted, acyclic structure of three disjoint node families:
// Expression, LValue and Declaration, plus the Type family used inside
// declarations. Every node is a distinct Go type implementing the
// corresponding marker interface; there is no shared base "node" struct
// and no Accept/Visitor double dispatch — callers pattern-match with a
// type switch, matching the closed-sum-type design called for by a
// polymorphic tree with three disjoint variant families.
package ast

// Expression is any node that can appear in value position.
type Expression interface {
	expressionNode()
}

// LValue is any node that denotes a storage location.
type LValue interface {
	lvalueNode()
}

// Declaration is any node that can appear inside a Let's declaration list.
type Declaration interface {
	declarationNode()
}

// Type is any node that can appear on the right-hand side of a
// TypeDeclaration.
type Type interface {
	typeNode()
}

// StringConstant is a string literal expression.
type StringConstant struct {
	Value string
}

func (*StringConstant) expressionNode() {}

// IntegerConstant is an integer literal expression.
type IntegerConstant struct {
	Value int
}

func (*IntegerConstant) expressionNode() {}

// Nil is the nil literal. Its type is determined by context; see
// typeinfer.Finder and check.NilRule.
type Nil struct{}

func (*Nil) expressionNode() {}

// Break is the break expression, legal only inside a loop body (not
// enforced by this core; see spec.md §4.4 for the rules that are).
type Break struct{}

func (*Break) expressionNode() {}

// LValueRef wraps an LValue used in value position.
type LValueRef struct {
	LValue LValue
}

func (*LValueRef) expressionNode() {}

// Negated is unary minus.
type Negated struct {
	Expr Expression
}

func (*Negated) expressionNode() {}

// Binary is a binary operator expression.
type Binary struct {
	Left  Expression
	Right Expression
	Op    Operator
}

func (*Binary) expressionNode() {}

// Assignment assigns Expr to LValue. Produces no value.
type Assignment struct {
	LValue LValue
	Expr   Expression
}

func (*Assignment) expressionNode() {}

// FunctionCall invokes the function named ID with the given arguments, in
// order.
type FunctionCall struct {
	ID   string
	Args []Expression
}

func (*FunctionCall) expressionNode() {}

// Parenthesized is an ordered, possibly empty sequence of expressions
// evaluated for effect; its value (if any) is that of the last element.
type Parenthesized struct {
	Exprs []Expression
}

func (*Parenthesized) expressionNode() {}

// IfThen is a conditional with no else branch. Produces no value.
type IfThen struct {
	Cond Expression
	Then Expression
}

func (*IfThen) expressionNode() {}

// IfThenElse is a conditional with both branches. Its value is that of
// Then (see typeinfer.Finder).
type IfThenElse struct {
	Cond Expression
	Then Expression
	Else Expression
}

func (*IfThenElse) expressionNode() {}

// While is a loop with a leading condition. Produces no value.
type While struct {
	Cond Expression
	Body Expression
}

func (*While) expressionNode() {}

// For is a counted loop over the inclusive range [Start, End]. ID names
// the loop variable. For creates no scope and the symbol table does not
// bind ID, so a reference to it inside Body resolves only to an outer
// binding of the same name. Produces no value.
type For struct {
	ID    string
	Start Expression
	End   Expression
	Body  Expression
}

func (*For) expressionNode() {}

// Let introduces a new scope: Declarations are bound per the two-pass
// rule in spec.md §4.1, then Body is evaluated in order. Its value (if
// any) is that of the last Body element.
type Let struct {
	Declarations []Declaration
	Body         []Expression
}

func (*Let) expressionNode() {}
