// Package check implements the pluggable semantic-check framework
// (spec.md §4.3) and its built-in rule set (spec.md §4.4). Each Rule
// runs its own full pre-order traversal of the AST; rules never
// short-circuit one another, matching the "every rule sees every node"
// contract and the framework's CheckBelow pattern (original_source/
// checker.cc).
package check

import "github.com/tiger-compiler/core/internal/ast"

// Rule is a stateful object applied once per node per traversal. A rule
// must not mutate the AST or the symbol table, and must be safe to
// invoke repeatedly on the same node (idempotent-per-node).
type Rule interface {
	Apply(node ast.Expression)
}

// Run drives one full pre-order traversal of root for each rule in
// order, so that diagnostic ordering is: rule-registration order, then
// traversal order within each rule (spec.md §5 "Ordering").
func Run(root ast.Expression, rules []Rule) {
	for _, r := range rules {
		walk(root, r)
	}
}

// walk visits node, then recurses pre-order into every child expression.
// It is a private, check-package-local type switch rather than a shared
// ast.Children() helper, mirroring how the symbol-table builder and this
// framework each do their own bespoke structural recursion instead of a
// generic Visitor/Accept mechanism (spec.md §9).
func walk(node ast.Expression, r Rule) {
	if node == nil {
		return
	}
	r.Apply(node)

	switch n := node.(type) {
	case *ast.StringConstant, *ast.IntegerConstant, *ast.Nil, *ast.Break:
		// leaves

	case *ast.LValueRef:
		walkLValueChildren(n.LValue, r)

	case *ast.Negated:
		walk(n.Expr, r)

	case *ast.Binary:
		walk(n.Left, r)
		walk(n.Right, r)

	case *ast.Assignment:
		walkLValueChildren(n.LValue, r)
		walk(n.Expr, r)

	case *ast.FunctionCall:
		for _, arg := range n.Args {
			walk(arg, r)
		}

	case *ast.Parenthesized:
		for _, sub := range n.Exprs {
			walk(sub, r)
		}

	case *ast.RecordLiteral:
		for _, f := range n.Fields {
			walk(f.Expr, r)
		}

	case *ast.ArrayLiteral:
		walk(n.Size, r)
		walk(n.Value, r)

	case *ast.IfThen:
		walk(n.Cond, r)
		walk(n.Then, r)

	case *ast.IfThenElse:
		walk(n.Cond, r)
		walk(n.Then, r)
		walk(n.Else, r)

	case *ast.While:
		walk(n.Cond, r)
		walk(n.Body, r)

	case *ast.For:
		walk(n.Start, r)
		walk(n.End, r)
		walk(n.Body, r)

	case *ast.Let:
		for _, d := range n.Declarations {
			walkDeclarationChildren(d, r)
		}
		for _, b := range n.Body {
			walk(b, r)
		}

	default:
		panic("check: unhandled expression type")
	}
}

func walkDeclarationChildren(d ast.Declaration, r Rule) {
	switch decl := d.(type) {
	case *ast.TypeDeclaration:
		// no expression children
	case *ast.FunctionDeclaration:
		walk(decl.Body, r)
	case *ast.VariableDeclaration:
		walk(decl.Expr, r)
	default:
		panic("check: unhandled declaration type")
	}
}

func walkLValueChildren(lv ast.LValue, r Rule) {
	switch n := lv.(type) {
	case *ast.Identifier:
		// leaf
	case *ast.RecordField:
		walkLValueChildren(n.LValue, r)
	case *ast.ArrayElement:
		walkLValueChildren(n.LValue, r)
		walk(n.Expr, r)
	default:
		panic("check: unhandled lvalue type")
	}
}
