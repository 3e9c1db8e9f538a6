package check

import (
	"github.com/tiger-compiler/core/internal/ast"
	"github.com/tiger-compiler/core/internal/diag"
	"github.com/tiger-compiler/core/internal/symbols"
	"github.com/tiger-compiler/core/internal/typeinfer"
)

// NilRule enforces that nil appears only where the surrounding context
// demands a known record type (Tiger spec §2.7): as one operand of any
// Binary or on the right of an assignment, with the other side
// unaliasing to a record type. Not present in original_source/
// checker.cc's sample (an older draft); grounded on the nil scenarios in
// original_source/checker_test.cc, which this rule reproduces exactly.
type NilRule struct {
	diags   *diag.List
	symbols *symbols.Table
	types   *typeinfer.Finder
}

// NewNilRule constructs a NilRule.
func NewNilRule(diags *diag.List, st *symbols.Table, tf *typeinfer.Finder) *NilRule {
	return &NilRule{diags: diags, symbols: st, types: tf}
}

func (rule *NilRule) Apply(node ast.Expression) {
	switch n := node.(type) {
	case *ast.Binary:
		_, leftNil := n.Left.(*ast.Nil)
		_, rightNil := n.Right.(*ast.Nil)
		switch {
		case leftNil && !rightNil:
			rule.requireRecord(node, rule.types.TypeOf(n.Right))
		case rightNil && !leftNil:
			rule.requireRecord(node, rule.types.TypeOf(n.Left))
		}
	case *ast.Assignment:
		if _, ok := n.Expr.(*ast.Nil); ok {
			rule.requireRecord(node, rule.types.LValueType(node, n.LValue))
		}
	}
}

func (rule *NilRule) requireRecord(site ast.Expression, otherType string) {
	if otherType == typeinfer.NoType {
		return
	}
	if u, ok := rule.symbols.LookupUnaliasedType(site, otherType); !ok || !u.IsRecord() {
		rule.diags.Addf("Type %s is not a record type", otherType)
	}
}
