package check

import (
	"github.com/tiger-compiler/core/internal/ast"
	"github.com/tiger-compiler/core/internal/diag"
	"github.com/tiger-compiler/core/internal/typeinfer"
)

// BinaryOpRule enforces operand-type rules for comparison and logical
// binary operators (Tiger spec §2.5), grounded on original_source/
// checker.cc's BinaryOpChecker.
type BinaryOpRule struct {
	diags *diag.List
	types *typeinfer.Finder
}

// NewBinaryOpRule constructs a BinaryOpRule.
func NewBinaryOpRule(diags *diag.List, tf *typeinfer.Finder) *BinaryOpRule {
	return &BinaryOpRule{diags: diags, types: tf}
}

func (rule *BinaryOpRule) Apply(node ast.Expression) {
	b, ok := node.(*ast.Binary)
	if !ok {
		return
	}

	left := rule.types.TypeOf(b.Left)
	right := rule.types.TypeOf(b.Right)

	switch {
	case b.Op.IsComparison():
		rule.checkPrimitive(left, b.Op)
		rule.checkPrimitive(right, b.Op)
		if left != right && left != typeinfer.NoType && right != typeinfer.NoType {
			rule.diags.Addf("Types of %s should match, but got %s and %s", b.Op, left, right)
		}
	case b.Op.IsLogical():
		rule.checkInt(left, b.Op)
		rule.checkInt(right, b.Op)
	}
}

func (rule *BinaryOpRule) checkPrimitive(t string, op ast.Operator) {
	if t == typeinfer.NoType {
		return
	}
	if t != typeinfer.Int && t != typeinfer.String {
		rule.diags.Addf("Operand type of %s must be int or string, but got %s", op, t)
	}
}

func (rule *BinaryOpRule) checkInt(t string, op ast.Operator) {
	if t == typeinfer.NoType {
		return
	}
	if t != typeinfer.Int {
		rule.diags.Addf("Operand type for %s must be int, but got %s", op, t)
	}
}
