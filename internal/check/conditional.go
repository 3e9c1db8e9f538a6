package check

import (
	"github.com/tiger-compiler/core/internal/ast"
	"github.com/tiger-compiler/core/internal/diag"
	"github.com/tiger-compiler/core/internal/typeinfer"
)

// ConditionalRule requires that every IfThen, IfThenElse and While
// condition has type int (Tiger spec §2.8), grounded on
// original_source/checker.cc's ConditionalChecker.
type ConditionalRule struct {
	diags *diag.List
	types *typeinfer.Finder
}

// NewConditionalRule constructs a ConditionalRule.
func NewConditionalRule(diags *diag.List, tf *typeinfer.Finder) *ConditionalRule {
	return &ConditionalRule{diags: diags, types: tf}
}

func (rule *ConditionalRule) Apply(node ast.Expression) {
	var cond ast.Expression
	switch n := node.(type) {
	case *ast.IfThen:
		cond = n.Cond
	case *ast.IfThenElse:
		cond = n.Cond
	case *ast.While:
		cond = n.Cond
	default:
		return
	}

	if t := rule.types.TypeOf(cond); t != typeinfer.Int && t != typeinfer.NoType {
		rule.diags.Addf("Conditions must be int, but got %s", t)
	}
}
