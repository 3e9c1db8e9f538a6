package check

import (
	"github.com/tiger-compiler/core/internal/ast"
	"github.com/tiger-compiler/core/internal/diag"
	"github.com/tiger-compiler/core/internal/symbols"
	"github.com/tiger-compiler/core/internal/typeinfer"
)

// DefaultRules returns the core's built-in rule set (spec.md §4.4) in
// the fixed registration order used by Check: record field, binary
// operator, conditional, nil.
func DefaultRules(diags *diag.List, st *symbols.Table, tf *typeinfer.Finder) []Rule {
	return []Rule{
		NewRecordFieldRule(diags, st, tf),
		NewBinaryOpRule(diags, tf),
		NewConditionalRule(diags, tf),
		NewNilRule(diags, st, tf),
	}
}

// Check builds the symbol table and type finder for root and runs the
// default rule set over it, returning the accumulated diagnostics in
// emission order.
func Check(root ast.Expression) []string {
	st := symbols.Build(root)
	diags := diag.New()
	tf := typeinfer.New(st, diags)
	Run(root, DefaultRules(diags, st, tf))
	return diags.Strings()
}
