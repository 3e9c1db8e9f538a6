// Package typeinfer assigns a type-id to any Tiger expression or
// l-value (spec.md §4.2). A Finder is constructed once per compilation,
// memoizes every result it computes, and never fails hard: the worst
// case is the reserved marker NOTYPE plus a diagnostic appended to the
// shared list it was built with.
package typeinfer

import (
	"github.com/tiger-compiler/core/internal/ast"
	"github.com/tiger-compiler/core/internal/diag"
	"github.com/tiger-compiler/core/internal/symbols"
)

// Reserved type-ids (spec.md §6.3).
const (
	Int    = "int"
	String = "string"
	NoType = "NOTYPE"
)

// Finder infers the type-id of any expression or l-value, memoizing
// results by expression identity. It is owned by a single compiler pass;
// no other component shares its cache (spec.md §9).
type Finder struct {
	symbols *symbols.Table
	diags   *diag.List
	cache   map[ast.Expression]string
}

// New returns a Finder backed by the given symbol table, appending any
// diagnostics it emits to diags.
func New(st *symbols.Table, diags *diag.List) *Finder {
	return &Finder{
		symbols: st,
		diags:   diags,
		cache:   make(map[ast.Expression]string),
	}
}

// TypeOf returns the type-id of expr, computing and caching it on first
// call. Subsequent calls for the same expression return the cached value
// without consulting the symbol table again (spec.md §8).
func (f *Finder) TypeOf(expr ast.Expression) string {
	if expr == nil {
		return NoType
	}
	if t, ok := f.cache[expr]; ok {
		return t
	}
	t := f.infer(expr)
	f.cache[expr] = t
	return t
}

func (f *Finder) infer(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.StringConstant:
		return String
	case *ast.IntegerConstant:
		return Int
	case *ast.Negated:
		return Int
	case *ast.Nil, *ast.Assignment, *ast.IfThen, *ast.While, *ast.For, *ast.Break:
		return NoType
	case *ast.RecordLiteral:
		return e.TypeID
	case *ast.ArrayLiteral:
		return e.TypeID
	case *ast.Binary:
		// The left operand's type-id is reused verbatim, per spec.md §4.2
		// and the Open Question resolution in SPEC_FULL.md §5; operand
		// mismatches are caught separately by check.BinaryOpRule.
		return f.TypeOf(e.Left)
	case *ast.IfThenElse:
		return f.TypeOf(e.Then)
	case *ast.Parenthesized:
		if len(e.Exprs) == 0 {
			return NoType
		}
		return f.TypeOf(e.Exprs[len(e.Exprs)-1])
	case *ast.Let:
		if len(e.Body) == 0 {
			return NoType
		}
		return f.TypeOf(e.Body[len(e.Body)-1])
	case *ast.FunctionCall:
		return f.typeOfCall(expr, e)
	case *ast.LValueRef:
		return f.LValueType(expr, e.LValue)
	default:
		return NoType
	}
}

func (f *Finder) typeOfCall(site ast.Expression, call *ast.FunctionCall) string {
	fd, ok := f.symbols.LookupFunction(site, call.ID)
	if !ok {
		f.diags.Addf("Function not found: %s", call.ID)
		return NoType
	}
	if fd.ReturnTypeID != nil {
		return *fd.ReturnTypeID
	}
	// No return-type annotation: recursively infer from the body, per
	// spec.md §4.2 ("if the function omits an annotation, recursively
	// the type of its body").
	return f.TypeOf(fd.Body)
}

// LValueType returns the type-id of lv, which occurs within parent
// (typically the Expression that wraps or embeds it — an LValueRef, an
// Assignment, or an ArrayElement's own l-value chain).
func (f *Finder) LValueType(parent ast.Expression, lv ast.LValue) string {
	switch l := lv.(type) {
	case *ast.Identifier:
		return f.typeOfIdentifier(parent, l.Name)
	case *ast.RecordField:
		return f.typeOfRecordField(parent, l)
	case *ast.ArrayElement:
		return f.typeOfArrayElement(parent, l)
	default:
		return NoType
	}
}

func (f *Finder) typeOfIdentifier(parent ast.Expression, name string) string {
	st := f.symbols.LookupStorage(parent, name)
	switch {
	case st.Variable != nil:
		if st.Variable.TypeID != nil {
			return *st.Variable.TypeID
		}
		return f.TypeOf(st.Variable.Expr)
	case st.Parameter != nil:
		return st.Parameter.TypeID
	default:
		f.diags.Addf("Variable not found: %s", name)
		return NoType
	}
}

func (f *Finder) typeOfRecordField(parent ast.Expression, rf *ast.RecordField) string {
	recordType := f.LValueType(parent, rf.LValue)
	u, ok := f.symbols.LookupUnaliasedType(parent, recordType)
	if !ok {
		f.diags.Addf("Type not found: %s", recordType)
		return NoType
	}
	if !u.IsRecord() {
		f.diags.Addf("Record type expected: %s", recordType)
		return NoType
	}
	for _, field := range u.Record.Fields {
		if field.ID == rf.ID {
			return field.TypeID
		}
	}
	f.diags.Addf("Record field not found: %s", rf.ID)
	return NoType
}

func (f *Finder) typeOfArrayElement(parent ast.Expression, ae *ast.ArrayElement) string {
	arrayType := f.LValueType(parent, ae.LValue)
	u, ok := f.symbols.LookupUnaliasedType(parent, arrayType)
	if !ok {
		f.diags.Addf("Type not found: %s", arrayType)
		return NoType
	}
	if !u.IsArray() {
		f.diags.Addf("Array type expected: %s", arrayType)
		return NoType
	}
	return u.Array.ElementTypeID
}
