// Package symbols builds and queries the lexical scope chain of a Tiger
// AST (spec.md §4.1). A Table is built once, in a single pre-pass over
// the tree, and is read-only afterwards — safe to share across however
// many type-finder or checker instances consume it (spec.md §5).
package symbols

import (
	"github.com/tiger-compiler/core/internal/ast"
)

// Storage is the result of looking up a name in the storage category: it
// is either a variable declaration, a function parameter, or neither.
type Storage struct {
	Variable  *ast.VariableDeclaration
	Parameter *ast.TypeField
}

// Found reports whether the lookup succeeded.
func (s Storage) Found() bool {
	return s.Variable != nil || s.Parameter != nil
}

// scope is one level of the chain created by a Let or a
// FunctionDeclaration body (spec.md §4.1 "Scope creation rules").
type scope struct {
	parent    *scope
	types     map[string]*ast.TypeDeclaration
	functions map[string]*ast.FunctionDeclaration
	storage   map[string]Storage
}

func newScope(parent *scope) *scope {
	return &scope{
		parent:    parent,
		types:     make(map[string]*ast.TypeDeclaration),
		functions: make(map[string]*ast.FunctionDeclaration),
		storage:   make(map[string]Storage),
	}
}

// Table answers "which declaration does name N resolve to at AST node E?"
// for the type, function and storage categories, by walking up the scope
// chain from E's innermost enclosing scope (spec.md §4.1).
type Table struct {
	byExpr map[ast.Expression]*scope
}

// Build constructs a Table by a single recursive walk over root,
// following the scope-creation and two-pass binding rules of spec.md
// §4.1. It never mutates root.
func Build(root ast.Expression) *Table {
	t := &Table{byExpr: make(map[ast.Expression]*scope)}
	global := newScope(nil)
	t.visitExpr(root, global)
	return t
}

// LookupType returns the type declaration named name visible at expr, or
// (nil, false) if there is none in scope.
func (t *Table) LookupType(expr ast.Expression, name string) (*ast.TypeDeclaration, bool) {
	for s := t.byExpr[expr]; s != nil; s = s.parent {
		if d, ok := s.types[name]; ok {
			return d, true
		}
	}
	return nil, false
}

// LookupFunction returns the function declaration named name visible at
// expr, or (nil, false) if there is none in scope.
func (t *Table) LookupFunction(expr ast.Expression, name string) (*ast.FunctionDeclaration, bool) {
	for s := t.byExpr[expr]; s != nil; s = s.parent {
		if d, ok := s.functions[name]; ok {
			return d, true
		}
	}
	return nil, false
}

// LookupStorage returns the variable-or-parameter binding named name
// visible at expr. Storage.Found() reports whether anything was found.
func (t *Table) LookupStorage(expr ast.Expression, name string) Storage {
	for s := t.byExpr[expr]; s != nil; s = s.parent {
		if st, ok := s.storage[name]; ok {
			return st
		}
	}
	return Storage{}
}

// LookupVariable is a convenience over LookupStorage that returns only
// the variable-declaration case; a name bound to a function parameter
// reports not found.
func (t *Table) LookupVariable(expr ast.Expression, name string) (*ast.VariableDeclaration, bool) {
	st := t.LookupStorage(expr, name)
	if st.Variable == nil {
		return nil, false
	}
	return st.Variable, true
}

// maxAliasChain bounds the number of alias links LookupUnaliasedType
// follows. Cycles are detected by its visited-name set; the bound only
// caps an unusually long acyclic chain, which is then reported as not
// found.
const maxAliasChain = 10000

// Unaliased is the structural shape found at the end of an alias chain:
// exactly one of Record, Array or Primitive is set.
type Unaliased struct {
	Record    *ast.RecordType
	Array     *ast.ArrayType
	Primitive string // "int" or "string"
}

// IsRecord reports whether the chain ended at a record type.
func (u *Unaliased) IsRecord() bool { return u != nil && u.Record != nil }

// IsArray reports whether the chain ended at an array type.
func (u *Unaliased) IsArray() bool { return u != nil && u.Array != nil }

// LookupUnaliasedType follows the chain of TypeAlias declarations named
// name, starting in the scope visible at expr, until it reaches a
// RecordType, an ArrayType, or one of the reserved primitive names "int"
// or "string". A cycle, or any broken link (a name with no declaration
// in scope), is reported as not found.
func (t *Table) LookupUnaliasedType(expr ast.Expression, name string) (*Unaliased, bool) {
	visited := make(map[string]bool)
	cur := name
	for i := 0; i < maxAliasChain; i++ {
		if cur == "int" || cur == "string" {
			return &Unaliased{Primitive: cur}, true
		}
		if visited[cur] {
			return nil, false
		}
		visited[cur] = true

		decl, ok := t.LookupType(expr, cur)
		if !ok {
			return nil, false
		}
		switch ty := decl.Type.(type) {
		case *ast.TypeAlias:
			cur = ty.ID
			continue
		case *ast.RecordType:
			return &Unaliased{Record: ty}, true
		case *ast.ArrayType:
			return &Unaliased{Array: ty}, true
		default:
			return nil, false
		}
	}
	return nil, false
}
