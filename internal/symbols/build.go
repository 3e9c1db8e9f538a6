package symbols

import "github.com/tiger-compiler/core/internal/ast"

// visitExpr records the scope enclosing e and recurses into its
// children, pushing a new scope for Let (the only expression that
// creates one; FunctionDeclaration bodies are handled by visitFunction).
func (t *Table) visitExpr(e ast.Expression, current *scope) {
	if e == nil {
		return
	}
	t.byExpr[e] = current

	switch n := e.(type) {
	case *ast.StringConstant, *ast.IntegerConstant, *ast.Nil, *ast.Break:
		// leaves, no children

	case *ast.LValueRef:
		t.visitLValue(n.LValue, current)

	case *ast.Negated:
		t.visitExpr(n.Expr, current)

	case *ast.Binary:
		t.visitExpr(n.Left, current)
		t.visitExpr(n.Right, current)

	case *ast.Assignment:
		t.visitLValue(n.LValue, current)
		t.visitExpr(n.Expr, current)

	case *ast.FunctionCall:
		for _, arg := range n.Args {
			t.visitExpr(arg, current)
		}

	case *ast.Parenthesized:
		for _, sub := range n.Exprs {
			t.visitExpr(sub, current)
		}

	case *ast.RecordLiteral:
		for _, f := range n.Fields {
			t.visitExpr(f.Expr, current)
		}

	case *ast.ArrayLiteral:
		t.visitExpr(n.Size, current)
		t.visitExpr(n.Value, current)

	case *ast.IfThen:
		t.visitExpr(n.Cond, current)
		t.visitExpr(n.Then, current)

	case *ast.IfThenElse:
		t.visitExpr(n.Cond, current)
		t.visitExpr(n.Then, current)
		t.visitExpr(n.Else, current)

	case *ast.While:
		t.visitExpr(n.Cond, current)
		t.visitExpr(n.Body, current)

	case *ast.For:
		t.visitExpr(n.Start, current)
		t.visitExpr(n.End, current)
		t.visitExpr(n.Body, current)

	case *ast.Let:
		t.visitLet(n, current)

	default:
		panic("symbols: unhandled expression type")
	}
}

// visitLValue recurses into the expressions embedded in an l-value chain
// (an ArrayElement's index) without changing the current scope; l-value
// nodes themselves are never scope keys, only the Expression that wraps
// or contains them is.
func (t *Table) visitLValue(lv ast.LValue, current *scope) {
	switch n := lv.(type) {
	case *ast.Identifier:
		// leaf, no children
	case *ast.RecordField:
		t.visitLValue(n.LValue, current)
	case *ast.ArrayElement:
		t.visitLValue(n.LValue, current)
		t.visitExpr(n.Expr, current)
	default:
		panic("symbols: unhandled lvalue type")
	}
}

// visitLet implements spec.md §4.1's scope-creation and two-pass binding
// rule: a new scope is pushed; types and functions are bound up front so
// mutual recursion and forward references work within the sequence;
// variables are bound one at a time, after their initializing expression
// is visited, each into a fresh child scope so that expressions visited
// before the binding cannot resolve it, closing off self-reference
// (spec.md §9 Open Question, resolved in SPEC_FULL.md §5).
func (t *Table) visitLet(n *ast.Let, parent *scope) {
	s := newScope(parent)

	for _, d := range n.Declarations {
		switch decl := d.(type) {
		case *ast.TypeDeclaration:
			s.types[decl.ID] = decl
		case *ast.FunctionDeclaration:
			s.functions[decl.ID] = decl
		}
	}

	for _, d := range n.Declarations {
		switch decl := d.(type) {
		case *ast.TypeDeclaration:
			// No expression children to visit; already bound above.
		case *ast.FunctionDeclaration:
			t.visitFunction(decl, s)
		case *ast.VariableDeclaration:
			t.visitExpr(decl.Expr, s)
			s = newScope(s)
			s.storage[decl.ID] = Storage{Variable: decl}
		default:
			panic("symbols: unhandled declaration type")
		}
	}

	for _, body := range n.Body {
		t.visitExpr(body, s)
	}
}

// visitFunction pushes the scope for a FunctionDeclaration's body,
// binding each parameter as a storage location before the body is
// visited (spec.md §4.1).
func (t *Table) visitFunction(decl *ast.FunctionDeclaration, parent *scope) {
	s := newScope(parent)
	for _, p := range decl.Parameters {
		s.storage[p.ID] = Storage{Parameter: p}
	}
	t.visitExpr(decl.Body, s)
}
