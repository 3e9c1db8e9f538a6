package symbols

import (
	"testing"

	"github.com/kr/pretty"

	"github.com/tiger-compiler/core/internal/ast"
)

func strPtr(s string) *string { return &s }

func TestBuildEmptyLet(t *testing.T) {
	root := &ast.Let{}
	st := Build(root)
	if _, ok := st.LookupVariable(root, "x"); ok {
		t.Fatalf("expected no variable in an empty Let")
	}
}

func TestLookupVariableSeesEarlierVariable(t *testing.T) {
	// let var x := 1 var y := x in y end
	xDecl := &ast.VariableDeclaration{ID: "x", Expr: &ast.IntegerConstant{Value: 1}}
	yRef := &ast.LValueRef{LValue: &ast.Identifier{Name: "x"}}
	yDecl := &ast.VariableDeclaration{ID: "y", Expr: yRef}
	body := &ast.LValueRef{LValue: &ast.Identifier{Name: "y"}}
	root := &ast.Let{
		Declarations: []ast.Declaration{xDecl, yDecl},
		Body:         []ast.Expression{body},
	}

	st := Build(root)

	if _, ok := st.LookupVariable(yRef, "x"); !ok {
		t.Fatalf("y's initializer should see x, bound before y")
	}
	if _, ok := st.LookupVariable(body, "y"); !ok {
		t.Fatalf("body should see y")
	}
}

func TestLookupVariableDoesNotSeeSelf(t *testing.T) {
	// let var x := x in end -- the x on the right of := is unresolved
	selfRef := &ast.LValueRef{LValue: &ast.Identifier{Name: "x"}}
	xDecl := &ast.VariableDeclaration{ID: "x", Expr: selfRef}
	root := &ast.Let{Declarations: []ast.Declaration{xDecl}}

	st := Build(root)

	if _, ok := st.LookupVariable(selfRef, "x"); ok {
		t.Fatalf("a variable's own initializer must not see its own binding")
	}
}

func TestLookupFunctionSeesMutualRecursion(t *testing.T) {
	// let function isEven(): int = isOdd()
	//     function isOdd(): int = isEven()
	// in end
	isEvenCall := &ast.FunctionCall{ID: "isOdd", Args: nil}
	isOddCall := &ast.FunctionCall{ID: "isEven", Args: nil}
	isEven := &ast.FunctionDeclaration{ID: "isEven", ReturnTypeID: strPtr("int"), Body: isEvenCall}
	isOdd := &ast.FunctionDeclaration{ID: "isOdd", ReturnTypeID: strPtr("int"), Body: isOddCall}
	root := &ast.Let{Declarations: []ast.Declaration{isEven, isOdd}}

	st := Build(root)

	if _, ok := st.LookupFunction(isEvenCall, "isOdd"); !ok {
		t.Fatalf("isEven's body should see isOdd (mutual recursion)")
	}
	if _, ok := st.LookupFunction(isOddCall, "isEven"); !ok {
		t.Fatalf("isOdd's body should see isEven (mutual recursion)")
	}
}

func TestLookupTypeNestedLetSeesOuterBindings(t *testing.T) {
	rec := &ast.TypeDeclaration{ID: "rec", Type: &ast.RecordType{}}
	inner := &ast.Let{}
	outer := &ast.Let{
		Declarations: []ast.Declaration{rec},
		Body:         []ast.Expression{inner},
	}

	st := Build(outer)

	if _, ok := st.LookupType(inner, "rec"); !ok {
		t.Fatalf("a nested Let should see its parent's type bindings")
	}
}

func TestLookupUnaliasedTypePrimitive(t *testing.T) {
	root := &ast.Let{}
	st := Build(root)

	u, ok := st.LookupUnaliasedType(root, "int")
	if !ok || u.IsRecord() || u.IsArray() || u.Primitive != "int" {
		t.Fatalf("expected primitive int, got %+v ok=%v", u, ok)
	}
}

func TestLookupUnaliasedTypeFollowsChain(t *testing.T) {
	// type a = b; type b = { x: int }
	recordTy := &ast.RecordType{Fields: []*ast.TypeField{{ID: "x", TypeID: "int"}}}
	bDecl := &ast.TypeDeclaration{ID: "b", Type: recordTy}
	aDecl := &ast.TypeDeclaration{ID: "a", Type: &ast.TypeAlias{ID: "b"}}
	body := &ast.IntegerConstant{Value: 0}
	root := &ast.Let{Declarations: []ast.Declaration{aDecl, bDecl}, Body: []ast.Expression{body}}

	st := Build(root)

	u, ok := st.LookupUnaliasedType(body, "a")
	if !ok || !u.IsRecord() {
		t.Fatalf("expected a to unalias to a record, got %# v ok=%v", pretty.Formatter(u), ok)
	}
	if u.Record != recordTy {
		t.Fatalf("expected the record type to be recordTy")
	}
}

func TestLookupUnaliasedTypeDetectsCycle(t *testing.T) {
	// type a = b; type b = a
	aDecl := &ast.TypeDeclaration{ID: "a", Type: &ast.TypeAlias{ID: "b"}}
	bDecl := &ast.TypeDeclaration{ID: "b", Type: &ast.TypeAlias{ID: "a"}}
	body := &ast.IntegerConstant{Value: 0}
	root := &ast.Let{Declarations: []ast.Declaration{aDecl, bDecl}, Body: []ast.Expression{body}}

	st := Build(root)

	if _, ok := st.LookupType(body, "a"); !ok {
		t.Fatalf("expected a to be declared at the Let body")
	}
	if _, ok := st.LookupUnaliasedType(body, "a"); ok {
		t.Fatalf("expected a cycle to report not found")
	}
}

func TestLookupUnaliasedTypeNotFound(t *testing.T) {
	root := &ast.Let{}
	st := Build(root)

	if _, ok := st.LookupUnaliasedType(root, "nope"); ok {
		t.Fatalf("expected an undeclared name to report not found")
	}
}

func TestFunctionParameterScope(t *testing.T) {
	paramRef := &ast.LValueRef{LValue: &ast.Identifier{Name: "n"}}
	fn := &ast.FunctionDeclaration{
		ID:         "f",
		Parameters: []*ast.TypeField{{ID: "n", TypeID: "int"}},
		Body:       paramRef,
	}
	root := &ast.Let{Declarations: []ast.Declaration{fn}}

	st := Build(root)

	if storage := st.LookupStorage(paramRef, "n"); !storage.Found() || storage.Parameter == nil {
		t.Fatalf("parameter n should be visible in the function body")
	}
}
