package check

import (
	"reflect"
	"testing"

	"github.com/tiger-compiler/core/internal/ast"
)

func strPtr(s string) *string { return &s }

// These scenarios are the numbered concrete end-to-end scenarios from
// spec.md §8, built directly as AST nodes since the parser is out of
// scope.

func TestScenario1ValidRecordLiteral(t *testing.T) {
	root := bulkLet(t, []ast.RecordFieldInit{
		{ID: "height", Expr: &ast.IntegerConstant{Value: 6}},
		{ID: "weight", Expr: &ast.IntegerConstant{Value: 200}},
	})
	if got := Check(root); len(got) != 0 {
		t.Fatalf("Check = %v, want empty", got)
	}
}

func TestScenario2FieldCountMismatch(t *testing.T) {
	root := bulkLet(t, []ast.RecordFieldInit{
		{ID: "height", Expr: &ast.IntegerConstant{Value: 6}},
	})
	want := []string{"Type Bulk has 2 fields and literal has 1"}
	if got := Check(root); !reflect.DeepEqual(got, want) {
		t.Fatalf("Check = %v, want %v", got, want)
	}
}

func TestScenario3FieldsOutOfOrder(t *testing.T) {
	root := bulkLet(t, []ast.RecordFieldInit{
		{ID: "weight", Expr: &ast.IntegerConstant{Value: 200}},
		{ID: "height", Expr: &ast.IntegerConstant{Value: 6}},
	})
	got := Check(root)
	if len(got) != 2 {
		t.Fatalf("Check = %v, want 2 diagnostics", got)
	}
	for _, msg := range got {
		if len(msg) < len("Different names") || msg[:len("Different names")] != "Different names" {
			t.Errorf("diagnostic %q does not start with 'Different names'", msg)
		}
	}
}

func TestScenario4FieldTypeMismatch(t *testing.T) {
	root := bulkLet(t, []ast.RecordFieldInit{
		{ID: "height", Expr: &ast.StringConstant{Value: "6 feet"}},
		{ID: "weight", Expr: &ast.IntegerConstant{Value: 200}},
	})
	want := []string{"Different types string and int for field #1 of record Bulk"}
	if got := Check(root); !reflect.DeepEqual(got, want) {
		t.Fatalf("Check = %v, want %v", got, want)
	}
}

func TestScenario5ComparisonTypeMismatch(t *testing.T) {
	root := &ast.Binary{
		Left:  &ast.IntegerConstant{Value: 666},
		Right: &ast.StringConstant{Value: "Hello"},
		Op:    ast.OpLt,
	}
	want := []string{"Types of < should match, but got int and string"}
	if got := Check(root); !reflect.DeepEqual(got, want) {
		t.Fatalf("Check = %v, want %v", got, want)
	}
}

func TestScenario6LogicalOperandsMustBeInt(t *testing.T) {
	root := &ast.Binary{
		Left:  &ast.StringConstant{Value: "foo"},
		Right: &ast.StringConstant{Value: "bar"},
		Op:    ast.OpAnd,
	}
	want := []string{
		"Operand type for & must be int, but got string",
		"Operand type for & must be int, but got string",
	}
	if got := Check(root); !reflect.DeepEqual(got, want) {
		t.Fatalf("Check = %v, want %v", got, want)
	}
}

func TestScenario7ConditionMustBeInt(t *testing.T) {
	root := &ast.IfThenElse{
		Cond: &ast.StringConstant{Value: "Hello"},
		Then: &ast.IntegerConstant{Value: 7},
		Else: &ast.IntegerConstant{Value: 8},
	}
	want := []string{"Conditions must be int, but got string"}
	if got := Check(root); !reflect.DeepEqual(got, want) {
		t.Fatalf("Check = %v, want %v", got, want)
	}
}

func TestScenario8NilComparedAgainstInt(t *testing.T) {
	// let var i := 0 in i = nil end
	iDecl := &ast.VariableDeclaration{ID: "i", Expr: &ast.IntegerConstant{Value: 0}}
	cmp := &ast.Binary{
		Left:  &ast.LValueRef{LValue: &ast.Identifier{Name: "i"}},
		Right: &ast.Nil{},
		Op:    ast.OpEq,
	}
	root := &ast.Let{Declarations: []ast.Declaration{iDecl}, Body: []ast.Expression{cmp}}

	want := []string{"Type int is not a record type"}
	if got := Check(root); !reflect.DeepEqual(got, want) {
		t.Fatalf("Check = %v, want %v", got, want)
	}
}

func TestNilAgainstRecordIsLegal(t *testing.T) {
	recType := &ast.TypeDeclaration{ID: "myrec", Type: &ast.RecordType{Fields: []*ast.TypeField{{ID: "a", TypeID: "int"}}}}
	rDecl := &ast.VariableDeclaration{ID: "r", TypeID: strPtr("myrec"), Expr: &ast.Nil{}}
	cmp := &ast.Binary{
		Left:  &ast.LValueRef{LValue: &ast.Identifier{Name: "r"}},
		Right: &ast.Nil{},
		Op:    ast.OpEq,
	}
	root := &ast.Let{Declarations: []ast.Declaration{recType, rDecl}, Body: []ast.Expression{cmp}}

	if got := Check(root); len(got) != 0 {
		t.Fatalf("Check = %v, want empty", got)
	}
}

func TestNilAssignmentToNonRecordAlias(t *testing.T) {
	// let type myint = int var i: myint := 0 in i := nil end
	aliasDecl := &ast.TypeDeclaration{ID: "myint", Type: &ast.TypeAlias{ID: "int"}}
	iDecl := &ast.VariableDeclaration{ID: "i", TypeID: strPtr("myint"), Expr: &ast.IntegerConstant{Value: 0}}
	assign := &ast.Assignment{LValue: &ast.Identifier{Name: "i"}, Expr: &ast.Nil{}}
	root := &ast.Let{Declarations: []ast.Declaration{aliasDecl, iDecl}, Body: []ast.Expression{assign}}

	want := []string{"Type myint is not a record type"}
	if got := Check(root); !reflect.DeepEqual(got, want) {
		t.Fatalf("Check = %v, want %v", got, want)
	}
}

func TestDiagnosticOrderIsRuleRegistrationThenTraversal(t *testing.T) {
	// (if "Hello" then 7; 666 < "Hello"; "foo" & 1): the conditional comes
	// first in traversal, but BinaryOpRule is registered before
	// ConditionalRule, so both binary diagnostics (in traversal order)
	// precede the conditional one.
	root := &ast.Parenthesized{Exprs: []ast.Expression{
		&ast.IfThen{Cond: &ast.StringConstant{Value: "Hello"}, Then: &ast.IntegerConstant{Value: 7}},
		&ast.Binary{Left: &ast.IntegerConstant{Value: 666}, Right: &ast.StringConstant{Value: "Hello"}, Op: ast.OpLt},
		&ast.Binary{Left: &ast.StringConstant{Value: "foo"}, Right: &ast.IntegerConstant{Value: 1}, Op: ast.OpAnd},
	}}
	want := []string{
		"Types of < should match, but got int and string",
		"Operand type for & must be int, but got string",
		"Conditions must be int, but got string",
	}
	if got := Check(root); !reflect.DeepEqual(got, want) {
		t.Fatalf("Check = %v, want %v", got, want)
	}
}

func TestCheckTwiceIsIdempotent(t *testing.T) {
	root := bulkLet(t, []ast.RecordFieldInit{
		{ID: "height", Expr: &ast.IntegerConstant{Value: 6}},
	})
	first := Check(root)
	second := Check(root)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Check runs differ: %v vs %v", first, second)
	}
}

// bulkLet builds `let type Bulk = {height:int, weight:int} in Bulk {...} end`
// with the given field initializers.
func bulkLet(t *testing.T, fields []ast.RecordFieldInit) *ast.Let {
	t.Helper()
	bulkType := &ast.TypeDeclaration{ID: "Bulk", Type: &ast.RecordType{Fields: []*ast.TypeField{
		{ID: "height", TypeID: "int"},
		{ID: "weight", TypeID: "int"},
	}}}
	lit := &ast.RecordLiteral{TypeID: "Bulk", Fields: fields}
	return &ast.Let{
		Declarations: []ast.Declaration{bulkType},
		Body:         []ast.Expression{lit},
	}
}
