// Package astjson bridges the AST fixture format used by tests and the
// cmd/tigerc CLI to internal/ast. The parser proper is out of scope
// (spec.md §1); fixtures instead carry a JSON-encoded tree tagged by a
// "kind" field matching the Go type name, decoded here with path
// queries against github.com/tidwall/gjson rather than a hand-rolled
// encoding/json struct tree, since the "kind" dispatch needs one
// recursive type switch regardless of how the underlying bytes are
// walked, and gjson avoids building throwaway map[string]any levels for
// every nested node.
package astjson

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/tiger-compiler/core/internal/ast"
)

// Decode parses raw as a single AST expression. raw must be a JSON
// object whose "kind" field names an Expression variant.
func Decode(raw string) (ast.Expression, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("astjson: invalid JSON")
	}
	return decodeExpr(gjson.Parse(raw))
}

func decodeExpr(v gjson.Result) (ast.Expression, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("astjson: expected an object, got %s", v.Type)
	}
	kind := v.Get("kind").String()
	switch kind {
	case "StringConstant":
		return &ast.StringConstant{Value: v.Get("value").String()}, nil
	case "IntegerConstant":
		return &ast.IntegerConstant{Value: int(v.Get("value").Int())}, nil
	case "Nil":
		return &ast.Nil{}, nil
	case "Break":
		return &ast.Break{}, nil
	case "LValueRef":
		lv, err := decodeLValue(v.Get("lvalue"))
		if err != nil {
			return nil, err
		}
		return &ast.LValueRef{LValue: lv}, nil
	case "Negated":
		e, err := decodeExpr(v.Get("expr"))
		if err != nil {
			return nil, err
		}
		return &ast.Negated{Expr: e}, nil
	case "Binary":
		return decodeBinary(v)
	case "Assignment":
		lv, err := decodeLValue(v.Get("lvalue"))
		if err != nil {
			return nil, err
		}
		e, err := decodeExpr(v.Get("expr"))
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{LValue: lv, Expr: e}, nil
	case "FunctionCall":
		return decodeFunctionCall(v)
	case "Parenthesized":
		exprs, err := decodeExprSlice(v.Get("exprs"))
		if err != nil {
			return nil, err
		}
		return &ast.Parenthesized{Exprs: exprs}, nil
	case "RecordLiteral":
		return decodeRecordLiteral(v)
	case "ArrayLiteral":
		return decodeArrayLiteral(v)
	case "IfThen":
		cond, err := decodeExpr(v.Get("cond"))
		if err != nil {
			return nil, err
		}
		then, err := decodeExpr(v.Get("then"))
		if err != nil {
			return nil, err
		}
		return &ast.IfThen{Cond: cond, Then: then}, nil
	case "IfThenElse":
		return decodeIfThenElse(v)
	case "While":
		cond, err := decodeExpr(v.Get("cond"))
		if err != nil {
			return nil, err
		}
		body, err := decodeExpr(v.Get("body"))
		if err != nil {
			return nil, err
		}
		return &ast.While{Cond: cond, Body: body}, nil
	case "For":
		return decodeFor(v)
	case "Let":
		return decodeLet(v)
	default:
		return nil, fmt.Errorf("astjson: unknown expression kind %q", kind)
	}
}

func decodeBinary(v gjson.Result) (ast.Expression, error) {
	left, err := decodeExpr(v.Get("left"))
	if err != nil {
		return nil, err
	}
	right, err := decodeExpr(v.Get("right"))
	if err != nil {
		return nil, err
	}
	opStr := v.Get("op").String()
	op, ok := ast.OperatorFromString(opStr)
	if !ok {
		return nil, fmt.Errorf("astjson: unknown operator %q", opStr)
	}
	return &ast.Binary{Left: left, Right: right, Op: op}, nil
}

func decodeFunctionCall(v gjson.Result) (ast.Expression, error) {
	args, err := decodeExprSlice(v.Get("args"))
	if err != nil {
		return nil, err
	}
	return &ast.FunctionCall{ID: v.Get("id").String(), Args: args}, nil
}

func decodeRecordLiteral(v gjson.Result) (ast.Expression, error) {
	var fields []ast.RecordFieldInit
	var decodeErr error
	v.Get("fields").ForEach(func(_, f gjson.Result) bool {
		e, err := decodeExpr(f.Get("expr"))
		if err != nil {
			decodeErr = err
			return false
		}
		fields = append(fields, ast.RecordFieldInit{ID: f.Get("id").String(), Expr: e})
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return &ast.RecordLiteral{TypeID: v.Get("type_id").String(), Fields: fields}, nil
}

func decodeArrayLiteral(v gjson.Result) (ast.Expression, error) {
	size, err := decodeExpr(v.Get("size"))
	if err != nil {
		return nil, err
	}
	value, err := decodeExpr(v.Get("value"))
	if err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{TypeID: v.Get("type_id").String(), Size: size, Value: value}, nil
}

func decodeIfThenElse(v gjson.Result) (ast.Expression, error) {
	cond, err := decodeExpr(v.Get("cond"))
	if err != nil {
		return nil, err
	}
	then, err := decodeExpr(v.Get("then"))
	if err != nil {
		return nil, err
	}
	els, err := decodeExpr(v.Get("else"))
	if err != nil {
		return nil, err
	}
	return &ast.IfThenElse{Cond: cond, Then: then, Else: els}, nil
}

func decodeFor(v gjson.Result) (ast.Expression, error) {
	start, err := decodeExpr(v.Get("start"))
	if err != nil {
		return nil, err
	}
	end, err := decodeExpr(v.Get("end"))
	if err != nil {
		return nil, err
	}
	body, err := decodeExpr(v.Get("body"))
	if err != nil {
		return nil, err
	}
	return &ast.For{ID: v.Get("id").String(), Start: start, End: end, Body: body}, nil
}

func decodeLet(v gjson.Result) (ast.Expression, error) {
	var decls []ast.Declaration
	var decodeErr error
	v.Get("declarations").ForEach(func(_, d gjson.Result) bool {
		decl, err := decodeDeclaration(d)
		if err != nil {
			decodeErr = err
			return false
		}
		decls = append(decls, decl)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	body, err := decodeExprSlice(v.Get("body"))
	if err != nil {
		return nil, err
	}
	return &ast.Let{Declarations: decls, Body: body}, nil
}

func decodeExprSlice(v gjson.Result) ([]ast.Expression, error) {
	if !v.Exists() {
		return nil, nil
	}
	var out []ast.Expression
	var decodeErr error
	v.ForEach(func(_, item gjson.Result) bool {
		e, err := decodeExpr(item)
		if err != nil {
			decodeErr = err
			return false
		}
		out = append(out, e)
		return true
	})
	return out, decodeErr
}

func decodeLValue(v gjson.Result) (ast.LValue, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("astjson: expected an lvalue object, got %s", v.Type)
	}
	switch kind := v.Get("kind").String(); kind {
	case "Identifier":
		return &ast.Identifier{Name: v.Get("name").String()}, nil
	case "RecordField":
		inner, err := decodeLValue(v.Get("lvalue"))
		if err != nil {
			return nil, err
		}
		return &ast.RecordField{LValue: inner, ID: v.Get("id").String()}, nil
	case "ArrayElement":
		inner, err := decodeLValue(v.Get("lvalue"))
		if err != nil {
			return nil, err
		}
		idx, err := decodeExpr(v.Get("expr"))
		if err != nil {
			return nil, err
		}
		return &ast.ArrayElement{LValue: inner, Expr: idx}, nil
	default:
		return nil, fmt.Errorf("astjson: unknown lvalue kind %q", kind)
	}
}

func decodeDeclaration(v gjson.Result) (ast.Declaration, error) {
	switch kind := v.Get("kind").String(); kind {
	case "TypeDeclaration":
		ty, err := decodeType(v.Get("type"))
		if err != nil {
			return nil, err
		}
		return &ast.TypeDeclaration{ID: v.Get("id").String(), Type: ty}, nil
	case "VariableDeclaration":
		expr, err := decodeExpr(v.Get("expr"))
		if err != nil {
			return nil, err
		}
		decl := &ast.VariableDeclaration{ID: v.Get("id").String(), Expr: expr}
		if t := v.Get("type_id"); t.Exists() {
			s := t.String()
			decl.TypeID = &s
		}
		return decl, nil
	case "FunctionDeclaration":
		return decodeFunctionDeclaration(v)
	default:
		return nil, fmt.Errorf("astjson: unknown declaration kind %q", kind)
	}
}

func decodeFunctionDeclaration(v gjson.Result) (ast.Declaration, error) {
	var params []*ast.TypeField
	v.Get("parameters").ForEach(func(_, p gjson.Result) bool {
		params = append(params, &ast.TypeField{ID: p.Get("id").String(), TypeID: p.Get("type_id").String()})
		return true
	})
	body, err := decodeExpr(v.Get("body"))
	if err != nil {
		return nil, err
	}
	decl := &ast.FunctionDeclaration{ID: v.Get("id").String(), Parameters: params, Body: body}
	if t := v.Get("return_type_id"); t.Exists() {
		s := t.String()
		decl.ReturnTypeID = &s
	}
	return decl, nil
}

func decodeType(v gjson.Result) (ast.Type, error) {
	switch kind := v.Get("kind").String(); kind {
	case "TypeAlias":
		return &ast.TypeAlias{ID: v.Get("id").String()}, nil
	case "RecordType":
		var fields []*ast.TypeField
		v.Get("fields").ForEach(func(_, f gjson.Result) bool {
			fields = append(fields, &ast.TypeField{ID: f.Get("id").String(), TypeID: f.Get("type_id").String()})
			return true
		})
		return &ast.RecordType{Fields: fields}, nil
	case "ArrayType":
		return &ast.ArrayType{ElementTypeID: v.Get("element_type_id").String()}, nil
	default:
		return nil, fmt.Errorf("astjson: unknown type kind %q", kind)
	}
}
