package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tiger-compiler/core/internal/ast"
	"github.com/tiger-compiler/core/internal/astjson"
	"github.com/tiger-compiler/core/internal/check"
)

var (
	outputFormat string
	warnReserved bool
)

var checkCmd = &cobra.Command{
	Use:   "check [fixture]",
	Short: "Run the semantic checker against an AST fixture",
	Long: `check decodes a JSON or YAML AST fixture (.json/.yaml/.yml) and
runs the symbol table, type finder and built-in rule set over it,
printing the resulting diagnostics.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&outputFormat, "format", "text", "output format: text or json")
	checkCmd.Flags().BoolVar(&warnReserved, "warn-reserved", false, "warn about user identifiers that collide with a reserved type name, case-insensitively")
}

func runCheck(_ *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	root, err := decodeFixture(path, content)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	diagnostics := check.Check(root)
	if warnReserved {
		diagnostics = append(diagnostics, reservedNameWarnings(root)...)
	}

	return printDiagnostics(diagnostics)
}

func decodeFixture(path string, content []byte) (ast.Expression, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return astjson.DecodeYAML(content)
	default:
		return astjson.Decode(string(content))
	}
}

func printDiagnostics(diagnostics []string) error {
	switch outputFormat {
	case "json":
		out, err := astjson.EncodeDiagnostics(diagnostics)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		for _, d := range diagnostics {
			fmt.Println(d)
		}
	}
	if len(diagnostics) > 0 {
		return fmt.Errorf("%d diagnostic(s)", len(diagnostics))
	}
	return nil
}

// reservedCaser normalizes identifiers before comparing them against the
// reserved type-name space (spec.md §6.3), so "Int" and "INT" are caught
// alongside "int". language.Und (undetermined) keeps the fold purely
// script-based rather than tied to any particular locale's casing rules.
var reservedCaser = cases.Lower(language.Und)

var reservedNames = map[string]bool{
	"int":    true,
	"string": true,
	"notype": true,
}

// reservedNameWarnings walks every TypeDeclaration, FunctionDeclaration
// and VariableDeclaration id in root (except inside l-values, see
// exprChildren) and warns when it collides,
// case-insensitively, with a reserved type name. This is advisory only:
// spec.md §6.3 says such a shadowing declaration still resolves to the
// user's own binding, it only affects the record-field rule's primitive
// check.
func reservedNameWarnings(root ast.Expression) []string {
	var warnings []string
	var walkExpr func(ast.Expression)
	checkID := func(id string) {
		if reservedNames[reservedCaser.String(id)] {
			warnings = append(warnings, fmt.Sprintf("warning: identifier %q collides with a reserved type name", id))
		}
	}

	walkDecl := func(d ast.Declaration) {
		switch decl := d.(type) {
		case *ast.TypeDeclaration:
			checkID(decl.ID)
		case *ast.FunctionDeclaration:
			checkID(decl.ID)
			walkExpr(decl.Body)
		case *ast.VariableDeclaration:
			checkID(decl.ID)
			walkExpr(decl.Expr)
		}
	}

	walkExpr = func(e ast.Expression) {
		if e == nil {
			return
		}
		if let, ok := e.(*ast.Let); ok {
			for _, d := range let.Declarations {
				walkDecl(d)
			}
			for _, b := range let.Body {
				walkExpr(b)
			}
			return
		}
		for _, child := range exprChildren(e) {
			walkExpr(child)
		}
	}

	walkExpr(root)
	return warnings
}

// exprChildren returns the direct child expressions of e, skipping
// l-values: an ArrayElement's index expression is not returned, so
// declarations nested inside an array index are not visited.
func exprChildren(e ast.Expression) []ast.Expression {
	switch n := e.(type) {
	case *ast.Negated:
		return []ast.Expression{n.Expr}
	case *ast.Binary:
		return []ast.Expression{n.Left, n.Right}
	case *ast.Assignment:
		return []ast.Expression{n.Expr}
	case *ast.FunctionCall:
		return n.Args
	case *ast.Parenthesized:
		return n.Exprs
	case *ast.RecordLiteral:
		exprs := make([]ast.Expression, 0, len(n.Fields))
		for _, f := range n.Fields {
			exprs = append(exprs, f.Expr)
		}
		return exprs
	case *ast.ArrayLiteral:
		return []ast.Expression{n.Size, n.Value}
	case *ast.IfThen:
		return []ast.Expression{n.Cond, n.Then}
	case *ast.IfThenElse:
		return []ast.Expression{n.Cond, n.Then, n.Else}
	case *ast.While:
		return []ast.Expression{n.Cond, n.Body}
	case *ast.For:
		return []ast.Expression{n.Start, n.End, n.Body}
	default:
		return nil
	}
}
