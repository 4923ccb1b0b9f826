// Command exprcore-dump is a smoke-test harness: it builds one
// hand-wired expression tree against a small in-memory FieldSpace and
// prints the compiled fragment sequence and any diagnostics. It exists to
// exercise compile.Compile end to end without a parser, which is out of
// this module's scope.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/malloydata/exprcore/ast"
	"github.com/malloydata/exprcore/compile"
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/internal/exprtest"
	"github.com/malloydata/exprcore/valtype"
)

func main() {
	flag.Parse()

	fs := exprtest.Space{
		"sale_price":    {DataType: valtype.Number},
		"orders.amount": {DataType: valtype.Number},
	}

	// sale_price + 1 > 10 and sale_price in (5, 6)
	root := ast.Expr(&ast.BinaryBoolean{
		Op: "and",
		LHS: &ast.BinaryNumeric{
			Op:  ">",
			LHS: &ast.BinaryNumeric{Op: "+", LHS: &ast.ExprField{Name: "sale_price"}, RHS: &ast.ExprNumber{Text: "1"}},
			RHS: &ast.ExprNumber{Text: "10"},
		},
		RHS: &ast.ExprIn{
			Expr: &ast.ExprField{Name: "sale_price"},
			Set:  []ast.Expr{&ast.ExprNumber{Text: "5"}, &ast.ExprNumber{Text: "6"}},
		},
	})

	res := compile.Compile(root, fs)
	fmt.Println(render(res.Value.Value))
	for _, d := range res.Diagnostics {
		fmt.Fprintf(os.Stderr, "error at [%d,%d): %s\n", d.Pos, d.End, d.Message)
	}
	if res.Value.IsError() {
		os.Exit(1)
	}
}

// render stands in for the downstream dialect writer spec.md places out
// of scope: it renders fragments as plain SQL-ish text purely so this
// harness has something visible to print.
func render(seq fragment.Seq) string {
	var out string
	for _, f := range seq {
		switch v := f.(type) {
		case fragment.Text:
			out += string(v)
		case fragment.Field:
			out += v.Path
		case fragment.Aggregate:
			out += v.Function + "(" + render(v.Expr) + ")"
		case fragment.FilterExpr:
			out += render(v.Expr) + " {where...}"
		}
	}
	return out
}
