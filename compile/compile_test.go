package compile_test

import (
	"testing"

	"github.com/malloydata/exprcore/ast"
	"github.com/malloydata/exprcore/compile"
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/internal/exprtest"
	"github.com/malloydata/exprcore/valtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileCompressesAdjacentText(t *testing.T) {
	fs := exprtest.Space{"x": {DataType: valtype.Number}}
	root := &ast.BinaryNumeric{Op: "+", LHS: &ast.ExprField{Name: "x"}, RHS: &ast.ExprNumber{Text: "1"}}
	res := compile.Compile(root, fs)
	require.Empty(t, res.Diagnostics)
	assert.Equal(t, fragment.Seq{fragment.Field{Path: "x"}, fragment.Text(" + 1")}, res.Value.Value)
}

func TestCompileErrorProducesNonEmptyDiagnostics(t *testing.T) {
	fs := exprtest.Space{}
	root := &ast.ExprField{Name: "missing"}
	res := compile.Compile(root, fs)
	assert.True(t, res.Value.IsError())
	assert.NotEmpty(t, res.Diagnostics)
}

func TestCompileIsDeterministic(t *testing.T) {
	fs := exprtest.Space{"x": {DataType: valtype.Number}}
	root := &ast.BinaryNumeric{Op: "+", LHS: &ast.ExprField{Name: "x"}, RHS: &ast.ExprNumber{Text: "1"}}
	a := compile.Compile(root, fs)
	b := compile.Compile(root, fs)
	assert.Equal(t, a.Value, b.Value)
}

func TestCompileSetsDefaultNameForSumAgainstSource(t *testing.T) {
	fs := exprtest.Space{"orders.amount_sold": {DataType: valtype.Number}}
	root := &ast.ExprAggregateFunction{Func: ast.AggSum, Source: "orders.amount_sold"}
	res := compile.Compile(root, fs)
	require.Empty(t, res.Diagnostics)
	assert.Equal(t, "total_amount_sold", res.DefaultName)
}

func TestCompileLeavesDefaultNameEmptyForExplicitExpression(t *testing.T) {
	fs := exprtest.Space{"x": {DataType: valtype.Number}}
	root := &ast.ExprAggregateFunction{Func: ast.AggSum, Expr: &ast.ExprField{Name: "x"}}
	res := compile.Compile(root, fs)
	require.Empty(t, res.Diagnostics)
	assert.Empty(t, res.DefaultName)
}

func TestCompileFilteredRejectsAggregateCondition(t *testing.T) {
	fs := exprtest.Space{"count": {DataType: valtype.Number, Aggregate: true}}
	conds := []ast.Expr{&ast.ExprField{Name: "count"}}
	out, diags := compile.CompileFiltered(conds, fs)
	assert.Empty(t, out)
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Message, "Cannot filter a field with an aggregate computation")
}
