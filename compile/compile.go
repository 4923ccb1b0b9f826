// Package compile implements the public entry point that walks an
// expression AST once against a FieldSpace and returns its translated
// value plus every diagnostic recorded along the way.
package compile

import (
	"github.com/malloydata/exprcore/ast"
	"github.com/malloydata/exprcore/diag"
	"github.com/malloydata/exprcore/fieldspace"
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// Result is the outcome of compiling one expression tree.
type Result struct {
	Value       valtype.ExprValue
	Diagnostics []diag.Diagnostic

	// DefaultName is the output field name sum/avg derive when root is an
	// aggregate computed against a named source with no explicit
	// expression (spec.md §4.E's sum/avg asymmetry), e.g. "total_sold" or
	// "avg_sold". It is empty whenever root supplies no such name.
	DefaultName string
}

// namer is implemented by nodes that can suggest a default output field
// name distinct from their Go type; today only *ast.ExprAggregateFunction.
type namer interface {
	DefaultName() (string, bool)
}

// Compile walks root once under fs, returning the compressed translated
// value and every diagnostic logged during the walk. Compile never
// returns a Go error: a user-level failure is reported entirely through
// Result.Diagnostics and Result.Value.DataType == valtype.Error. Compile
// is not safe to call concurrently with other Compile calls sharing the
// same fs unless fs is itself safe for concurrent reads.
func Compile(root ast.Expr, fs fieldspace.FieldSpace) Result {
	sink := diag.NewSink()
	cx := &ast.Ctx{FS: fs, Sink: sink}
	value := root.Translate(cx)
	value.Value = fragment.Compress(value.Value)
	res := Result{Value: value, Diagnostics: sink.Diagnostics()}
	if n, ok := root.(namer); ok {
		if name, ok := n.DefaultName(); ok {
			res.DefaultName = name
		}
	}
	return res
}

// CompileFiltered translates a list of filter-condition expressions
// against a shared FieldSpace, enforcing that no condition is itself
// aggregate (spec.md §4.E), the same rule ExprFilter applies inline to its
// own filter list. It is exposed for a FieldSpace implementation that
// needs to pre-translate a field's own filter list (fieldspace.FieldEntry.
// FilterList) before handing it back through that interface.
func CompileFiltered(conds []ast.Expr, fs fieldspace.FieldSpace) ([]fieldspace.FilterCond, []diag.Diagnostic) {
	sink := diag.NewSink()
	cx := &ast.Ctx{FS: fs, Sink: sink}
	var out []fieldspace.FilterCond
	for _, c := range conds {
		v, ok := c.RequestTranslation(cx)
		if !ok {
			sink.Log(c, "filter condition has no value")
			continue
		}
		if v.IsError() {
			continue
		}
		if v.Aggregate {
			sink.Log(c, "Cannot filter a field with an aggregate computation")
			continue
		}
		out = append(out, fieldspace.FilterCond{Value: fragment.Compress(v.Value), Aggregate: v.Aggregate})
	}
	return out, sink.Diagnostics()
}
