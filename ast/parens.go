package ast

import (
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// ExprParens is a parenthesized sub-expression. Its Apply and
// RequestTranslation are transparent: they forward to the inner
// expression so a parenthesized partial (e.g. "(1 to 10)") still composes
// the way the unparenthesized partial would.
type ExprParens struct {
	Loc
	Expr Expr
}

func (e *ExprParens) ElementType() string { return "parenthesized expression" }

func (e *ExprParens) Translate(cx *Ctx) valtype.ExprValue {
	inner, ok := e.Expr.RequestTranslation(cx)
	if !ok {
		cx.Sink.Log(e, "parenthesized expression has no value")
		return valtype.ErrorFor("partial expression in parentheses")
	}
	if inner.IsError() {
		return inner
	}
	return valtype.ExprValue{
		DataType:  inner.DataType,
		Aggregate: inner.Aggregate,
		Timeframe: inner.Timeframe,
		Value:     fragment.Wrap("(", inner.Value, ")"),
	}
}

func (e *ExprParens) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Expr.RequestTranslation(cx)
}

func (e *ExprParens) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return e.Expr.Apply(cx, op, left)
}
