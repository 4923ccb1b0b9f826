package ast

import (
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// ExprFilter is "e { where: conds }"-style filtering of an aggregate
// expression. If the inner expression is not aggregate, filtering is a
// no-op: the inner expression passes through unchanged.
type ExprFilter struct {
	Loc
	Expr   Expr
	Filter []Expr
}

func (e *ExprFilter) ElementType() string { return "filter" }

func (e *ExprFilter) Translate(cx *Ctx) valtype.ExprValue {
	inner, ok := e.Expr.RequestTranslation(cx)
	if !ok {
		cx.Sink.Log(e, "filtered expression has no value")
		return valtype.ErrorFor("partial filtered expression")
	}
	if inner.IsError() {
		return inner
	}
	if !inner.Aggregate {
		return inner
	}
	var conds []fragment.Cond
	for _, f := range e.Filter {
		cond, ok := f.RequestTranslation(cx)
		if !ok {
			cx.Sink.Log(f, "filter condition has no value")
			return valtype.ErrorFor("partial filter condition")
		}
		if cond.IsError() {
			return cond
		}
		if cond.Aggregate {
			cx.Sink.Log(f, "Cannot filter a field with an aggregate computation")
			return valtype.ErrorFor("aggregate filter condition")
		}
		conds = append(conds, fragment.Cond{Value: cond.Value, Aggregate: cond.Aggregate})
	}
	return valtype.ExprValue{
		DataType:  inner.DataType,
		Aggregate: true,
		Value:     fragment.Seq{fragment.FilterExpr{Expr: inner.Value, FilterList: conds}},
	}
}

func (e *ExprFilter) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *ExprFilter) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
