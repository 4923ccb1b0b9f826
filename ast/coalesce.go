package ast

import (
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// ExprCoalesce is "coalesce(a, b, ...)". Its result type is the first
// non-null argument's type, under the same loose-equality discipline
// ExprCase applies across branches; aggregation is the OR of all
// arguments.
type ExprCoalesce struct {
	Loc
	Args []Expr
}

func (e *ExprCoalesce) ElementType() string { return "coalesce" }

func (e *ExprCoalesce) Translate(cx *Ctx) valtype.ExprValue {
	if len(e.Args) == 0 {
		cx.Sink.Log(e, "coalesce requires at least one argument")
		return valtype.ErrorFor("empty coalesce")
	}
	var resultType *valtype.ExprValue
	aggregate := false
	vals := make([]fragment.Seq, 0, len(e.Args))
	for _, a := range e.Args {
		v, ok := a.RequestTranslation(cx)
		if !ok {
			cx.Sink.Log(a, "coalesce argument has no value")
			return valtype.ErrorFor("partial coalesce argument")
		}
		if v.IsError() {
			return v
		}
		aggregate = aggregate || v.Aggregate
		resultType = foldPickType(cx, a, resultType, v)
		vals = append(vals, v.Value)
	}
	if resultType != nil && resultType.DataType == valtype.Error {
		// foldPickType has already logged the mismatch.
		return valtype.ErrorFor("coalesce type not computable")
	}
	if resultType == nil || resultType.DataType == valtype.Null {
		cx.Sink.Log(e, "coalesce type not computable")
		return valtype.ErrorFor("coalesce type not computable")
	}
	return valtype.ExprValue{
		DataType:  resultType.DataType,
		Aggregate: aggregate,
		Value:     fragment.Wrap("coalesce(", fragment.Join(vals, ", "), ")"),
	}
}

func (e *ExprCoalesce) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *ExprCoalesce) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
