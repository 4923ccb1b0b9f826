package ast

import (
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// ExprIsNull is "e is null" / "e is not null".
type ExprIsNull struct {
	Loc
	Expr Expr
	Not  bool
}

func (e *ExprIsNull) ElementType() string { return "is null" }

func (e *ExprIsNull) Translate(cx *Ctx) valtype.ExprValue {
	inner, ok := e.Expr.RequestTranslation(cx)
	if !ok {
		cx.Sink.Log(e, "is null operand has no value")
		return valtype.ErrorFor("partial operand")
	}
	if inner.IsError() {
		return inner
	}
	op := "is"
	if e.Not {
		op = "is not"
	}
	seq := fragment.Compose(inner.Value, op, fragment.Of("null"))
	return valtype.ExprValue{DataType: valtype.Boolean, Aggregate: inner.Aggregate, Value: seq}
}

func (e *ExprIsNull) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *ExprIsNull) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
