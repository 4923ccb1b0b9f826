package ast

import (
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// ExprCast is "cast(e as type)" / "safe_cast(e as type)", with special
// lowerings for date<->timestamp conversions.
type ExprCast struct {
	Loc
	Expr Expr
	Type valtype.DataType
	Safe bool
}

func (e *ExprCast) ElementType() string { return "cast" }

func (e *ExprCast) Translate(cx *Ctx) valtype.ExprValue {
	inner, ok := e.Expr.RequestTranslation(cx)
	if !ok {
		cx.Sink.Log(e, "cast operand has no value")
		return valtype.ErrorFor("partial cast operand")
	}
	if inner.IsError() {
		return inner
	}
	if inner.DataType == valtype.Date && e.Type == valtype.Timestamp {
		return valtype.ExprValue{DataType: valtype.Timestamp, Aggregate: inner.Aggregate, Value: fragment.Wrap("TIMESTAMP(", inner.Value, ")")}
	}
	if inner.DataType == valtype.Timestamp && e.Type == valtype.Date {
		v := valtype.ExprValue{DataType: valtype.Date, Aggregate: inner.Aggregate, Value: fragment.Wrap("DATE(", inner.Value, ")")}
		return valtype.Grain(v, valtype.Day)
	}
	fn := "cast"
	if e.Safe {
		fn = "safe_cast"
	}
	seq := fragment.Wrap(fn+"(", inner.Value, " as "+string(e.Type)+")")
	return valtype.ExprValue{DataType: e.Type, Aggregate: inner.Aggregate, Value: seq}
}

func (e *ExprCast) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *ExprCast) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
