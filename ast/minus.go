package ast

import (
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// ExprMinus is unary numeric negation.
type ExprMinus struct {
	Loc
	Expr Expr
}

func (e *ExprMinus) ElementType() string { return "unary minus" }

func (e *ExprMinus) Translate(cx *Ctx) valtype.ExprValue {
	inner, ok := e.Expr.RequestTranslation(cx)
	if !ok {
		cx.Sink.Log(e, "unary minus operand has no value")
		return valtype.ErrorFor("partial operand")
	}
	legal := []valtype.Shape{valtype.ShapeNumber}
	if !typeCheck(cx, e, "unary minus", inner, legal) {
		return valtype.ErrorFor("non-numeric operand")
	}
	var out fragment.Seq
	if len(inner.Value) > 1 {
		out = fragment.Wrap("-(", inner.Value, ")")
	} else {
		out = fragment.Prefix("-", inner.Value)
	}
	return valtype.ExprValue{DataType: valtype.Number, Aggregate: inner.Aggregate, Value: out}
}

func (e *ExprMinus) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *ExprMinus) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
