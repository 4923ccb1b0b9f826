package ast

import (
	"github.com/malloydata/exprcore/engine"
	"github.com/malloydata/exprcore/valtype"
)

// ExprNot implements null-safe boolean negation. Besides ExprNot, only
// ExprBetween's not form and the !~ operator apply engine.NullsafeNot —
// other boolean combinators do not null-propagate (spec open question (b)).
type ExprNot struct {
	Loc
	Expr Expr
}

func (e *ExprNot) ElementType() string { return "not" }

func (e *ExprNot) Translate(cx *Ctx) valtype.ExprValue {
	inner, ok := e.Expr.RequestTranslation(cx)
	if !ok {
		cx.Sink.Log(e, "not operand has no value")
		return valtype.ErrorFor("partial operand")
	}
	legal := []valtype.Shape{valtype.ShapeBoolean, valtype.ShapeNull}
	if !typeCheck(cx, e, "not", inner, legal) {
		return valtype.ErrorFor("non-boolean operand")
	}
	return valtype.ExprValue{
		DataType:  valtype.Boolean,
		Aggregate: inner.Aggregate,
		Value:     engine.NullsafeNot(inner.Value),
	}
}

func (e *ExprNot) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *ExprNot) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
