package ast

import (
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// BinaryNumeric covers +, -, *, /, the comparisons, and the regex-match
// operators. It is right-biased: translation delegates to
// RHS.Apply(fs, op, LHS) so that a range, alternation tree, or pick on
// the right-hand side can override composition.
type BinaryNumeric struct {
	Loc
	Op  string
	LHS Expr
	RHS Expr
}

func (e *BinaryNumeric) ElementType() string { return "binary expression" }

func (e *BinaryNumeric) Translate(cx *Ctx) valtype.ExprValue {
	return e.RHS.Apply(cx, e.Op, e.LHS)
}

func (e *BinaryNumeric) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *BinaryNumeric) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}

// BinaryBoolean covers "and" and "or". Unlike BinaryNumeric it is not
// right-biased: both sides must already be boolean-valued expressions, so
// there is no partial-expression override to accommodate.
type BinaryBoolean struct {
	Loc
	Op  string // "and" or "or"
	LHS Expr
	RHS Expr
}

func (e *BinaryBoolean) ElementType() string { return "boolean expression" }

func (e *BinaryBoolean) Translate(cx *Ctx) valtype.ExprValue {
	legal := []valtype.Shape{valtype.ShapeBoolean}
	l, lok := e.LHS.RequestTranslation(cx)
	r, rok := e.RHS.RequestTranslation(cx)
	if !lok {
		cx.Sink.Log(e.LHS, "left-hand side of boolean expression has no value")
		return valtype.ErrorFor("partial left operand")
	}
	if !rok {
		cx.Sink.Log(e.RHS, "right-hand side of boolean expression has no value")
		return valtype.ErrorFor("partial right operand")
	}
	lok = typeCheck(cx, e, "boolean", l, legal)
	rok = typeCheck(cx, e, "boolean", r, legal)
	if !lok || !rok {
		return valtype.ErrorFor("non-boolean operand")
	}
	return valtype.ExprValue{
		DataType:  valtype.Boolean,
		Aggregate: l.Aggregate || r.Aggregate,
		Value:     fragment.Compose(l.Value, e.Op, r.Value),
	}
}

func (e *BinaryBoolean) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *BinaryBoolean) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
