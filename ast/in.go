package ast

import (
	"github.com/malloydata/exprcore/engine"
	"github.com/malloydata/exprcore/valtype"
)

// ExprIn is "e in (a, b, ...)", lowered to an OR-chain of equality
// comparisons, the same shape ExprAlternationTree distributes over |.
type ExprIn struct {
	Loc
	Expr Expr
	Set  []Expr
}

func (e *ExprIn) ElementType() string { return "in" }

func (e *ExprIn) Translate(cx *Ctx) valtype.ExprValue {
	if len(e.Set) == 0 {
		cx.Sink.Log(e, "in requires at least one member")
		return valtype.ErrorFor("empty in set")
	}
	lhs, ok := e.Expr.RequestTranslation(cx)
	if !ok {
		cx.Sink.Log(e.Expr, "left-hand side of in has no value")
		return valtype.ErrorFor("partial in operand")
	}
	if lhs.IsError() {
		return lhs
	}
	var acc *valtype.ExprValue
	for _, member := range e.Set {
		rhs, ok := member.RequestTranslation(cx)
		if !ok {
			cx.Sink.Log(member, "in member has no value")
			return valtype.ErrorFor("partial in member")
		}
		cmp := engine.ApplyBinary(cx.Sink, e, lhs, engine.Eq, rhs)
		if cmp.IsError() {
			return cmp
		}
		if acc == nil {
			acc = &cmp
			continue
		}
		combined := engine.ApplyBinary(cx.Sink, e, *acc, engine.Or, cmp)
		acc = &combined
	}
	return *acc
}

func (e *ExprIn) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *ExprIn) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
