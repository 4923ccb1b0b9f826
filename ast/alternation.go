package ast

import (
	"github.com/malloydata/exprcore/engine"
	"github.com/malloydata/exprcore/valtype"
)

// ExprAlternationTree is "l | r" or "l & r". It has no value of its own:
// it only exists to be applied against some other expression via
// Apply, which distributes the operator over both branches and combines
// the results with or (for |) or and (for &).
type ExprAlternationTree struct {
	Loc
	Op  string // "|" or "&"
	LHS Expr
	RHS Expr
}

func (e *ExprAlternationTree) ElementType() string { return "alternation" }

func (e *ExprAlternationTree) Translate(cx *Ctx) valtype.ExprValue {
	cx.Sink.Log(e, "Alternation tree has no value")
	return valtype.ErrorFor("alternation tree has no value")
}

func (e *ExprAlternationTree) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return valtype.ExprValue{}, false
}

func (e *ExprAlternationTree) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	leftBranch := e.LHS.Apply(cx, op, left)
	rightBranch := e.RHS.Apply(cx, op, left)
	combinator := engine.Or
	if e.Op == "&" {
		combinator = engine.And
	}
	return engine.ApplyBinary(cx.Sink, e, leftBranch, combinator, rightBranch)
}
