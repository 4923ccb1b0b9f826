package ast

import (
	"github.com/malloydata/exprcore/engine"
	"github.com/malloydata/exprcore/valtype"
)

// ExprBetween is "e between lower and upper" / "e not between lower and
// upper", sugar over Range: it rewrites to Range(lower, upper).Apply(fs,
// "=", e), negated with NullsafeNot when Not is set.
type ExprBetween struct {
	Loc
	Expr         Expr
	Lower, Upper Expr
	Not          bool
}

func (e *ExprBetween) ElementType() string { return "between" }

func (e *ExprBetween) Translate(cx *Ctx) valtype.ExprValue {
	r := &Range{Loc: e.Loc, First: e.Lower, Last: e.Upper}
	v := r.Apply(cx, engine.Eq, e.Expr)
	if v.IsError() || !e.Not {
		return v
	}
	return valtype.ExprValue{
		DataType:  valtype.Boolean,
		Aggregate: v.Aggregate,
		Value:     engine.NullsafeNot(v.Value),
	}
}

func (e *ExprBetween) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *ExprBetween) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
