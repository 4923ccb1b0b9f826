package ast

import (
	"github.com/malloydata/exprcore/engine"
	"github.com/malloydata/exprcore/valtype"
)

// Range is "first to last". It has no value of its own; apply implements
// the asymmetric comparison rules documented in spec.md §4.E: "x > A to B"
// means "past the whole range", not merely "greater than one endpoint".
type Range struct {
	Loc
	First Expr
	Last  Expr
}

func (e *Range) ElementType() string { return "range" }

func (e *Range) Translate(cx *Ctx) valtype.ExprValue {
	cx.Sink.Log(e, "Range has no value")
	return valtype.ErrorFor("range has no value")
}

func (e *Range) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return valtype.ExprValue{}, false
}

// Apply implements:
//
//	=  -> other >= first AND other < last
//	!= -> other < first OR other >= last
//	>  -> other >= last
//	>= -> other >= first
//	<  -> other < first
//	<= -> other < last
func (e *Range) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	switch op {
	case engine.Eq:
		lo := engine.ApplyBinary(cx.Sink, e, left.Translate(cx), engine.Ge, e.First.Translate(cx))
		hi := engine.ApplyBinary(cx.Sink, e, left.Translate(cx), engine.Lt, e.Last.Translate(cx))
		return engine.ApplyBinary(cx.Sink, e, lo, engine.And, hi)
	case engine.Ne:
		lo := engine.ApplyBinary(cx.Sink, e, left.Translate(cx), engine.Lt, e.First.Translate(cx))
		hi := engine.ApplyBinary(cx.Sink, e, left.Translate(cx), engine.Ge, e.Last.Translate(cx))
		return engine.ApplyBinary(cx.Sink, e, lo, engine.Or, hi)
	case engine.Gt:
		return engine.ApplyBinary(cx.Sink, e, left.Translate(cx), engine.Ge, e.Last.Translate(cx))
	case engine.Ge:
		return engine.ApplyBinary(cx.Sink, e, left.Translate(cx), engine.Ge, e.First.Translate(cx))
	case engine.Lt:
		return engine.ApplyBinary(cx.Sink, e, left.Translate(cx), engine.Lt, e.First.Translate(cx))
	case engine.Le:
		return engine.ApplyBinary(cx.Sink, e, left.Translate(cx), engine.Lt, e.Last.Translate(cx))
	}
	cx.Sink.Log(e, "range used with unsupported operator "+op)
	return valtype.ErrorFor("unsupported range operator")
}
