package ast

import (
	"github.com/malloydata/exprcore/engine"
	"github.com/malloydata/exprcore/valtype"
)

// applyDefault is the default Apply behavior: translate both sides and
// delegate to engine.ApplyBinary. Every value-bearing leaf and
// straightforward composite node uses this; Range, ExprAlternationTree,
// and Pick override Apply entirely because they have no value of their
// own to translate.
func applyDefault(cx *Ctx, self Expr, op string, left Expr) valtype.ExprValue {
	leftVal := left.Translate(cx)
	rightVal := self.Translate(cx)
	return engine.ApplyBinary(cx.Sink, self, leftVal, op, rightVal)
}
