package ast

import (
	"github.com/malloydata/exprcore/engine"
	"github.com/malloydata/exprcore/valtype"
)

// typeCheck wraps engine.TypeCheck, supplying node's own location as the
// diagnostic target. elementType should read naturally in "'<elementType>'
// Can't use type <dataType>".
func typeCheck(cx *Ctx, node Node, elementType string, value valtype.ExprValue, legal []valtype.Shape) bool {
	return engine.TypeCheck(cx.Sink, node, elementType, value, legal)
}
