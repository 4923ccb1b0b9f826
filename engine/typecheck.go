package engine

import (
	"fmt"

	"github.com/malloydata/exprcore/diag"
	"github.com/malloydata/exprcore/valtype"
)

// TypeCheck reports whether value's shape appears in legal. elementType is
// the node's human-readable tag, used in the diagnostic on failure.
// Callers that get false back must return valtype.ErrorFor(...) and must
// not attempt further composition with value.
func TypeCheck(sink *diag.Sink, loc diag.Loc, elementType string, value valtype.ExprValue, legal []valtype.Shape) bool {
	if value.IsError() {
		// An error value is inert: it was already diagnosed once.
		return false
	}
	if valtype.Matches(value, legal) {
		return true
	}
	sink.Log(loc, fmt.Sprintf("'%s' Can't use type %s", elementType, value.DataType))
	return false
}
