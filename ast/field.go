package ast

import (
	"fmt"

	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// ExprField is a reference to a (possibly dotted) field name, resolved
// against the FieldSpace at translation time.
type ExprField struct {
	Loc
	Name string
}

func (e *ExprField) ElementType() string { return "field reference" }

func (e *ExprField) Translate(cx *Ctx) valtype.ExprValue {
	entry, ok := cx.FS.Field(e.Name)
	if !ok {
		cx.Sink.Log(e, fmt.Sprintf("Reference to undefined field '%s'", e.Name))
		return valtype.ErrorFor("undefined field")
	}
	dataType, aggregate := entry.Type()
	return valtype.ExprValue{
		DataType:  dataType,
		Aggregate: aggregate,
		Value:     fragment.Seq{fragment.Field{Path: e.Name}},
	}
}

func (e *ExprField) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *ExprField) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
