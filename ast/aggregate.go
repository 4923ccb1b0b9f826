package ast

import (
	"fmt"

	"github.com/malloydata/exprcore/fieldpath"
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// AggFunc is the closed set of aggregate functions this core understands.
type AggFunc string

const (
	AggCount         AggFunc = "count"
	AggCountDistinct AggFunc = "count_distinct"
	AggSum           AggFunc = "sum"
	AggAvg           AggFunc = "avg"
	AggMin           AggFunc = "min"
	AggMax           AggFunc = "max"
)

var numericOnly = []valtype.Shape{valtype.NonAggregate(valtype.ShapeNumber)}

var scalarTypes = []valtype.Shape{
	valtype.NonAggregate(valtype.ShapeNumber),
	valtype.NonAggregate(valtype.ShapeString),
	valtype.NonAggregate(valtype.ShapeDate),
	valtype.NonAggregate(valtype.ShapeTimestamp),
}

func legalChildTypes(fn AggFunc) []valtype.Shape {
	switch fn {
	case AggCount:
		return nil
	case AggCountDistinct, AggMin, AggMax:
		return scalarTypes
	case AggSum, AggAvg:
		return numericOnly
	}
	return nil
}

func isScalar(dt valtype.DataType) bool {
	switch dt {
	case valtype.String, valtype.Number, valtype.Boolean, valtype.Date, valtype.Timestamp, valtype.Null:
		return true
	}
	return false
}

// ExprAggregateFunction is count/count_distinct/sum/avg/min/max. Expr is
// nil for a bare count; Source, when set, is the dotted field path the
// aggregate is locally scoped to, used to derive both a default
// expression (when Expr is nil) and a structPath fragment.
type ExprAggregateFunction struct {
	Loc
	Func   AggFunc
	Expr   Expr   // nil for bare count, or when Source alone supplies the value
	Source string // "" when the aggregate is not struct-scoped
}

func (e *ExprAggregateFunction) ElementType() string { return string(e.Func) }

func (e *ExprAggregateFunction) Translate(cx *Ctx) valtype.ExprValue {
	inner, structPath, ok := e.resolveOperand(cx)
	if !ok {
		return valtype.ErrorFor("aggregate operand unresolved")
	}
	legal := legalChildTypes(e.Func)
	if inner != nil {
		if !typeCheck(cx, e, string(e.Func), *inner, legal) {
			return valtype.ErrorFor("illegal aggregate operand type")
		}
	} else if e.Func != AggCount {
		cx.Sink.Log(e, "Missing expression for aggregate function")
		return valtype.ErrorFor("missing aggregate expression")
	}

	innerSeq := fragment.Of("*")
	if inner != nil {
		innerSeq = inner.Value
	}
	result := valtype.ExprValue{
		DataType:  returnsType(e.Func, inner),
		Aggregate: true,
		Value: fragment.Seq{fragment.Aggregate{
			Function:   string(e.Func),
			Expr:       innerSeq,
			StructPath: structPath,
		}},
	}
	return result
}

// resolveOperand implements spec.md §4.E step 1: when Source is set, look
// it up and, if it resolves to a scalar field, use it as the default
// operand and strip its leaf segment into structPath. inner is nil when
// no operand was supplied or derivable (legal only for a bare count); ok
// is false once a diagnostic has already been logged.
func (e *ExprAggregateFunction) resolveOperand(cx *Ctx) (inner *valtype.ExprValue, structPath string, ok bool) {
	if e.Expr != nil {
		v, translated := e.Expr.RequestTranslation(cx)
		if !translated {
			cx.Sink.Log(e.Expr, "aggregate operand has no value")
			return nil, "", false
		}
		if v.IsError() {
			return nil, "", false
		}
		// An aggregate-of-aggregate operand is caught by the
		// aggregate-forced-false shape table below, not here.
		return &v, "", true
	}
	if e.Source == "" {
		return nil, "", true
	}
	entry, found := cx.FS.Field(e.Source)
	if !found {
		cx.Sink.Log(e, fmt.Sprintf("Reference to undefined field '%s'", e.Source))
		return nil, "", false
	}
	dataType, aggregate := entry.Type()
	if !isScalar(dataType) {
		cx.Sink.Log(e, fmt.Sprintf("cannot use struct field '%s' as aggregate source", e.Source))
		return nil, "", false
	}
	prefix, leaf, _ := fieldpath.Split(e.Source)
	v := valtype.ExprValue{
		DataType:  dataType,
		Aggregate: aggregate,
		Value:     fragment.Seq{fragment.Field{Path: leaf}},
	}
	return &v, prefix, true
}

func returnsType(fn AggFunc, inner *valtype.ExprValue) valtype.DataType {
	switch fn {
	case AggMin, AggMax:
		if inner != nil {
			return inner.DataType
		}
		return valtype.Error
	default:
		return valtype.Number
	}
}

// DefaultName returns the default output field name sum/avg derive when
// computed against a named Source with no explicit Expr, e.g.
// "total_sold" or "avg_sold". ok is false for every other combination,
// including count/min/max or an explicit Expr.
func (e *ExprAggregateFunction) DefaultName() (name string, ok bool) {
	if e.Expr != nil || e.Source == "" {
		return "", false
	}
	_, foot, _ := fieldpath.Split(e.Source)
	switch e.Func {
	case AggSum:
		return "total_" + foot, true
	case AggAvg:
		return "avg_" + foot, true
	}
	return "", false
}

func (e *ExprAggregateFunction) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *ExprAggregateFunction) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
