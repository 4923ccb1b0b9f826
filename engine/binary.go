// Package engine implements the operator x type-matrix apply/binary
// engine, type checking, and null-safe boolean negation that every
// expression AST node composes through.
package engine

import (
	"fmt"

	"github.com/malloydata/exprcore/diag"
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

const (
	Eq     = "="
	Ne     = "!="
	Lt     = "<"
	Le     = "<="
	Gt     = ">"
	Ge     = ">="
	Add    = "+"
	Sub    = "-"
	Mul    = "*"
	Div    = "/"
	And    = "and"
	Or     = "or"
	Match  = "~"
	NMatch = "!~"
)

var sqlOp = map[string]string{
	Eq: "=", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	Add: "+", Sub: "-", Mul: "*", Div: "/", And: "and", Or: "or",
}

var comparisons = map[string]bool{Eq: true, Ne: true, Lt: true, Le: true, Gt: true, Ge: true}
var arithmetic = map[string]bool{Add: true, Sub: true, Mul: true, Div: true}

// ApplyBinary is the single entry point for binary composition, dispatching
// on op and the operands' data types. left and right must already be
// translated (neither is a partial expression); callers that own a partial
// node (Range, ExprAlternationTree, Pick in apply mode) implement their
// own distribution and never call ApplyBinary with a partial operand.
func ApplyBinary(sink *diag.Sink, loc diag.Loc, left valtype.ExprValue, op string, right valtype.ExprValue) valtype.ExprValue {
	if left.IsError() || right.IsError() {
		return valtype.ErrorFor("operand is already an error")
	}
	switch {
	case op == Match || op == NMatch:
		return applyMatch(sink, loc, left, op, right)
	case arithmetic[op]:
		return applyArithmetic(sink, loc, left, op, right)
	case op == And || op == Or:
		return applyBoolean(sink, loc, left, op, right)
	case comparisons[op]:
		return applyComparison(sink, loc, left, op, right)
	}
	sink.Log(loc, fmt.Sprintf("unknown operator %q", op))
	return valtype.ErrorFor("unknown operator")
}

func applyArithmetic(sink *diag.Sink, loc diag.Loc, left valtype.ExprValue, op string, right valtype.ExprValue) valtype.ExprValue {
	legal := []valtype.Shape{valtype.ShapeNumber}
	lok := TypeCheck(sink, loc, "arithmetic", left, legal)
	rok := TypeCheck(sink, loc, "arithmetic", right, legal)
	if !lok || !rok {
		return valtype.ErrorFor("non-numeric operand")
	}
	return valtype.ExprValue{
		DataType:  valtype.Number,
		Aggregate: left.Aggregate || right.Aggregate,
		Value:     fragment.Compose(left.Value, sqlOp[op], right.Value),
	}
}

func applyBoolean(sink *diag.Sink, loc diag.Loc, left valtype.ExprValue, op string, right valtype.ExprValue) valtype.ExprValue {
	legal := []valtype.Shape{valtype.ShapeBoolean}
	lok := TypeCheck(sink, loc, "boolean", left, legal)
	rok := TypeCheck(sink, loc, "boolean", right, legal)
	if !lok || !rok {
		return valtype.ErrorFor("non-boolean operand")
	}
	return valtype.ExprValue{
		DataType:  valtype.Boolean,
		Aggregate: left.Aggregate || right.Aggregate,
		Value:     fragment.Compose(left.Value, sqlOp[op], right.Value),
	}
}

func applyMatch(sink *diag.Sink, loc diag.Loc, left valtype.ExprValue, op string, right valtype.ExprValue) valtype.ExprValue {
	if !TypeCheck(sink, loc, "match", left, []valtype.Shape{valtype.ShapeString}) ||
		!TypeCheck(sink, loc, "match", right, []valtype.Shape{valtype.ShapeRegExp}) {
		return valtype.ErrorFor("match requires string ~ regular expression")
	}
	v := valtype.ExprValue{
		DataType:  valtype.Boolean,
		Aggregate: left.Aggregate || right.Aggregate,
		Value:     regexMatch(left.Value, right.Value),
	}
	if op == NMatch {
		v.Value = NullsafeNot(v.Value)
	}
	return v
}

func regexMatch(left, right fragment.Seq) fragment.Seq {
	return fragment.Compose(left, "~", right)
}

// NullsafeNot returns the fragment sequence for a null-safe boolean
// negation: "(x) is null or not (x)". This preserves three-valued-logic
// intent so that "not null == null" never suppresses a filtered row.
func NullsafeNot(x fragment.Seq) fragment.Seq {
	wrapped := fragment.Wrap("(", x, ")")
	isNull := fragment.Wrap("(", x, ") is null")
	notX := fragment.Prefix("not ", wrapped)
	return fragment.Compose(isNull, "or", notX)
}

func applyComparison(sink *diag.Sink, loc diag.Loc, left valtype.ExprValue, op string, right valtype.ExprValue) valtype.ExprValue {
	left, right, ok := reconcileComparands(sink, loc, left, right)
	if !ok {
		return valtype.ErrorFor("type mismatch in comparison")
	}
	return valtype.ExprValue{
		DataType:  valtype.Boolean,
		Aggregate: left.Aggregate || right.Aggregate,
		Value:     fragment.Compose(left.Value, sqlOp[op], right.Value),
	}
}

// reconcileComparands implements the mixed-temporal and granular-equality
// promotion rules: a date compared against a timestamp promotes the date
// to a timestamp; a granular temporal compared against a non-granular
// temporal of the same underlying kind truncates the non-granular side to
// the granular side's timeframe first.
func reconcileComparands(sink *diag.Sink, loc diag.Loc, left, right valtype.ExprValue) (valtype.ExprValue, valtype.ExprValue, bool) {
	if left.DataType == valtype.Null || right.DataType == valtype.Null {
		return left, right, true
	}
	if valtype.IsTemporal(left.DataType) && valtype.IsTemporal(right.DataType) {
		if left.DataType != right.DataType {
			left, right = promoteToTimestamp(left), promoteToTimestamp(right)
		}
		if left.Granular() != right.Granular() || (left.Granular() && right.Granular() && *left.Timeframe != *right.Timeframe) {
			left, right = reconcileGranularity(left, right)
		}
		return left, right, true
	}
	if left.DataType != right.DataType {
		sink.Log(loc, fmt.Sprintf("type mismatch: %s vs %s", left.DataType, right.DataType))
		return left, right, false
	}
	return left, right, true
}

// promoteToTimestamp promotes a coarser temporal operand (date) to the
// finer one (timestamp) so the two sides compare under the same type.
func promoteToTimestamp(v valtype.ExprValue) valtype.ExprValue {
	if v.DataType == valtype.Timestamp {
		return v
	}
	return valtype.ExprValue{
		DataType:  valtype.Timestamp,
		Aggregate: v.Aggregate,
		Value:     fragment.Wrap("TIMESTAMP(", v.Value, ")"),
	}
}

// reconcileGranularity truncates whichever operand lacks a timeframe to
// the granular operand's timeframe.
func reconcileGranularity(left, right valtype.ExprValue) (valtype.ExprValue, valtype.ExprValue) {
	if left.Granular() && !right.Granular() {
		return left, truncateTo(right, *left.Timeframe)
	}
	if right.Granular() && !left.Granular() {
		return truncateTo(left, *right.Timeframe), right
	}
	if left.Granular() && right.Granular() && *left.Timeframe != *right.Timeframe {
		fine := valtype.Timeframe(finerTimeframe(string(*left.Timeframe), string(*right.Timeframe)))
		if *left.Timeframe != fine {
			left = truncateTo(left, fine)
		}
		if *right.Timeframe != fine {
			right = truncateTo(right, fine)
		}
	}
	return left, right
}

func truncateTo(v valtype.ExprValue, tf valtype.Timeframe) valtype.ExprValue {
	out := valtype.ExprValue{
		DataType:  v.DataType,
		Aggregate: v.Aggregate,
		Value:     fragment.Wrap(fmt.Sprintf("DATE_TRUNC(%s, ", tf), v.Value, ")"),
	}
	return valtype.Grain(out, tf)
}
