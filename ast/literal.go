package ast

import (
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// ExprString is a string literal.
type ExprString struct {
	Loc
	Text string // the rendered SQL literal, e.g. `"hello"`
}

// ExprNumber is a numeric literal.
type ExprNumber struct {
	Loc
	Text string
}

// ExprRegEx is a regular-expression literal.
type ExprRegEx struct {
	Loc
	Pattern string
}

// ExprNULL is the null literal.
type ExprNULL struct {
	Loc
}

// Boolean is a boolean literal, constructed from the literal text "true"
// or "false".
type Boolean struct {
	Loc
	Text string // "true" or "false"
}

// ExprTime is a date or timestamp literal, optionally carrying a
// timeframe for a granular value.
type ExprTime struct {
	Loc
	Kind      valtype.DataType // valtype.Date or valtype.Timestamp
	Text      string           // rendered SQL literal
	Timeframe *valtype.Timeframe
	IsAggregate bool
}

func (e *ExprString) ElementType() string { return "string literal" }
func (e *ExprNumber) ElementType() string { return "numeric literal" }
func (e *ExprRegEx) ElementType() string  { return "regular expression literal" }
func (e *ExprNULL) ElementType() string   { return "null literal" }
func (e *Boolean) ElementType() string    { return "boolean literal" }
func (e *ExprTime) ElementType() string   { return "time literal" }

func (e *ExprString) Translate(cx *Ctx) valtype.ExprValue {
	return valtype.ExprValue{DataType: valtype.String, Value: fragment.Of(e.Text)}
}

func (e *ExprNumber) Translate(cx *Ctx) valtype.ExprValue {
	return valtype.ExprValue{DataType: valtype.Number, Value: fragment.Of(e.Text)}
}

func (e *ExprRegEx) Translate(cx *Ctx) valtype.ExprValue {
	return valtype.ExprValue{DataType: valtype.RegExp, Value: fragment.Of(e.Pattern)}
}

func (e *ExprNULL) Translate(cx *Ctx) valtype.ExprValue {
	return valtype.ExprValue{DataType: valtype.Null, Value: fragment.Of("NULL")}
}

func (e *Boolean) Translate(cx *Ctx) valtype.ExprValue {
	return valtype.ExprValue{DataType: valtype.Boolean, Value: fragment.Of(e.Text)}
}

func (e *ExprTime) Translate(cx *Ctx) valtype.ExprValue {
	v := valtype.ExprValue{DataType: e.Kind, Aggregate: e.IsAggregate, Value: fragment.Of(e.Text)}
	v.Timeframe = e.Timeframe
	return v
}

// RequestTranslation/Apply are identical across all literal kinds: each is
// fully value-bearing and delegates Apply to the shared default.

func (e *ExprString) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) { return e.Translate(cx), true }
func (e *ExprNumber) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) { return e.Translate(cx), true }
func (e *ExprRegEx) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool)  { return e.Translate(cx), true }
func (e *ExprNULL) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool)   { return e.Translate(cx), true }
func (e *Boolean) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool)    { return e.Translate(cx), true }
func (e *ExprTime) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool)   { return e.Translate(cx), true }

func (e *ExprString) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue { return applyDefault(cx, e, op, left) }
func (e *ExprNumber) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue { return applyDefault(cx, e, op, left) }
func (e *ExprRegEx) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue  { return applyDefault(cx, e, op, left) }
func (e *ExprNULL) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue   { return applyDefault(cx, e, op, left) }
func (e *Boolean) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue    { return applyDefault(cx, e, op, left) }
func (e *ExprTime) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue   { return applyDefault(cx, e, op, left) }
