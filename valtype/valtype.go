// Package valtype defines the expression value type system: a closed set
// of scalar data types crossed with an aggregation flag and an optional
// time granularity, plus the ExprValue triple that every translated
// expression node produces.
package valtype

import "github.com/malloydata/exprcore/fragment"

// DataType is the closed set of scalar types an expression can carry.
type DataType string

const (
	String    DataType = "string"
	Number    DataType = "number"
	Boolean   DataType = "boolean"
	Date      DataType = "date"
	Timestamp DataType = "timestamp"
	Null      DataType = "null"
	RegExp    DataType = "regular expression"
	Error     DataType = "error"
)

// Timeframe is the set of granularities a date or timestamp value may be
// truncated to.
type Timeframe string

const (
	Second  Timeframe = "second"
	Minute  Timeframe = "minute"
	Hour    Timeframe = "hour"
	Day     Timeframe = "day"
	Week    Timeframe = "week"
	Month   Timeframe = "month"
	Quarter Timeframe = "quarter"
	Year    Timeframe = "year"
)

// IsTemporal reports whether dt is date or timestamp, the only types that
// may carry a Timeframe.
func IsTemporal(dt DataType) bool {
	return dt == Date || dt == Timestamp
}

// ExprValue is the result of translating an expression node: its data
// type, whether it is aggregate, its fragment sequence, and (for granular
// temporal values) its timeframe.
type ExprValue struct {
	DataType  DataType
	Aggregate bool
	Value     fragment.Seq
	Timeframe *Timeframe // non-nil only when DataType is Date or Timestamp and the value is granular
}

// Granular reports whether v carries a timeframe.
func (v ExprValue) Granular() bool {
	return v.Timeframe != nil
}

// IsError reports whether v is the inert error sentinel.
func (v ExprValue) IsError() bool {
	return v.DataType == Error
}

// ErrorFor returns the inert error-typed ExprValue. reason is accepted for
// call-site documentation only; the returned value carries no fragments and
// callers must not attempt further composition with it.
func ErrorFor(reason string) ExprValue {
	return ExprValue{DataType: Error}
}

// Grain attaches a timeframe to v, returning a copy. v.DataType must be
// Date or Timestamp.
func Grain(v ExprValue, tf Timeframe) ExprValue {
	v.Timeframe = &tf
	return v
}

// Shape is a legal-child-type entry: an acceptable data type, optionally
// constrained to a required aggregate-ness.
type Shape struct {
	DataType  DataType
	Aggregate *bool // nil means either aggregate-ness is acceptable
}

// Predefined shapes used throughout the AST's legalChildTypes sets.
var (
	ShapeString    = Shape{DataType: String}
	ShapeNumber    = Shape{DataType: Number}
	ShapeBoolean   = Shape{DataType: Boolean}
	ShapeDate      = Shape{DataType: Date}
	ShapeTimestamp = Shape{DataType: Timestamp}
	ShapeNull      = Shape{DataType: Null}
	ShapeRegExp    = Shape{DataType: RegExp}
)

// NonAggregate returns a copy of s constrained to non-aggregate operands.
func NonAggregate(s Shape) Shape {
	f := false
	s.Aggregate = &f
	return s
}

// TypeEqual reports whether a and b carry the same data type. Aggregation
// is never part of type equality.
func TypeEqual(a, b ExprValue) bool {
	return a.DataType == b.DataType
}

// LooseTypeEqual is TypeEqual extended so that Null compares equal to any
// data type.
func LooseTypeEqual(a, b ExprValue) bool {
	if a.DataType == Null || b.DataType == Null {
		return true
	}
	return TypeEqual(a, b)
}

// Matches reports whether v's shape appears in legal: its data type must
// match a Shape's DataType, and if that Shape constrains Aggregate, v's
// Aggregate flag must match it too.
func Matches(v ExprValue, legal []Shape) bool {
	for _, s := range legal {
		if v.DataType != s.DataType {
			continue
		}
		if s.Aggregate == nil || *s.Aggregate == v.Aggregate {
			return true
		}
	}
	return false
}
