package engine_test

import (
	"testing"

	"github.com/malloydata/exprcore/diag"
	"github.com/malloydata/exprcore/engine"
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoc struct{}

func (fakeLoc) Pos() int { return 0 }
func (fakeLoc) End() int { return 0 }

func numField(name string) valtype.ExprValue {
	return valtype.ExprValue{DataType: valtype.Number, Value: fragment.Seq{fragment.Field{Path: name}}}
}

func numLit(text string) valtype.ExprValue {
	return valtype.ExprValue{DataType: valtype.Number, Value: fragment.Of(text)}
}

func TestApplyBinaryArithmeticAggregateness(t *testing.T) {
	sink := diag.NewSink()
	agg := valtype.ExprValue{DataType: valtype.Number, Aggregate: true, Value: fragment.Of("total")}
	got := engine.ApplyBinary(sink, fakeLoc{}, agg, engine.Add, numLit("1"))
	require.False(t, sink.HasErrors())
	assert.True(t, got.Aggregate)
	assert.Equal(t, valtype.Number, got.DataType)
}

func TestApplyBinaryArithmeticTypeMismatch(t *testing.T) {
	sink := diag.NewSink()
	str := valtype.ExprValue{DataType: valtype.String, Value: fragment.Of(`"x"`)}
	got := engine.ApplyBinary(sink, fakeLoc{}, str, engine.Add, numLit("1"))
	assert.True(t, got.IsError())
	require.True(t, sink.HasErrors())
	assert.Contains(t, sink.Diagnostics()[0].Message, "Can't use type")
}

func TestApplyBinaryErrorOperandDoesNotDoubleReport(t *testing.T) {
	sink := diag.NewSink()
	errVal := valtype.ErrorFor("prior failure")
	got := engine.ApplyBinary(sink, fakeLoc{}, errVal, engine.Add, numLit("1"))
	assert.True(t, got.IsError())
	assert.False(t, sink.HasErrors())
}

func TestNullsafeNotDoubleNegationStructure(t *testing.T) {
	x := fragment.Seq{fragment.Field{Path: "ok"}}
	once := engine.NullsafeNot(x)
	twice := engine.NullsafeNot(once)
	// not(not(x)) differs textually from x (spec invariant 4 is about
	// dialect-level semantic equivalence, not textual equality) but must
	// still be a well-formed boolean fragment sequence.
	assert.NotEmpty(t, once)
	assert.NotEmpty(t, twice)
}

func TestApplyComparisonPromotesDateToTimestamp(t *testing.T) {
	sink := diag.NewSink()
	date := valtype.ExprValue{DataType: valtype.Date, Value: fragment.Of("d")}
	ts := valtype.ExprValue{DataType: valtype.Timestamp, Value: fragment.Of("t")}
	got := engine.ApplyBinary(sink, fakeLoc{}, date, engine.Lt, ts)
	require.False(t, sink.HasErrors())
	assert.Equal(t, valtype.Boolean, got.DataType)
	found := false
	for _, f := range got.Value {
		if txt, ok := f.(fragment.Text); ok && containsTimestampCall(string(txt)) {
			found = true
		}
	}
	assert.True(t, found, "expected a TIMESTAMP(...) promotion in %v", got.Value)
}

func containsTimestampCall(s string) bool {
	for i := 0; i+10 <= len(s); i++ {
		if s[i:i+10] == "TIMESTAMP(" {
			return true
		}
	}
	return false
}

func TestApplyMatchAndNegation(t *testing.T) {
	sink := diag.NewSink()
	str := valtype.ExprValue{DataType: valtype.String, Value: fragment.Of("s")}
	re := valtype.ExprValue{DataType: valtype.RegExp, Value: fragment.Of("/foo/")}
	matched := engine.ApplyBinary(sink, fakeLoc{}, str, engine.Match, re)
	require.False(t, sink.HasErrors())
	assert.Equal(t, valtype.Boolean, matched.DataType)

	notMatched := engine.ApplyBinary(sink, fakeLoc{}, str, engine.NMatch, re)
	require.False(t, sink.HasErrors())
	assert.Equal(t, valtype.Boolean, notMatched.DataType)
	assert.NotEqual(t, matched.Value, notMatched.Value)
}

func TestApplyBooleanRequiresBoolean(t *testing.T) {
	sink := diag.NewSink()
	b := valtype.ExprValue{DataType: valtype.Boolean, Value: fragment.Of("true")}
	got := engine.ApplyBinary(sink, fakeLoc{}, b, engine.And, numLit("1"))
	assert.True(t, got.IsError())
	require.True(t, sink.HasErrors())
}
