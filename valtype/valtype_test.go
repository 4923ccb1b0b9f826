package valtype_test

import (
	"testing"

	"github.com/malloydata/exprcore/valtype"
	"github.com/stretchr/testify/assert"
)

func TestLooseTypeEqualTreatsNullAsWildcard(t *testing.T) {
	n := valtype.ExprValue{DataType: valtype.Null}
	s := valtype.ExprValue{DataType: valtype.String}
	num := valtype.ExprValue{DataType: valtype.Number}
	assert.True(t, valtype.LooseTypeEqual(n, s))
	assert.True(t, valtype.LooseTypeEqual(s, n))
	assert.False(t, valtype.TypeEqual(n, s))
	assert.False(t, valtype.LooseTypeEqual(s, num))
}

func TestTypeEqualIgnoresAggregateness(t *testing.T) {
	a := valtype.ExprValue{DataType: valtype.Number, Aggregate: true}
	b := valtype.ExprValue{DataType: valtype.Number, Aggregate: false}
	assert.True(t, valtype.TypeEqual(a, b))
}

func TestMatchesRespectsAggregateConstraint(t *testing.T) {
	legal := []valtype.Shape{valtype.NonAggregate(valtype.ShapeNumber)}
	aggNum := valtype.ExprValue{DataType: valtype.Number, Aggregate: true}
	plainNum := valtype.ExprValue{DataType: valtype.Number, Aggregate: false}
	assert.False(t, valtype.Matches(aggNum, legal))
	assert.True(t, valtype.Matches(plainNum, legal))
}

func TestErrorForIsInert(t *testing.T) {
	e := valtype.ErrorFor("reason")
	assert.True(t, e.IsError())
	assert.Empty(t, e.Value)
}
