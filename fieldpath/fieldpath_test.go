package fieldpath_test

import (
	"testing"

	"github.com/malloydata/exprcore/fieldpath"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	prefix, leaf, ok := fieldpath.Split("orders.line_items.sold")
	assert.True(t, ok)
	assert.Equal(t, "orders.line_items", prefix)
	assert.Equal(t, "sold", leaf)

	prefix, leaf, ok = fieldpath.Split("x")
	assert.False(t, ok)
	assert.Equal(t, "", prefix)
	assert.Equal(t, "x", leaf)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a.b", fieldpath.Join("a", "b"))
	assert.Equal(t, "b", fieldpath.Join("", "b"))
}
