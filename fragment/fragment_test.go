package fragment_test

import (
	"testing"

	"github.com/malloydata/exprcore/fragment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDoesNotCompress(t *testing.T) {
	left := fragment.Seq{fragment.Field{Path: "x"}}
	right := fragment.Of("1")
	got := fragment.Compose(left, "+", right)
	require.Len(t, got, 3)
	assert.Equal(t, fragment.Field{Path: "x"}, got[0])
	assert.Equal(t, fragment.Text(" + "), got[1])
	assert.Equal(t, fragment.Text("1"), got[2])
}

func TestCompressMergesAdjacentText(t *testing.T) {
	seq := fragment.Seq{fragment.Text("a"), fragment.Text("b"), fragment.Field{Path: "x"}, fragment.Text("c"), fragment.Text("d")}
	got := fragment.Compress(seq)
	want := fragment.Seq{fragment.Text("ab"), fragment.Field{Path: "x"}, fragment.Text("cd")}
	assert.Equal(t, want, got)
}

func TestCompressIdempotent(t *testing.T) {
	seq := fragment.Seq{fragment.Text("a"), fragment.Text("b"), fragment.Field{Path: "x"}}
	once := fragment.Compress(seq)
	twice := fragment.Compress(once)
	assert.Equal(t, once, twice)
}

func TestWrapAndJoin(t *testing.T) {
	assert.Equal(t, fragment.Seq{fragment.Text("(x)")}, fragment.Wrap("(", fragment.Of("x"), ")"))
	joined := fragment.Join([]fragment.Seq{fragment.Of("a"), fragment.Of("b")}, ", ")
	assert.Equal(t, fragment.Seq{fragment.Text("a, b")}, joined)
}

func TestKindTagsAreStable(t *testing.T) {
	assert.Equal(t, "field", fragment.Field{}.Kind())
	assert.Equal(t, "aggregate", fragment.Aggregate{}.Kind())
	assert.Equal(t, "filterExpression", fragment.FilterExpr{}.Kind())
}
