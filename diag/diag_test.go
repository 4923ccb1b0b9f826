package diag_test

import (
	"testing"

	"github.com/malloydata/exprcore/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoc struct{ pos, end int }

func (l fakeLoc) Pos() int { return l.pos }
func (l fakeLoc) End() int { return l.end }

func TestSinkLogsInOrder(t *testing.T) {
	s := diag.NewSink()
	assert.False(t, s.HasErrors())
	s.Log(fakeLoc{0, 3}, "first")
	s.Log(fakeLoc{4, 8}, "second")
	require.True(t, s.HasErrors())
	got := s.Diagnostics()
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Message)
	assert.Equal(t, "second", got[1].Message)
	assert.Equal(t, 4, got[1].Pos)
}
