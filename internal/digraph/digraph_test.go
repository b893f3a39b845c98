package digraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New(3)
	require.NotNil(t, g)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Edges())
}

func TestTighten(t *testing.T) {
	t.Run("inserts missing edge", func(t *testing.T) {
		g := New(2)
		assert.True(t, g.Tighten(0, 1, 5))
		w, ok := g.Weight(0, 1)
		require.True(t, ok)
		assert.Equal(t, 5.0, w)
		assert.Equal(t, 1, g.EdgeCount())
	})

	t.Run("looser bound is ignored", func(t *testing.T) {
		g := New(2)
		g.Tighten(0, 1, 5)
		assert.False(t, g.Tighten(0, 1, 7))
		assert.False(t, g.Tighten(0, 1, 5))
		w, _ := g.Weight(0, 1)
		assert.Equal(t, 5.0, w)
		assert.Equal(t, 1, g.EdgeCount())
	})

	t.Run("tighter bound replaces", func(t *testing.T) {
		g := New(2)
		g.Tighten(0, 1, 5)
		assert.True(t, g.Tighten(0, 1, -2))
		w, _ := g.Weight(0, 1)
		assert.Equal(t, -2.0, w)
		assert.Equal(t, 1, g.EdgeCount())
	})
}

func TestSet(t *testing.T) {
	g := New(2)
	g.Set(0, 1, 5)
	g.Set(0, 1, 9) // Exact values may loosen a previous estimate.
	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 9.0, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestEdges_Sorted(t *testing.T) {
	g := New(3)
	g.Set(2, 0, 1)
	g.Set(0, 2, 3)
	g.Set(0, 1, 2)
	g.Set(1, 1, -1)

	assert.Equal(t, []Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 2, Weight: 3},
		{From: 1, To: 1, Weight: -1},
		{From: 2, To: 0, Weight: 1},
	}, g.Edges())
}

func TestSuccessors(t *testing.T) {
	g := New(3)
	g.Set(0, 1, 4)
	g.Set(0, 2, 6)

	got := make(map[int]float64)
	g.Successors(0, func(v int, w float64) { got[v] = w })
	assert.Equal(t, map[int]float64{1: 4, 2: 6}, got)

	g.Successors(1, func(v int, w float64) { t.Fatalf("unexpected successor %d", v) })
}

func TestClone_IsIndependent(t *testing.T) {
	g := New(2)
	g.Set(0, 1, 5)

	cp := g.Clone()
	cp.Set(0, 1, 1)
	cp.Set(1, 0, -1)

	w, _ := g.Weight(0, 1)
	assert.Equal(t, 5.0, w)
	assert.False(t, g.Has(1, 0))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, cp.EdgeCount())
}
