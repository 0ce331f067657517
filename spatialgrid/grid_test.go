package spatialgrid

import (
	"testing"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_InsertAndQuery(t *testing.T) {
	g := New(200)
	g.Insert("a", geometry.Rect{X: 0, Y: 0, Width: 50, Height: 50})
	g.Insert("b", geometry.Rect{X: 500, Y: 500, Width: 50, Height: 50})

	got := g.GetCandidates(geometry.Rect{X: -10, Y: -10, Width: 20, Height: 20}, "")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0])
}

func TestGrid_UpdateIsIdempotent(t *testing.T) {
	g := New(200)
	g.Insert("a", geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	g.Update("a", geometry.Rect{X: 1000, Y: 1000, Width: 10, Height: 10})

	assert.Empty(t, g.GetCandidates(geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}, ""))
	assert.Len(t, g.GetCandidates(geometry.Rect{X: 1000, Y: 1000, Width: 10, Height: 10}, ""), 1)
}

func TestGrid_ExcludeID(t *testing.T) {
	g := New(200)
	g.Insert("a", geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	g.Insert("b", geometry.Rect{X: 5, Y: 5, Width: 10, Height: 10})

	got := g.GetCandidates(geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}, "a")
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0])
}

func TestGrid_GetCandidatesExpanded(t *testing.T) {
	g := New(200)
	g.Insert("a", geometry.Rect{X: 300, Y: 0, Width: 10, Height: 10})

	assert.Empty(t, g.GetCandidates(geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}, ""))
	assert.Len(t, g.GetCandidatesExpanded(geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}, 300, ""), 1)
}
