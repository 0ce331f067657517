package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectsOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	c := Rect{X: 10, Y: 10, Width: 10, Height: 10} // touches a at a single corner

	assert.True(t, RectsOverlap(a, b))
	assert.False(t, RectsOverlap(a, c), "touching rects must not count as overlap")
}

func TestRectsNearby(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 25, Y: 0, Width: 10, Height: 10}

	assert.False(t, RectsNearby(a, b, 5))
	assert.True(t, RectsNearby(a, b, 10))
}

func TestSegmentIntersectsRect(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	require.True(t, SegmentIntersectsRect(Point{X: -5, Y: 5}, Point{X: 15, Y: 5}, rect))
	require.True(t, SegmentIntersectsRect(Point{X: 2, Y: 2}, Point{X: 8, Y: 8}, rect))
	require.False(t, SegmentIntersectsRect(Point{X: -5, Y: -5}, Point{X: -1, Y: -1}, rect))
}

func TestSegmentsIntersect(t *testing.T) {
	// A strict plus: horizontal crosses vertical through the interior.
	h1, h2 := Point{X: 0, Y: 5}, Point{X: 10, Y: 5}
	v1, v2 := Point{X: 5, Y: 0}, Point{X: 5, Y: 10}
	assert.True(t, SegmentsIntersect(h1, h2, v1, v2))

	// Endpoint touch only: must not count as a crossing.
	v1Touch, v2Touch := Point{X: 5, Y: 5}, Point{X: 5, Y: 10}
	assert.False(t, SegmentsIntersect(h1, h2, v1Touch, v2Touch))

	// Parallel, non-intersecting.
	assert.False(t, SegmentsIntersect(Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, Point{X: 0, Y: 5}, Point{X: 10, Y: 5}))
}
