package crossing

import (
	"math"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
)

// segmentKind classifies one waypoint segment for the sweep-line fast path.
type segmentKind int

const (
	segHorizontal segmentKind = iota
	segVertical
	segDiagonal
	segDegenerate // both endpoints coincide within tolerance; never crosses anything
)

// segment is one waypoint-to-waypoint leg of a connection's route.
type segment struct {
	connID string
	a, b   geometry.Point
	kind   segmentKind
}

func classifySegment(a, b geometry.Point, tolerance float64) segmentKind {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)
	switch {
	case dx <= tolerance && dy <= tolerance:
		return segDegenerate
	case dy <= tolerance:
		return segHorizontal
	case dx <= tolerance:
		return segVertical
	default:
		return segDiagonal
	}
}

// collectSegments flattens every connection's waypoint polyline into its
// classified legs, in registry id order (registry.AllConnections is
// already id-sorted).
func collectSegments(registry *model.Registry) []segment {
	var segs []segment
	for _, c := range registry.AllConnections() {
		for i := 1; i < len(c.Waypoints); i++ {
			segs = append(segs, segment{
				connID: c.ID,
				a:      c.Waypoints[i-1],
				b:      c.Waypoints[i],
				kind:   classifySegment(c.Waypoints[i-1], c.Waypoints[i], OrthoClassTolerance),
			})
		}
	}
	return segs
}

// yRange/xRange return a segment's span along the named axis, min first.
func yRange(s segment) (lo, hi float64) {
	if s.a.Y <= s.b.Y {
		return s.a.Y, s.b.Y
	}
	return s.b.Y, s.a.Y
}

func xRange(s segment) (lo, hi float64) {
	if s.a.X <= s.b.X {
		return s.a.X, s.b.X
	}
	return s.b.X, s.a.X
}
