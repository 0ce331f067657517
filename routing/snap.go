package routing

import (
	"math"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// OrthogonalSnap cleans up near-diagonal waypoints: for every consecutive pair,
// a segment already axis-aligned (one delta under 1 px) is left alone, a
// genuinely diagonal segment (both deltas at or above tolerance) is left
// alone, and anything in between has its smaller delta snapped to zero.
func OrthogonalSnap(wps []geometry.Point, tolerance float64) []geometry.Point {
	out := geometry.CloneWaypoints(wps)
	for i := 1; i < len(out); i++ {
		dx := math.Abs(out[i].X - out[i-1].X)
		dy := math.Abs(out[i].Y - out[i-1].Y)
		if dx < orthoSnapMinDelta || dy < orthoSnapMinDelta {
			continue
		}
		if dx >= tolerance && dy >= tolerance {
			continue
		}
		if dx < dy {
			out[i].X = out[i-1].X
		} else {
			out[i].Y = out[i-1].Y
		}
	}
	return out
}

// ApplyOrthogonalSnap re-snaps every connection in ids in place.
func ApplyOrthogonalSnap(registry *model.Registry, m *modeler.Modeler, ids []string) error {
	for _, id := range ids {
		c, ok := registry.GetConnection(id)
		if !ok || len(c.Waypoints) < 2 {
			continue
		}
		snapped := OrthogonalSnap(c.Waypoints, SegmentOrthoSnap)
		if err := m.UpdateWaypoints(id, snapped); err != nil {
			return err
		}
	}
	return nil
}
