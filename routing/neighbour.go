package routing

import (
	"math"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// rowTolerance is how close two centre-ys must be before a neighbour
// repair treats the pair as same-row.
const rowTolerance = 1.0

// RepairNeighbourEdge builds a route for a connection that bridges a
// subset-mode relayout (one endpoint moved, the other didn't): a same-row
// straight line, a forward Z-shape, or a backward U-shape looped around
// the flow's bounding box.
func RepairNeighbourEdge(src, tgt, flowBBox geometry.Rect) []geometry.Point {
	if math.Abs(src.CenterY()-tgt.CenterY()) <= rowTolerance {
		return geometry.DeduplicateWaypoints([]geometry.Point{
			{X: src.Right(), Y: src.CenterY()},
			{X: tgt.X, Y: tgt.CenterY()},
		}, 1)
	}

	if tgt.CenterX() >= src.CenterX() {
		return geometry.BuildZRoute(src.Right(), src.CenterY(), tgt.X, tgt.CenterY())
	}

	loopY := flowBBox.Bottom() + SelfLoopMarginV
	return geometry.DeduplicateWaypoints([]geometry.Point{
		{X: src.CenterX(), Y: src.Bottom()},
		{X: src.CenterX(), Y: loopY},
		{X: tgt.CenterX(), Y: loopY},
		{X: tgt.CenterX(), Y: tgt.Bottom()},
	}, 1)
}

// ApplyNeighbourRepair re-routes every connection that bridges the
// relaidOut set and the rest of the diagram: exactly one of its two
// endpoints must be in relaidOut for a connection to qualify. flowBBox
// bounds the U-shape's loop for backward edges.
func ApplyNeighbourRepair(registry *model.Registry, m *modeler.Modeler, relaidOut map[string]bool, flowBBox geometry.Rect) error {
	for _, c := range registry.AllConnections() {
		if relaidOut[c.SourceID] == relaidOut[c.TargetID] {
			continue // both inside or both outside the relaid-out set
		}
		src, okSrc := registry.Get(c.SourceID)
		tgt, okTgt := registry.Get(c.TargetID)
		if !okSrc || !okTgt {
			continue
		}
		wps := RepairNeighbourEdge(src.Bounds, tgt.Bounds, flowBBox)
		if err := m.UpdateWaypoints(c.ID, wps); err != nil {
			return err
		}
		c.SetOriginalStart(wps[0])
		c.SetOriginalEnd(wps[len(wps)-1])
	}
	return nil
}
