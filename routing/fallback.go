package routing

import (
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// BoundaryOutflowRoute builds an L-shaped route for a connection leaving a
// boundary event: vertical from the event's bottom (or top) edge down (or
// up) to the target's centre row, then horizontal into the target's entry
// edge.
func BoundaryOutflowRoute(eventBounds, targetBounds geometry.Rect) []geometry.Point {
	exitY := eventBounds.Bottom()
	if targetBounds.CenterY() < eventBounds.CenterY() {
		exitY = eventBounds.Y
	}
	entryX := targetBounds.X
	if targetBounds.CenterX() < eventBounds.CenterX() {
		entryX = targetBounds.Right()
	}
	start := geometry.Point{X: eventBounds.CenterX(), Y: exitY}
	corner := geometry.Point{X: eventBounds.CenterX(), Y: targetBounds.CenterY()}
	end := geometry.Point{X: entryX, Y: targetBounds.CenterY()}
	return geometry.DeduplicateWaypoints([]geometry.Point{start, corner, end}, 1)
}

// CrossPoolDogLeg builds the 4-waypoint vertical-horizontal-vertical route
// for a message flow between elements in different lanes/pools: exit the
// source's bottom (or top), run horizontal at the midline between the two
// rows, then drop into the target's top (or bottom).
func CrossPoolDogLeg(src, tgt geometry.Rect) []geometry.Point {
	down := tgt.CenterY() > src.CenterY()
	srcY := src.Bottom()
	tgtY := tgt.Y
	if !down {
		srcY = src.Y
		tgtY = tgt.Bottom()
	}
	midY := srcY + (tgtY-srcY)/2
	return []geometry.Point{
		{X: src.CenterX(), Y: srcY},
		{X: src.CenterX(), Y: midY},
		{X: tgt.CenterX(), Y: midY},
		{X: tgt.CenterX(), Y: tgtY},
	}
}

// overlappingYRange reports whether two rects' vertical extents overlap,
// the condition under which a message flow should use the default
// orthogonal router instead of the cross-pool dog-leg.
func overlappingYRange(a, b geometry.Rect) bool {
	return a.Y < b.Bottom() && b.Y < a.Bottom()
}

// RouteFallback picks the right fallback shape for a connection the
// solver did not route: an L-shape off a boundary event, a dog-leg for a
// cross-pool message flow, or nil to defer to the default orthogonal
// router (overlapping-Y-range message flows, and anything else).
func RouteFallback(registry *model.Registry, c *model.Connection) []geometry.Point {
	src, okSrc := registry.Get(c.SourceID)
	tgt, okTgt := registry.Get(c.TargetID)
	if !okSrc || !okTgt {
		return nil
	}

	if src.Kind == model.KindBoundaryEvent {
		return BoundaryOutflowRoute(src.Bounds, tgt.Bounds)
	}

	if c.Kind == model.MessageFlow && !overlappingYRange(src.Bounds, tgt.Bounds) {
		return CrossPoolDogLeg(src.Bounds, tgt.Bounds)
	}

	return nil
}

// ApplyFallbackRoutes runs RouteFallback over every connection in ids that
// still lacks a routed polyline (fewer than 2 waypoints), writing any
// result through m.
func ApplyFallbackRoutes(registry *model.Registry, m *modeler.Modeler, ids []string) error {
	for _, id := range ids {
		c, ok := registry.GetConnection(id)
		if !ok || len(c.Waypoints) >= 2 {
			continue
		}
		wps := RouteFallback(registry, c)
		if wps == nil {
			continue
		}
		if err := m.UpdateWaypoints(id, wps); err != nil {
			return err
		}
		c.SetOriginalStart(wps[0])
		c.SetOriginalEnd(wps[len(wps)-1])
	}
	return nil
}
