package routing

import (
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// SelfLoopRoute builds the explicit 5-waypoint rectangular route used
// for a connection whose source and target are the same shape: exit the
// right side at the upper quarter, loop right and down
// past the shape's own bounds, then re-enter at the bottom centre.
func SelfLoopRoute(bounds geometry.Rect) []geometry.Point {
	exitY := bounds.Y + bounds.Height/4
	loopX := bounds.Right() + SelfLoopMarginH
	loopY := bounds.Bottom() + SelfLoopMarginV
	return []geometry.Point{
		{X: bounds.Right(), Y: exitY},
		{X: loopX, Y: exitY},
		{X: loopX, Y: loopY},
		{X: bounds.CenterX(), Y: loopY},
		{X: bounds.CenterX(), Y: bounds.Bottom()},
	}
}

// ApplySelfLoopRoutes re-routes every connection in ids whose source and
// target are the same element as a self-loop.
func ApplySelfLoopRoutes(registry *model.Registry, m *modeler.Modeler, ids []string) error {
	for _, id := range ids {
		c, ok := registry.GetConnection(id)
		if !ok || c.SourceID != c.TargetID {
			continue
		}
		elem, okElem := registry.Get(c.SourceID)
		if !okElem {
			continue
		}
		wps := SelfLoopRoute(elem.Bounds)
		if err := m.UpdateWaypoints(id, wps); err != nil {
			return err
		}
		c.SetOriginalStart(wps[0])
		c.SetOriginalEnd(wps[len(wps)-1])
	}
	return nil
}
