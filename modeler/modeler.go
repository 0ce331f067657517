package modeler

import (
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
)

// Modeler is the single writer for a model.Registry's geometry. It is a
// thin, explicit context object rather than a package-level singleton —
// construct one per registry and thread it through the pipeline.
type Modeler struct {
	Registry *model.Registry
}

// New returns a Modeler writing through registry.
func New(registry *model.Registry) *Modeler {
	return &Modeler{Registry: registry}
}

func (m *Modeler) syncDI(e *model.Element) {
	e.DIBounds = e.Bounds
}

// checkParentContainment enforces that a shape's bounding box lies wholly
// within its parent's, when the parent is a Participant or
// an expanded SubProcess. Any other parent kind (Process, canvas root,
// collapsed SubProcess) imposes no containment constraint.
func (m *Modeler) checkParentContainment(e *model.Element, bounds geometry.Rect) error {
	if e.ParentID == "" || e.ParentID == model.RootID {
		return nil
	}
	parent, ok := m.Registry.Get(e.ParentID)
	if !ok {
		return nil
	}
	constrains := parent.Kind == model.KindParticipant ||
		(parent.Kind == model.KindFlowNode && parent.FlowNode != nil && parent.FlowNode.Sub == model.NodeSubProcessExpanded)
	if !constrains {
		return nil
	}
	if bounds.X < parent.Bounds.X || bounds.Y < parent.Bounds.Y ||
		bounds.Right() > parent.Bounds.Right() || bounds.Bottom() > parent.Bounds.Bottom() {
		return ErrParentBoundsViolation
	}
	return nil
}

// MoveElements translates every named element by delta, synchronizing DI
// bounds. Boundary events are rejected with ErrBoundaryEventMove — move them
// through MutateBoundaryBounds instead.
//
// Complexity: O(len(ids)).
func (m *Modeler) MoveElements(ids []string, delta geometry.Point) error {
	// Validate before mutating anything, so a rejected batch leaves no
	// element half-moved.
	elems := make([]*model.Element, 0, len(ids))
	for _, id := range ids {
		e, ok := m.Registry.Get(id)
		if !ok {
			return ErrElementNotFound
		}
		if e.Kind == model.KindBoundaryEvent {
			return ErrBoundaryEventMove
		}
		elems = append(elems, e)
	}

	for _, e := range elems {
		e.Bounds.X += delta.X
		e.Bounds.Y += delta.Y
		m.syncDI(e)
	}
	return nil
}

// ResizeShape replaces shape's bounds with newBounds, synchronizing DI
// bounds. Returns ErrParentBoundsViolation if the new bounds would escape a
// Participant or expanded-SubProcess parent.
func (m *Modeler) ResizeShape(shapeID string, newBounds geometry.Rect) error {
	e, ok := m.Registry.Get(shapeID)
	if !ok {
		return ErrElementNotFound
	}
	if err := m.checkParentContainment(e, newBounds); err != nil {
		return err
	}
	e.Bounds = newBounds
	m.syncDI(e)
	return nil
}

// UpdateWaypoints replaces connectionID's waypoint polyline with wps.
func (m *Modeler) UpdateWaypoints(connectionID string, wps []geometry.Point) error {
	c, ok := m.Registry.GetConnection(connectionID)
	if !ok {
		return ErrConnectionNotFound
	}
	c.Waypoints = geometry.CloneWaypoints(wps)
	return nil
}

// MutateBoundaryBounds directly sets a boundary event's bounds, bypassing
// the MoveElements invariant check that would otherwise reject it. It still
// synchronizes DI bounds, it just skips the generic-attach-behaviour path
// that would detach the event from its host.
func (m *Modeler) MutateBoundaryBounds(boundaryID string, newBounds geometry.Rect) error {
	e, ok := m.Registry.Get(boundaryID)
	if !ok {
		return ErrElementNotFound
	}
	e.Bounds = newBounds
	m.syncDI(e)
	return nil
}

// LayoutConnection re-routes connectionID with the default router. When the
// source's right edge lies at or left of the target's left edge, the route is
// geometry.BuildZRoute from the source's right-edge midpoint to the target's
// left-edge midpoint, which is orthogonal. Otherwise each endpoint is cropped
// to its shape's boundary along the line toward the other shape's centre and
// the two are joined by one straight segment, which is diagonal unless the
// two centres share an x or a y.
func (m *Modeler) LayoutConnection(connectionID string) error {
	c, ok := m.Registry.GetConnection(connectionID)
	if !ok {
		return ErrConnectionNotFound
	}
	src, okSrc := m.Registry.Get(c.SourceID)
	tgt, okTgt := m.Registry.Get(c.TargetID)
	if !okSrc || !okTgt {
		return ErrElementNotFound
	}

	start := cropToBoundary(src.Bounds, tgt.Bounds.Center())
	end := cropToBoundary(tgt.Bounds, src.Bounds.Center())

	var wps []geometry.Point
	if src.Bounds.Right() <= tgt.Bounds.X {
		// Common case for a left-to-right flow: route via the Z builder
		// using the shapes' right/left edges directly, which yields a
		// cleaner orthogonal shape than cropping toward the raw centres.
		wps = geometry.BuildZRoute(src.Bounds.Right(), src.Bounds.CenterY(), tgt.Bounds.X, tgt.Bounds.CenterY())
	} else {
		wps = []geometry.Point{start, end}
	}
	wps = geometry.DeduplicateWaypoints(wps, 1)
	if len(wps) < 2 {
		wps = []geometry.Point{start, end}
	}

	c.Waypoints = wps
	c.SetOriginalStart(wps[0])
	c.SetOriginalEnd(wps[len(wps)-1])
	return nil
}

// cropToBoundary returns the point on rect's boundary where a straight line
// from rect's centre toward target would exit the rectangle.
func cropToBoundary(rect geometry.Rect, target geometry.Point) geometry.Point {
	cx, cy := rect.CenterX(), rect.CenterY()
	dx, dy := target.X-cx, target.Y-cy
	if dx == 0 && dy == 0 {
		return geometry.Point{X: cx, Y: cy}
	}

	halfW, halfH := rect.Width/2, rect.Height/2
	// Scale factor to reach the rectangle's boundary along (dx, dy): the
	// smaller of the two per-axis scale factors hits the boundary first.
	var scale float64
	switch {
	case dx == 0:
		scale = halfH / absf(dy)
	case dy == 0:
		scale = halfW / absf(dx)
	default:
		sx := halfW / absf(dx)
		sy := halfH / absf(dy)
		if sx < sy {
			scale = sx
		} else {
			scale = sy
		}
	}
	return geometry.Point{X: cx + dx*scale, Y: cy + dy*scale}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
