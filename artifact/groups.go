package artifact

import (
	"math"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// LayoutGroups resizes or clamps Group artifacts last, after every other
// artifact has been placed. A bpmn:Group is not an "icon" artifact: if
// it has layoutable descendants — direct container children, or any element
// sharing its CategoryValueRef — it resizes to wrap them with padding.
// Otherwise it clamps into flowBBox, centred on the flow bounding box's
// centre, so an empty category marker never drifts off the visible canvas.
func LayoutGroups(registry *model.Registry, m *modeler.Modeler, opts Options, flowBBox geometry.Rect) error {
	groups := registry.Filter(func(e *model.Element) bool {
		return e.Kind == model.KindArtifact && e.Artifact != nil && e.Artifact.Sub == model.Group
	})

	for _, g := range groups {
		members := groupMembers(registry, g)
		if len(members) > 0 {
			bbox := unionBounds(members)
			bbox = bbox.Expand(opts.GroupPadding)
			if err := m.ResizeShape(g.ID, bbox); err != nil {
				return err
			}
			continue
		}

		clamped := clampIntoFlowBounds(g.Bounds, flowBBox)
		if err := m.ResizeShape(g.ID, clamped); err != nil {
			return err
		}
	}
	return nil
}

// groupMembers returns g's layoutable descendants: direct container
// children plus any element (other than g itself) sharing its
// CategoryValueRef.
func groupMembers(registry *model.Registry, g *model.Element) []*model.Element {
	seen := make(map[string]bool)
	var out []*model.Element

	for _, child := range registry.Children(g.ID) {
		if !seen[child.ID] {
			seen[child.ID] = true
			out = append(out, child)
		}
	}

	if g.Artifact.CategoryValueRef != "" {
		for _, e := range registry.GetAll() {
			if e.ID == g.ID || seen[e.ID] {
				continue
			}
			if e.Artifact != nil && e.Artifact.CategoryValueRef == g.Artifact.CategoryValueRef {
				seen[e.ID] = true
				out = append(out, e)
			}
		}
	}
	return out
}

func unionBounds(elems []*model.Element) geometry.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range elems {
		if e.Bounds.X < minX {
			minX = e.Bounds.X
		}
		if e.Bounds.Y < minY {
			minY = e.Bounds.Y
		}
		if e.Bounds.Right() > maxX {
			maxX = e.Bounds.Right()
		}
		if e.Bounds.Bottom() > maxY {
			maxY = e.Bounds.Bottom()
		}
	}
	return geometry.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// clampIntoFlowBounds centres r on flowBBox's centre if r would otherwise
// extend outside it, preserving r's own width/height.
func clampIntoFlowBounds(r, flowBBox geometry.Rect) geometry.Rect {
	if r.X >= flowBBox.X && r.Y >= flowBBox.Y && r.Right() <= flowBBox.Right() && r.Bottom() <= flowBBox.Bottom() {
		return r
	}
	return geometry.Rect{
		X:      flowBBox.CenterX() - r.Width/2,
		Y:      flowBBox.CenterY() - r.Height/2,
		Width:  r.Width,
		Height: r.Height,
	}
}
