package artifact

import (
	"math"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// Run places artifacts in order: linked-group spread, unlinked-row
// placement, then Group resize/clamp — each against the current flow-node
// bounding box, computed once up front since artifact placement never
// moves a flow node.
func Run(registry *model.Registry, m *modeler.Modeler, opts Options) error {
	flowBBox := flowBoundingBox(registry)

	if err := PlaceLinkedGroups(registry, m, opts, flowBBox.Right()); err != nil {
		return err
	}
	if err := PlaceUnlinkedArtifacts(registry, m, opts, flowBBox); err != nil {
		return err
	}
	return LayoutGroups(registry, m, opts, flowBBox)
}

// flowBoundingBox unions the bounds of every flow node in the registry.
// Returns a zero Rect if there are none.
func flowBoundingBox(registry *model.Registry) geometry.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false

	for _, e := range registry.Filter(func(e *model.Element) bool { return e.IsFlowNode() }) {
		found = true
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
	if !found {
		return geometry.Rect{}
	}
	return geometry.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
