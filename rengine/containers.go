package rengine

import (
	"math"

	"github.com/katalvlaran/bpmnlayout/container"
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// SubprocessPadding is the default expanded-subprocess bounding-box padding.
const SubprocessPadding = 40.0

// ResizeExpandedSubprocesses walks root in post order (container.RebuildOrder)
// and resizes every expanded SubProcess to the bounding box of its direct
// flow-node children and nested container children, expanded by padding on
// every side. Participants are left untouched — pool sizing is owned by
// the lane-layout pass.
func ResizeExpandedSubprocesses(registry *model.Registry, m *modeler.Modeler, root *container.Node, padding float64) error {
	nodesByID := make(map[string]*container.Node)
	var collect func(n *container.Node)
	collect = func(n *container.Node) {
		nodesByID[n.ID] = n
		for _, c := range n.Children {
			collect(c)
		}
	}
	collect(root)

	for _, id := range container.RebuildOrder(root) {
		if id == model.RootID {
			continue
		}
		node := nodesByID[id]
		e, ok := registry.Get(id)
		if !ok || e.Kind != model.KindFlowNode || e.FlowNode == nil || e.FlowNode.Sub != model.NodeSubProcessExpanded {
			continue
		}

		bbox, ok := childBBox(registry, node)
		if !ok {
			continue
		}
		bbox = bbox.Expand(padding)
		if err := m.ResizeShape(id, bbox); err != nil {
			return err
		}
	}
	return nil
}

// childBBox unions the bounds of node's direct flow nodes and nested
// container children. Returns ok=false if node has no children at all.
func childBBox(registry *model.Registry, node *container.Node) (geometry.Rect, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false

	grow := func(b geometry.Rect) {
		found = true
		if b.X < minX {
			minX = b.X
		}
		if b.Y < minY {
			minY = b.Y
		}
		if b.Right() > maxX {
			maxX = b.Right()
		}
		if b.Bottom() > maxY {
			maxY = b.Bottom()
		}
	}

	for _, id := range node.FlowNodeIDs {
		if e, ok := registry.Get(id); ok {
			grow(e.Bounds)
		}
	}
	for _, child := range node.Children {
		if e, ok := registry.Get(child.ID); ok {
			grow(e.Bounds)
		}
	}

	if !found {
		return geometry.Rect{}, false
	}
	return geometry.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}
