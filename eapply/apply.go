package eapply

import (
	"math"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
	"github.com/katalvlaran/bpmnlayout/solver"
)

// ApplyResult walks root's children recursively, writing each node's
// solver-computed position (and, past the resize threshold, size) back
// through m. root itself is never written — it stands for the container
// the tree was built from, per egraph.BuildContainerGraph's own contract.
func ApplyResult(registry *model.Registry, m *modeler.Modeler, root *solver.ElkNode, thresholds Thresholds) error {
	return applyChildren(registry, m, root, 0, 0, thresholds)
}

func applyChildren(registry *model.Registry, m *modeler.Modeler, node *solver.ElkNode, offsetX, offsetY float64, thresholds Thresholds) error {
	for _, child := range node.Children {
		absX := offsetX + child.X
		absY := offsetY + child.Y

		if err := applyNodeGeometry(registry, m, child, absX, absY, thresholds); err != nil {
			return err
		}
		if len(child.Children) > 0 {
			if err := applyChildren(registry, m, child, absX, absY, thresholds); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyNodeGeometry(registry *model.Registry, m *modeler.Modeler, node *solver.ElkNode, absX, absY float64, thresholds Thresholds) error {
	elem, ok := registry.Get(node.ID)
	if !ok {
		return nil
	}

	current := elem.Bounds
	moved := math.Abs(current.X-absX) >= thresholds.Move || math.Abs(current.Y-absY) >= thresholds.Move
	resized := node.Width > 0 && node.Height > 0 &&
		(math.Abs(current.Width-node.Width) >= thresholds.Resize || math.Abs(current.Height-node.Height) >= thresholds.Resize)

	if !moved && !resized {
		return nil
	}

	newBounds := current
	if moved {
		newBounds.X, newBounds.Y = absX, absY
	}
	if resized {
		newBounds.Width, newBounds.Height = node.Width, node.Height
	}
	return m.ResizeShape(node.ID, newBounds)
}

// AccumulatedOffset returns the absolute parent-relative offset of nodeID
// inside root, or (0, 0, false) if nodeID is not reachable from root. Used
// by routing when it needs a node's absolute position outside the
// registry, e.g. before ApplyResult has run for a later sibling.
func AccumulatedOffset(root *solver.ElkNode, nodeID string) (geometry.Point, bool) {
	return accumulate(root, nodeID, geometry.Point{})
}

func accumulate(node *solver.ElkNode, nodeID string, offset geometry.Point) (geometry.Point, bool) {
	for _, child := range node.Children {
		abs := geometry.Point{X: offset.X + child.X, Y: offset.Y + child.Y}
		if child.ID == nodeID {
			return abs, true
		}
		if found, ok := accumulate(child, nodeID, abs); ok {
			return found, true
		}
	}
	return geometry.Point{}, false
}
