package rengine

import (
	"sort"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// PoolGap is the default vertical spacing between stacked participants.
const PoolGap = 68.0

// StackParticipants arranges every top-level Participant vertically with
// gap between consecutive pools, preserving each pool's original relative
// order (by original y) and moving every descendant of a pool along with
// it so lane/flow-node layouts already computed inside the pool survive
// intact.
func StackParticipants(registry *model.Registry, m *modeler.Modeler, gap float64) error {
	pools := registry.Filter(func(e *model.Element) bool {
		return e.Kind == model.KindParticipant && (e.ParentID == model.RootID || e.ParentID == "")
	})
	sort.Slice(pools, func(i, j int) bool { return pools[i].Bounds.Y < pools[j].Bounds.Y })

	y := 0.0
	if len(pools) > 0 {
		y = pools[0].Bounds.Y
	}

	for _, pool := range pools {
		delta := geometry.Point{X: 0, Y: y - pool.Bounds.Y}
		if delta.Y != 0 {
			if err := moveSubtree(registry, m, pool.ID, delta); err != nil {
				return err
			}
		}
		y += pool.Bounds.Height + gap
	}
	return nil
}

// moveSubtree moves rootID and every element transitively owned by it
// (matched via ParentID) by delta, in one MoveElements batch. Boundary
// events are excluded — MoveElements rejects them outright, and their
// position is recomputed from their host after the host settles.
func moveSubtree(registry *model.Registry, m *modeler.Modeler, rootID string, delta geometry.Point) error {
	ids := []string{rootID}
	frontier := []string{rootID}
	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]
		for _, child := range registry.Children(next) {
			if child.Kind == model.KindBoundaryEvent {
				continue
			}
			ids = append(ids, child.ID)
			frontier = append(frontier, child.ID)
		}
	}
	return m.MoveElements(ids, delta)
}

// RelayoutMessageFlows re-routes every MessageFlow connection with the
// default orthogonal router, run after pool stacking so cross-pool flows
// reflect each pool's final position.
func RelayoutMessageFlows(registry *model.Registry, m *modeler.Modeler) error {
	for _, c := range registry.AllConnections() {
		if c.Kind != model.MessageFlow {
			continue
		}
		if err := m.LayoutConnection(c.ID); err != nil {
			return err
		}
	}
	return nil
}
