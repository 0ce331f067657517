package layout

import (
	"math"

	"github.com/katalvlaran/bpmnlayout/container"
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/lane"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// findContainerNode locates id within root's subtree, or nil if absent.
func findContainerNode(root *container.Node, id string) *container.Node {
	if root.ID == id {
		return root
	}
	for _, c := range root.Children {
		if found := findContainerNode(c, id); found != nil {
			return found
		}
	}
	return nil
}

// hasLanes reports whether any Participant in registry has one or more
// lanes, so the lane-layout step can be skipped entirely for diagrams
// without lanes.
func hasLanes(registry *model.Registry) bool {
	pools := registry.Filter(func(e *model.Element) bool {
		return e.Kind == model.KindParticipant && e.Participant != nil && len(e.Participant.LaneIDs) > 0
	})
	return len(pools) > 0
}

// layoutLanes bands every laned Participant in registry: orphan
// assignment, order optimisation per opts.LaneStrategy, then row or column
// tiling depending on opts.Direction.
func layoutLanes(registry *model.Registry, m *modeler.Modeler, opts Options) error {
	pools := registry.Filter(func(e *model.Element) bool {
		return e.Kind == model.KindParticipant && e.Participant != nil && len(e.Participant.LaneIDs) > 0
	})

	horizontal := opts.Direction.IsHorizontal()
	strategy := lane.OrderPreserve
	if opts.LaneStrategy == LaneStrategyOptimize {
		strategy = lane.OrderOptimize
	}

	for _, pool := range pools {
		lane.AssignOrphans(registry, pool.ID, horizontal)
		if err := lane.OptimizeOrder(registry, pool.ID, strategy); err != nil {
			return err
		}
		if horizontal {
			if err := lane.RowLayout(registry, m, pool.ID); err != nil {
				return err
			}
		} else {
			if err := lane.ColumnLayout(registry, m, pool.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// snapToGrid rounds every element's top-left and every connection's
// waypoints to the nearest multiple of quantum. A quantum <= 0 is a no-op,
// matching GridQuantum's "0 disables snapping" default.
func snapToGrid(registry *model.Registry, quantum float64) {
	if quantum <= 0 {
		return
	}
	for _, e := range registry.GetAll() {
		e.Bounds.X = snapValue(e.Bounds.X, quantum)
		e.Bounds.Y = snapValue(e.Bounds.Y, quantum)
		e.DIBounds = e.Bounds
	}
	for _, c := range registry.AllConnections() {
		for i := range c.Waypoints {
			c.Waypoints[i].X = snapValue(c.Waypoints[i].X, quantum)
			c.Waypoints[i].Y = snapValue(c.Waypoints[i].Y, quantum)
		}
	}
}

func snapValue(v, quantum float64) float64 {
	return math.Round(v/quantum) * quantum
}

// connectionEndpoints snapshots every connection's first/last waypoint, the
// cheapest signal that a connection's route changed without diffing the
// whole polyline.
func connectionEndpoints(registry *model.Registry) map[string][2]geometry.Point {
	conns := registry.AllConnections()
	out := make(map[string][2]geometry.Point, len(conns))
	for _, c := range conns {
		out[c.ID] = [2]geometry.Point{c.FirstWaypoint(), c.LastWaypoint()}
	}
	return out
}

// countReroutedConnections compares a connectionEndpoints snapshot against
// registry's current state and counts how many changed.
func countReroutedConnections(before map[string][2]geometry.Point, registry *model.Registry) int {
	count := 0
	for _, c := range registry.AllConnections() {
		prior, ok := before[c.ID]
		if !ok {
			count++ // a connection that didn't exist before was, in effect, newly routed
			continue
		}
		if prior != [2]geometry.Point{c.FirstWaypoint(), c.LastWaypoint()} {
			count++
		}
	}
	return count
}
