package lane

import (
	"math"

	"github.com/katalvlaran/bpmnlayout/model"
)

// AssignOrphans assigns every flow node in poolID that is not already in
// any lane's flowNodeRef set to the nearest lane, by perpendicular-axis
// centre distance: row mode (horizontal direction) compares against each
// lane's own vertical extent on the pool's y axis; column mode compares
// against each lane's x axis. Mutates each assigned lane's FlowNodeRefs in
// place.
func AssignOrphans(registry *model.Registry, poolID string, horizontal bool) {
	pool, ok := registry.Get(poolID)
	if !ok || pool.Kind != model.KindParticipant {
		return
	}

	assigned := make(map[string]bool)
	lanes := make([]*model.Element, 0, len(pool.Participant.LaneIDs))
	for _, laneID := range pool.Participant.LaneIDs {
		lane, ok := registry.Get(laneID)
		if !ok || lane.Lane == nil {
			continue
		}
		lanes = append(lanes, lane)
		for id := range lane.Lane.FlowNodeRefs {
			assigned[id] = true
		}
	}
	if len(lanes) == 0 {
		return
	}

	poolChildren := registry.Children(poolID)
	for _, e := range poolChildren {
		if !e.IsFlowNode() || assigned[e.ID] {
			continue
		}

		best := lanes[0]
		bestDist := math.Inf(1)
		for _, lane := range lanes {
			var dist float64
			if horizontal {
				dist = math.Abs(e.Bounds.CenterY() - lane.Bounds.CenterY())
			} else {
				dist = math.Abs(e.Bounds.CenterX() - lane.Bounds.CenterX())
			}
			if dist < bestDist {
				bestDist = dist
				best = lane
			}
		}

		if best.Lane.FlowNodeRefs == nil {
			best.Lane.FlowNodeRefs = make(map[string]struct{})
		}
		best.Lane.FlowNodeRefs[e.ID] = struct{}{}
		assigned[e.ID] = true
	}
}
