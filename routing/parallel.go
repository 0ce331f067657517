package routing

import (
	"sort"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// SpaceParallelMessageFlows groups the dog-leg-routed message flows in ids
// by source-centre x proximity and, for every group of 2 or
// more, rewrites each flow's horizontal mid-segment so the group's
// crossings are evenly offset by ParallelSpacingStep around their mean.
// Flows that are not already a 4-waypoint dog-leg (CrossPoolDogLeg's shape)
// are left untouched.
func SpaceParallelMessageFlows(registry *model.Registry, m *modeler.Modeler, ids []string) error {
	type flow struct {
		id    string
		srcCX float64
	}

	var flows []flow
	for _, id := range ids {
		c, ok := registry.GetConnection(id)
		if !ok || c.Kind != model.MessageFlow || len(c.Waypoints) != 4 {
			continue
		}
		src, okSrc := registry.Get(c.SourceID)
		if !okSrc {
			continue
		}
		flows = append(flows, flow{id: id, srcCX: src.Bounds.CenterX()})
	}
	if len(flows) < 2 {
		return nil
	}

	sort.Slice(flows, func(i, j int) bool { return flows[i].srcCX < flows[j].srcCX })

	groups := make([][]flow, 0)
	current := []flow{flows[0]}
	for _, f := range flows[1:] {
		if f.srcCX-current[len(current)-1].srcCX <= ParallelGroupThreshold {
			current = append(current, f)
			continue
		}
		groups = append(groups, current)
		current = []flow{f}
	}
	groups = append(groups, current)

	for _, g := range groups {
		if len(g) < 2 {
			continue
		}
		var meanY float64
		for _, f := range g {
			c, _ := registry.GetConnection(f.id)
			meanY += c.Waypoints[1].Y
		}
		meanY /= float64(len(g))

		mid := float64(len(g)-1) / 2
		for i, f := range g {
			c, _ := registry.GetConnection(f.id)
			newY := meanY + (float64(i)-mid)*ParallelSpacingStep
			updated := make([]geometry.Point, len(c.Waypoints))
			copy(updated, c.Waypoints)
			updated[1].Y = newY
			updated[2].Y = newY
			if err := m.UpdateWaypoints(f.id, updated); err != nil {
				return err
			}
			c.SetOriginalStart(updated[0])
			c.SetOriginalEnd(updated[len(updated)-1])
		}
	}
	return nil
}
