package rengine

import (
	"sort"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/modeler"
	"github.com/katalvlaran/bpmnlayout/topology"
)

// ApplyPositions writes positions to the registry through m, skipping any id
// in opts.PinnedIDs — a pinned element is never moved.
//
// Complexity: O(len(positions)).
func ApplyPositions(m *modeler.Modeler, positions map[string]Position, opts Options) error {
	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if opts.PinnedIDs[id] {
			continue
		}
		e, ok := m.Registry.Get(id)
		if !ok {
			continue
		}
		target := positions[id]
		delta := geometry.Point{
			X: target.X - e.Bounds.CenterX(),
			Y: target.Y - e.Bounds.CenterY(),
		}
		if delta.X == 0 && delta.Y == 0 {
			continue
		}
		if err := m.MoveElements([]string{id}, delta); err != nil {
			return err
		}
	}
	return nil
}

// RelayoutConnections re-routes every sequence flow connection inside
// graph's scope, forward connections first and back-edge connections
// second. Connections whose endpoints were never assigned a position
// (e.g. excluded ids) are routed anyway — LayoutConnection only needs the
// current, possibly-unmoved, bounds of both endpoints.
func RelayoutConnections(m *modeler.Modeler, graph *topology.FlowGraph, backEdgeIDs map[string]bool) error {
	seen := make(map[string]bool)
	var forward, back []string

	ids := make([]string, 0, len(graph.Nodes))
	for id := range graph.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, c := range graph.Nodes[id].Outgoing {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			if backEdgeIDs[c.ID] {
				back = append(back, c.ID)
			} else {
				forward = append(forward, c.ID)
			}
		}
	}

	for _, id := range forward {
		if err := m.LayoutConnection(id); err != nil {
			return err
		}
	}
	for _, id := range back {
		if err := m.LayoutConnection(id); err != nil {
			return err
		}
	}
	return nil
}
