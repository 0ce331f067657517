package egraph

import (
	"github.com/katalvlaran/bpmnlayout/container"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/solver"
)

// BuildContainerGraph returns the solver.ElkNode tree rooted at containerID:
// direct shape children excluding infrastructure, connections,
// artifacts, lanes and boundary events; compound children recurse with
// their container-kind padding; edges cover sequence/message/association
// connections scoped to the current children set, plus boundary
// proxy-edges for any boundary event hosted inside it.
func BuildContainerGraph(registry *model.Registry, containerID string) *solver.ElkNode {
	children := layoutableChildren(registry, containerID)

	ids := make(map[string]bool, len(children))
	for _, c := range children {
		ids[c.ID] = true
	}

	node := &solver.ElkNode{ID: containerID}
	for _, c := range children {
		node.Children = append(node.Children, buildChildNode(registry, c))
	}
	node.Edges = append(buildScopedEdges(registry, ids), buildBoundaryProxyEdges(registry, ids)...)

	return node
}

// layoutableChildren returns containerID's direct shape children:
// infrastructure, artifacts, lanes and boundary events never become
// solver nodes.
func layoutableChildren(registry *model.Registry, containerID string) []*model.Element {
	return registry.Filter(func(e *model.Element) bool {
		if e.ParentID != containerID {
			return false
		}
		switch e.Kind {
		case model.KindInfrastructure, model.KindArtifact, model.KindLane, model.KindBoundaryEvent:
			return false
		default:
			return true
		}
	})
}

// buildChildNode builds one child's ElkNode: a leaf carries its own
// width/height as a fixed request; a compound container recurses and is
// left to the solver to size.
func buildChildNode(registry *model.Registry, e *model.Element) *solver.ElkNode {
	compound, padding := classify(registry, e)
	if !compound {
		return &solver.ElkNode{ID: e.ID, Width: e.Bounds.Width, Height: e.Bounds.Height}
	}

	sub := BuildContainerGraph(registry, e.ID)
	sub.Options = solver.NewLayoutOptions(solver.WithSpacing("elk.padding", padding))
	return sub
}

// classify reports whether e recurses as a compound container and, if so,
// which padding variant applies: a Participant with lanes, a plain
// Participant, an event sub-process, or a plain expanded sub-process. An
// element with no layoutable descendants is never compound, even if its
// kind otherwise qualifies — an empty pool or sub-process is sized like any
// other leaf.
func classify(registry *model.Registry, e *model.Element) (compound bool, padding float64) {
	switch {
	case e.Kind == model.KindParticipant:
		if len(layoutableChildren(registry, e.ID)) == 0 {
			return false, 0
		}
		if len(e.Participant.LaneIDs) > 0 {
			return true, PaddingParticipantWithLane
		}
		return true, PaddingParticipant

	case e.Kind == model.KindFlowNode && e.FlowNode != nil && e.FlowNode.Sub == model.NodeSubProcessExpanded:
		if len(layoutableChildren(registry, e.ID)) == 0 {
			return false, 0
		}
		if _, isEventSub := e.Extensions[container.EventSubprocessKey]; isEventSub {
			return true, PaddingEventSubProcess
		}
		return true, PaddingPlain

	default:
		return false, 0
	}
}

// buildScopedEdges returns every sequence/message/association connection
// whose source and target are both in ids.
func buildScopedEdges(registry *model.Registry, ids map[string]bool) []*solver.ElkEdge {
	var edges []*solver.ElkEdge
	for _, c := range registry.AllConnections() {
		switch c.Kind {
		case model.SequenceFlow, model.MessageFlow, model.Association:
		default:
			continue
		}
		if !ids[c.SourceID] || !ids[c.TargetID] {
			continue
		}
		edges = append(edges, &solver.ElkEdge{ID: c.ID, Sources: []string{c.SourceID}, Targets: []string{c.TargetID}})
	}
	return edges
}

// buildBoundaryProxyEdges returns one synthetic edge per outgoing flow of
// every boundary event whose host is in ids, from the host to the flow's
// real target, so the solver positions the target relative to the host
// without the boundary event needing to be a node itself.
func buildBoundaryProxyEdges(registry *model.Registry, ids map[string]bool) []*solver.ElkEdge {
	var edges []*solver.ElkEdge
	for _, be := range registry.Filter(func(e *model.Element) bool { return e.Kind == model.KindBoundaryEvent }) {
		if be.Boundary == nil || !ids[be.Boundary.HostID] {
			continue
		}
		for _, c := range registry.Outgoing(be.ID) {
			edges = append(edges, &solver.ElkEdge{
				ID:      ProxyEdgeIDPrefix + c.ID,
				Sources: []string{be.Boundary.HostID},
				Targets: []string{c.TargetID},
			})
		}
	}
	return edges
}
