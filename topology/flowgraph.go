package topology

import (
	"sort"

	"github.com/katalvlaran/bpmnlayout/model"
)

// ExtractFlowGraph builds the FlowGraph for the direct flow-node children of
// containerID (pass "" for the canvas root). Only sequence flows with both
// endpoints inside the resulting node set become edges — everything else
// (boundary events, connections crossing the container boundary, artifacts,
// lanes, labels, participants, infrastructure) is excluded from the node set.
//
// Complexity: O(V + E) in the container's local subgraph.
func ExtractFlowGraph(registry *model.Registry, containerID string) *FlowGraph {
	children := registry.Children(containerID)

	nodes := make(map[string]*NodeRecord, len(children))
	for _, e := range children {
		if !e.IsFlowNode() {
			continue
		}
		nodes[e.ID] = &NodeRecord{Element: e}
	}

	for _, c := range registry.AllConnections() {
		if c.Kind != model.SequenceFlow {
			continue
		}
		srcRec, srcOK := nodes[c.SourceID]
		tgtRec, tgtOK := nodes[c.TargetID]
		if !srcOK || !tgtOK {
			continue
		}
		srcRec.Outgoing = append(srcRec.Outgoing, c)
		srcRec.OutgoingFlowIDs = append(srcRec.OutgoingFlowIDs, c.ID)
		tgtRec.Incoming = append(tgtRec.Incoming, c)
		tgtRec.IncomingFlowIDs = append(tgtRec.IncomingFlowIDs, c.ID)
	}

	graph := &FlowGraph{Nodes: nodes}
	for id, rec := range nodes {
		if len(rec.Incoming) == 0 {
			graph.StartIDs = append(graph.StartIDs, id)
		}
		if len(rec.Outgoing) == 0 {
			graph.EndIDs = append(graph.EndIDs, id)
		}
	}

	sort.Slice(graph.StartIDs, func(i, j int) bool {
		return lessStart(nodes[graph.StartIDs[i]].Element, nodes[graph.StartIDs[j]].Element)
	})
	sort.Strings(graph.EndIDs)

	return graph
}

// lessStart orders start candidates with start-event kinds first, then by
// ascending original y.
func lessStart(a, b *model.Element) bool {
	aStart := a.Kind == model.KindFlowNode && a.FlowNode != nil && a.FlowNode.Sub.IsStartEvent()
	bStart := b.Kind == model.KindFlowNode && b.FlowNode != nil && b.FlowNode.Sub.IsStartEvent()
	if aStart != bStart {
		return aStart
	}
	if a.Bounds.Y != b.Bounds.Y {
		return a.Bounds.Y < b.Bounds.Y
	}
	return a.ID < b.ID
}
