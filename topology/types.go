package topology

import "github.com/katalvlaran/bpmnlayout/model"

// NodeRecord is one flow node's position in a FlowGraph: the element itself
// plus its incoming/outgoing connections, both as full records and as bare
// ids for cheap membership tests.
type NodeRecord struct {
	Element          *model.Element
	Incoming         []*model.Connection
	Outgoing         []*model.Connection
	IncomingFlowIDs  []string
	OutgoingFlowIDs  []string
}

// FlowGraph is the derived, per-container mapping from flow-node id to its
// NodeRecord, plus the ordered start/end node id lists.
type FlowGraph struct {
	Nodes    map[string]*NodeRecord
	StartIDs []string
	EndIDs   []string
}

// GatewayPattern describes one detected split (and, for a closed fan, its
// merge) plus the ordered per-branch element id sequences.
type GatewayPattern struct {
	SplitID string
	MergeID string // "" for an open fan (no common reconvergence point)
	// Branches[i] is the ordered sequence of element ids exclusively
	// belonging to branch i, in the order the split's outgoing flows are
	// sorted (by target original y ascending).
	Branches [][]string
}

// Closed reports whether p has a detected merge gateway.
func (p GatewayPattern) Closed() bool { return p.MergeID != "" }
