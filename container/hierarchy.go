package container

import (
	"sort"

	"github.com/katalvlaran/bpmnlayout/model"
)

// EventSubprocessKey is the model.Element.Extensions key used to flag an
// expanded sub-process as an event sub-process (a BPMN-XML attribute rare
// enough that it lives in the extensions bag rather than a dedicated
// model.FlowNodeData field).
const EventSubprocessKey = "eventSubprocess"

// Node is one container in the Process/Participant/expanded-SubProcess
// ownership tree.
type Node struct {
	ID                string
	Element           *model.Element // nil for the synthetic canvas root
	Children          []*Node
	FlowNodeIDs       []string // direct flow nodes assigned to this container
	IsEventSubprocess bool
}

// isContainer reports whether e is a Participant or an expanded SubProcess.
// The canvas root is always a container and is handled separately.
func isContainer(e *model.Element) bool {
	if e.Kind == model.KindParticipant {
		return true
	}
	return e.Kind == model.KindFlowNode && e.FlowNode != nil && e.FlowNode.Sub == model.NodeSubProcessExpanded
}

// nearestContainerAncestor walks e's ParentID chain until it finds an id
// that is itself a discovered container, returning model.RootID if none is
// found before the canvas root.
func nearestContainerAncestor(registry *model.Registry, containers map[string]*Node, e *model.Element) string {
	id := e.ParentID
	for id != "" && id != model.RootID {
		if _, ok := containers[id]; ok {
			return id
		}
		parent, ok := registry.Get(id)
		if !ok {
			break
		}
		id = parent.ParentID
	}
	return model.RootID
}

// Build discovers the container tree for registry: the canvas root plus
// every Participant and expanded SubProcess, with direct flow nodes bucketed
// under their nearest container ancestor. Children are sorted so regular
// sub-processes precede event sub-processes, breaking ties by original y.
//
// Complexity: O(V) in the number of elements.
func Build(registry *model.Registry) *Node {
	containers := make(map[string]*Node)
	root := &Node{ID: model.RootID}
	containers[model.RootID] = root

	for _, e := range registry.GetAll() {
		if !isContainer(e) {
			continue
		}
		node := &Node{ID: e.ID, Element: e}
		if e.Kind == model.KindFlowNode {
			_, node.IsEventSubprocess = e.Extensions[EventSubprocessKey]
		}
		containers[e.ID] = node
	}

	// Wire parent-child edges among containers.
	for id, node := range containers {
		if id == model.RootID {
			continue
		}
		parentID := nearestContainerAncestor(registry, containers, node.Element)
		containers[parentID].Children = append(containers[parentID].Children, node)
	}

	// Bucket direct flow nodes under their nearest container ancestor.
	for _, e := range registry.GetAll() {
		if !e.IsFlowNode() {
			continue
		}
		parentID := nearestContainerAncestor(registry, containers, e)
		containers[parentID].FlowNodeIDs = append(containers[parentID].FlowNodeIDs, e.ID)
	}

	for _, node := range containers {
		sortChildren(node)
		sort.Strings(node.FlowNodeIDs)
	}

	return root
}

func sortChildren(node *Node) {
	sort.Slice(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.IsEventSubprocess != b.IsEventSubprocess {
			return !a.IsEventSubprocess
		}
		ay, by := originalY(a), originalY(b)
		if ay != by {
			return ay < by
		}
		return a.ID < b.ID
	})
}

func originalY(n *Node) float64 {
	if n.Element == nil {
		return 0
	}
	return n.Element.Bounds.Y
}

// RebuildOrder returns the post-order traversal of root: every descendant
// container id appears before its parent, so a parent's size can always be
// finalized once its children are done. The synthetic canvas root is
// included last.
func RebuildOrder(root *Node) []string {
	var order []string
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			walk(c)
		}
		order = append(order, n.ID)
	}
	walk(root)
	return order
}
