package egraph

import "github.com/katalvlaran/bpmnlayout/solver"

// CollectEdges flattens every edge attached anywhere in root's tree
// (root.Edges plus every descendant's own Edges) into one slice, in the
// order the tree nests: outer-container edges before inner ones. Used by
// routing after the solver has filled in each edge's Sections, since
// BuildContainerGraph scopes edges per container rather than at the root.
func CollectEdges(root *solver.ElkNode) []*solver.ElkEdge {
	var edges []*solver.ElkEdge
	var walk func(n *solver.ElkNode)
	walk = func(n *solver.ElkNode) {
		edges = append(edges, n.Edges...)
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return edges
}
