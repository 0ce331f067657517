package topology

import "sort"

// reachableFrom returns the set of node ids reachable by forward
// (non-back-edge) traversal starting at (but excluding) startID, stopping
// the walk from re-entering stopID (the originating split, so a cyclic
// branch doesn't loop forever).
func reachableFrom(graph *FlowGraph, startID, stopID string, backEdgeIDs map[string]bool) map[string]bool {
	seen := map[string]bool{startID: true}
	queue := []string{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		rec := graph.Nodes[id]
		if rec == nil {
			continue
		}
		for _, out := range rec.Outgoing {
			if backEdgeIDs[out.ID] || out.TargetID == stopID {
				continue
			}
			if !seen[out.TargetID] {
				seen[out.TargetID] = true
				queue = append(queue, out.TargetID)
			}
		}
	}
	return seen
}

// bfsDepths returns each reachable node's shortest forward hop-distance
// from startID (0 for startID itself), bounded by the same stop-at-split
// rule as reachableFrom.
func bfsDepths(graph *FlowGraph, startID, stopID string, backEdgeIDs map[string]bool) map[string]int {
	depth := map[string]int{startID: 0}
	queue := []string{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		rec := graph.Nodes[id]
		if rec == nil {
			continue
		}
		for _, out := range rec.Outgoing {
			if backEdgeIDs[out.ID] || out.TargetID == stopID {
				continue
			}
			if _, ok := depth[out.TargetID]; !ok {
				depth[out.TargetID] = depth[id] + 1
				queue = append(queue, out.TargetID)
			}
		}
	}
	return depth
}

// forwardOutgoing returns rec's outgoing connections that are not back
// edges, sorted by target original y ascending (then target id) for a
// deterministic branch order.
func forwardOutgoing(graph *FlowGraph, rec *NodeRecord, backEdgeIDs map[string]bool) []string {
	targets := make([]string, 0, len(rec.Outgoing))
	for _, out := range rec.Outgoing {
		if !backEdgeIDs[out.ID] {
			targets = append(targets, out.TargetID)
		}
	}
	sort.Slice(targets, func(i, j int) bool {
		ei, ej := graph.Nodes[targets[i]].Element, graph.Nodes[targets[j]].Element
		if ei.Bounds.Y != ej.Bounds.Y {
			return ei.Bounds.Y < ej.Bounds.Y
		}
		return targets[i] < targets[j]
	})
	return targets
}

// DetectGatewayPatterns finds every gateway with >= 2 forward outgoing
// flows and traces each branch forward to find a common reconvergence
// point (the merge). When a merge exists (a closed fan), each branch's
// element list is the bounded breadth-first reachable set up to (excluding) the
// merge. When no common node exists (an open fan), each branch's element
// list is the set of nodes exclusively reachable from that branch alone.
//
// Complexity: O(G * (V + E)) where G is the number of gateways with a fan
// out — each gateway does one bounded forward traversal per branch.
func DetectGatewayPatterns(graph *FlowGraph, backEdgeIDs map[string]bool) []GatewayPattern {
	var patterns []GatewayPattern

	splitIDs := make([]string, 0)
	for id, rec := range graph.Nodes {
		if !rec.Element.FlowNode.Sub.IsGateway() {
			continue
		}
		if len(forwardOutgoing(graph, rec, backEdgeIDs)) >= 2 {
			splitIDs = append(splitIDs, id)
		}
	}
	sort.Strings(splitIDs)

	for _, splitID := range splitIDs {
		rec := graph.Nodes[splitID]
		branchRoots := forwardOutgoing(graph, rec, backEdgeIDs)

		reachSets := make([]map[string]bool, len(branchRoots))
		depthSets := make([]map[string]int, len(branchRoots))
		for i, root := range branchRoots {
			reachSets[i] = reachableFrom(graph, root, splitID, backEdgeIDs)
			depthSets[i] = bfsDepths(graph, root, splitID, backEdgeIDs)
		}

		mergeID := findMerge(graph, reachSets, depthSets)

		pattern := GatewayPattern{SplitID: splitID, MergeID: mergeID}
		if mergeID != "" {
			pattern.Branches = make([][]string, len(branchRoots))
			for i, root := range branchRoots {
				pattern.Branches[i] = boundedBranch(graph, root, splitID, mergeID, backEdgeIDs)
			}
		} else {
			pattern.Branches = make([][]string, len(branchRoots))
			for i := range branchRoots {
				exclusive := make(map[string]bool, len(reachSets[i]))
				for id := range reachSets[i] {
					shared := false
					for j := range reachSets {
						if j == i {
							continue
						}
						if reachSets[j][id] {
							shared = true
							break
						}
					}
					if !shared {
						exclusive[id] = true
					}
				}
				pattern.Branches[i] = sortedByDepth(exclusive, depthSets[i])
			}
		}
		patterns = append(patterns, pattern)
	}

	return patterns
}

// findMerge returns the first node common to every branch's reachable set,
// preferring a gateway, then the smallest maximum branch-depth, then id.
func findMerge(graph *FlowGraph, reachSets []map[string]bool, depthSets []map[string]int) string {
	if len(reachSets) == 0 {
		return ""
	}
	candidates := make([]string, 0)
	for id := range reachSets[0] {
		common := true
		for _, set := range reachSets[1:] {
			if !set[id] {
				common = false
				break
			}
		}
		if common {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	maxDepth := func(id string) int {
		m := 0
		for _, d := range depthSets {
			if v := d[id]; v > m {
				m = v
			}
		}
		return m
	}
	isGateway := func(id string) bool {
		e := graph.Nodes[id].Element
		return e.FlowNode != nil && e.FlowNode.Sub.IsGateway()
	}

	sort.Slice(candidates, func(i, j int) bool {
		gi, gj := isGateway(candidates[i]), isGateway(candidates[j])
		if gi != gj {
			return gi
		}
		di, dj := maxDepth(candidates[i]), maxDepth(candidates[j])
		if di != dj {
			return di < dj
		}
		return candidates[i] < candidates[j]
	})
	return candidates[0]
}

// boundedBranch walks forward from root, stopping at splitID or mergeID
// (exclusive), returning the visited node ids ordered by hop-distance from
// root.
func boundedBranch(graph *FlowGraph, root, splitID, mergeID string, backEdgeIDs map[string]bool) []string {
	seen := map[string]bool{root: true}
	depth := map[string]int{root: 0}
	queue := []string{root}
	order := []string{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		rec := graph.Nodes[id]
		if rec == nil {
			continue
		}
		for _, out := range rec.Outgoing {
			if backEdgeIDs[out.ID] || out.TargetID == splitID || out.TargetID == mergeID {
				continue
			}
			if !seen[out.TargetID] {
				seen[out.TargetID] = true
				depth[out.TargetID] = depth[id] + 1
				queue = append(queue, out.TargetID)
				order = append(order, out.TargetID)
			}
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return depth[order[i]] < depth[order[j]] })
	return order
}

func sortedByDepth(set map[string]bool, depth map[string]int) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		if depth[out[i]] != depth[out[j]] {
			return depth[out[i]] < depth[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}
