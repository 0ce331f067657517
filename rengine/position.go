package rengine

import (
	"math"

	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/topology"
)

// branchSlot records where a flow-node id sits inside a detected gateway
// pattern's branch list: which pattern, which branch index, and its
// zero-based position within that branch's element sequence.
type branchSlot struct {
	pattern  *topology.GatewayPattern
	branch   int
	posInRun int
}

// indexPatterns builds the merge-id and branch-element lookup tables used
// by Compute, from the gateway patterns topology.DetectGatewayPatterns
// found in the same container scope.
func indexPatterns(patterns []topology.GatewayPattern) (mergeByID map[string]*topology.GatewayPattern, branchByID map[string]branchSlot) {
	mergeByID = make(map[string]*topology.GatewayPattern)
	branchByID = make(map[string]branchSlot)

	for i := range patterns {
		p := &patterns[i]
		if p.Closed() {
			mergeByID[p.MergeID] = p
		}
		for b, run := range p.Branches {
			for pos, id := range run {
				branchByID[id] = branchSlot{pattern: p, branch: b, posInRun: pos}
			}
		}
	}
	return mergeByID, branchByID
}

// Compute runs the forward sweep: it assigns every non-excluded node a
// centre position, using graph for element lookups, sorted for processing
// order (topology.TopologicalSort's layer/y/id ordering guarantees every
// forward predecessor is already placed), backEdgeIDs so a predecessor
// reached only through a cycle is never awaited, and patterns to special-case
// gateway branches and merges.
//
// Complexity: O(V + E) — one pass over sorted plus, per merge node, one scan
// of its own branch set (bounded by the pattern's branch count, not V).
func Compute(graph *topology.FlowGraph, sorted []topology.LayeredNode, backEdgeIDs map[string]bool, patterns []topology.GatewayPattern, opts Options) map[string]Position {
	mergeByID, branchByID := indexPatterns(patterns)
	positions := make(map[string]Position, len(graph.Nodes))

	startIdx := 0
	for _, id := range graph.StartIDs {
		if opts.ExcludeIDs[id] {
			continue
		}
		positions[id] = Position{X: opts.OriginX, Y: opts.OriginY + float64(startIdx)*opts.BranchSpacing}
		startIdx++
	}

	for _, ln := range sorted {
		id := ln.ID
		if opts.ExcludeIDs[id] {
			continue
		}
		if _, already := positions[id]; already {
			continue
		}

		elem := graph.Nodes[id].Element
		var x, y float64

		if pattern := mergeByID[id]; pattern != nil {
			x, y = placeMerge(graph, positions, pattern, elem, opts)
		} else if slot, ok := branchByID[id]; ok {
			x, y = placeBranch(graph, positions, slot, elem, opts)
		} else {
			x, y = placeSuccessor(graph, positions, backEdgeIDs, id, elem, opts)
		}

		if ly, ok := opts.LaneCentreY[id]; ok {
			y = ly
		}
		positions[id] = Position{X: x, Y: y}
	}

	return positions
}

func rightEdge(positions map[string]Position, graph *topology.FlowGraph, id string) float64 {
	p := positions[id]
	return p.X + graph.Nodes[id].Element.Bounds.Width/2
}

func placeMerge(graph *topology.FlowGraph, positions map[string]Position, p *topology.GatewayPattern, elem *model.Element, opts Options) (float64, float64) {
	splitPos, splitOK := positions[p.SplitID]
	y := opts.OriginY
	if splitOK {
		y = splitPos.Y
	}

	maxRight := math.Inf(-1)
	for _, branch := range p.Branches {
		if len(branch) == 0 {
			continue
		}
		last := branch[len(branch)-1]
		if _, ok := positions[last]; ok {
			if r := rightEdge(positions, graph, last); r > maxRight {
				maxRight = r
			}
		}
	}
	if math.IsInf(maxRight, -1) {
		if splitOK {
			maxRight = splitPos.X + graph.Nodes[p.SplitID].Element.Bounds.Width/2
		} else {
			maxRight = opts.OriginX
		}
	}

	x := maxRight + opts.Gap + elem.Bounds.Width/2
	return x, y
}

func placeBranch(graph *topology.FlowGraph, positions map[string]Position, slot branchSlot, elem *model.Element, opts Options) (float64, float64) {
	n := len(slot.pattern.Branches)
	splitPos, splitOK := positions[slot.pattern.SplitID]
	splitY := opts.OriginY
	if splitOK {
		splitY = splitPos.Y
	}
	offset := (float64(slot.branch) - float64(n-1)/2) * opts.BranchSpacing
	y := splitY + offset

	var prevRight float64
	if slot.posInRun == 0 {
		if splitOK {
			prevRight = splitPos.X + graph.Nodes[slot.pattern.SplitID].Element.Bounds.Width/2
		} else {
			prevRight = opts.OriginX
		}
	} else {
		prevID := slot.pattern.Branches[slot.branch][slot.posInRun-1]
		if _, ok := positions[prevID]; ok {
			prevRight = rightEdge(positions, graph, prevID)
		} else {
			prevRight = opts.OriginX
		}
	}

	x := prevRight + opts.Gap + elem.Bounds.Width/2
	return x, y
}

func placeSuccessor(graph *topology.FlowGraph, positions map[string]Position, backEdgeIDs map[string]bool, id string, elem *model.Element, opts Options) (float64, float64) {
	bestPred := ""
	bestX := math.Inf(-1)
	for _, in := range graph.Nodes[id].Incoming {
		if backEdgeIDs[in.ID] {
			continue
		}
		p, ok := positions[in.SourceID]
		if !ok {
			continue
		}
		if p.X > bestX {
			bestX = p.X
			bestPred = in.SourceID
		}
	}

	if bestPred == "" {
		return opts.OriginX, opts.OriginY
	}

	predPos := positions[bestPred]
	predElem := graph.Nodes[bestPred].Element
	x := predPos.X + predElem.Bounds.Width/2 + opts.Gap + elem.Bounds.Width/2
	return x, predPos.Y
}
