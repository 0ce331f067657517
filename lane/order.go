package lane

import (
	"github.com/katalvlaran/bpmnlayout/model"
)

// OptimizeOrder reorders poolID's lanes to minimise Σ |lane_index(src) -
// lane_index(tgt)| over every cross-lane sequence flow. OrderPreserve
// leaves pool.Participant.LaneIDs untouched. For ≤ exactSearchLimit lanes it
// brute-forces every permutation (an exact solve is cheap below a size
// threshold); above that it runs a greedy adjacent-swap local search until
// a full pass finds no improving swap, since only neighbour order matters
// here.
func OptimizeOrder(registry *model.Registry, poolID string, strategy OrderStrategy) error {
	if strategy == OrderPreserve {
		return nil
	}

	pool, ok := registry.Get(poolID)
	if !ok || pool.Kind != model.KindParticipant {
		return ErrNotAParticipant
	}
	laneIDs := pool.Participant.LaneIDs
	n := len(laneIDs)
	if n < 2 {
		return nil
	}

	laneOf := make(map[string]int, n)
	for idx, id := range laneIDs {
		if lane, ok := registry.Get(id); ok && lane.Lane != nil {
			for member := range lane.Lane.FlowNodeRefs {
				laneOf[member] = idx
			}
		}
	}

	type crossPair struct{ a, b int }
	var pairs []crossPair
	for _, c := range registry.AllConnections() {
		if c.Kind != model.SequenceFlow {
			continue
		}
		la, okA := laneOf[c.SourceID]
		lb, okB := laneOf[c.TargetID]
		if !okA || !okB || la == lb {
			continue
		}
		pairs = append(pairs, crossPair{a: la, b: lb})
	}
	if len(pairs) == 0 {
		return nil
	}

	cost := func(order []int) int {
		pos := make([]int, n)
		for p, origIdx := range order {
			pos[origIdx] = p
		}
		total := 0
		for _, pr := range pairs {
			d := pos[pr.a] - pos[pr.b]
			if d < 0 {
				d = -d
			}
			total += d
		}
		return total
	}

	identity := make([]int, n)
	for i := range identity {
		identity[i] = i
	}

	var best []int
	if n <= exactSearchLimit {
		best = bruteForceBestOrder(identity, cost)
	} else {
		best = greedyAdjacentSwap(identity, cost)
	}

	reordered := make([]string, n)
	for pos, origIdx := range best {
		reordered[pos] = laneIDs[origIdx]
	}
	pool.Participant.LaneIDs = reordered
	return nil
}

// bruteForceBestOrder enumerates every permutation of order (via Heap's
// algorithm) and returns the one minimising cost.
func bruteForceBestOrder(order []int, cost func([]int) int) []int {
	best := append([]int(nil), order...)
	bestCost := cost(order)

	working := append([]int(nil), order...)
	var permute func(k int)
	permute = func(k int) {
		if k == 1 {
			if c := cost(working); c < bestCost {
				bestCost = c
				best = append([]int(nil), working...)
			}
			return
		}
		for i := 0; i < k; i++ {
			permute(k - 1)
			if k%2 == 0 {
				working[i], working[k-1] = working[k-1], working[i]
			} else {
				working[0], working[k-1] = working[k-1], working[0]
			}
		}
	}
	permute(len(working))
	return best
}

// greedyAdjacentSwap repeatedly swaps adjacent elements whenever doing so
// strictly lowers total cost, until a full pass makes no improving swap.
func greedyAdjacentSwap(order []int, cost func([]int) int) []int {
	working := append([]int(nil), order...)
	for {
		improved := false
		for i := 0; i < len(working)-1; i++ {
			working[i], working[i+1] = working[i+1], working[i]
			if cost(working) < cost(order) {
				order = append([]int(nil), working...)
				improved = true
			} else {
				working[i], working[i+1] = working[i+1], working[i]
			}
		}
		if !improved {
			break
		}
		working = append([]int(nil), order...)
	}
	return order
}
