package boundary

import (
	"sort"

	"github.com/katalvlaran/bpmnlayout/model"
)

// IdentifyBoundaryEvents returns every KindBoundaryEvent element in
// registry, id-sorted.
func IdentifyBoundaryEvents(registry *model.Registry) []*model.Element {
	return registry.Filter(func(e *model.Element) bool { return e.Kind == model.KindBoundaryEvent })
}

// qualifies reports whether every incoming connection of candidateID comes
// from a boundary event or from a member of chain (boundaryID itself always
// qualifies as a source).
func qualifies(registry *model.Registry, candidateID, boundaryID string, chain map[string]bool) bool {
	incoming := registry.Incoming(candidateID)
	if len(incoming) == 0 {
		return false
	}
	for _, in := range incoming {
		if in.SourceID == boundaryID || chain[in.SourceID] {
			continue
		}
		src, ok := registry.Get(in.SourceID)
		if ok && src.Kind == model.KindBoundaryEvent {
			continue
		}
		return false
	}
	return true
}

// ExceptionChain returns the BFS-ordered list of boundaryID's exclusive
// chain descendants: flow nodes reachable from boundaryID whose every
// incoming flow originates from a boundary event or another chain element.
// Computed by fixed-point expansion, bounded by the registry's element
// count so a pathological input cannot loop forever.
//
// Complexity: O(n * E) worst case across all fixed-point passes.
func ExceptionChain(registry *model.Registry, boundaryID string) []string {
	chain := make(map[string]bool)
	order := make([]string, 0)

	maxPasses := len(registry.GetAll()) + 1
	for pass := 0; pass < maxPasses; pass++ {
		changed := false

		// Candidate frontier: every target reachable in one hop from
		// boundaryID or from an already-accepted chain member.
		frontier := make(map[string]bool)
		for _, out := range registry.Outgoing(boundaryID) {
			frontier[out.TargetID] = true
		}
		for id := range chain {
			for _, out := range registry.Outgoing(id) {
				frontier[out.TargetID] = true
			}
		}

		candidateIDs := make([]string, 0, len(frontier))
		for id := range frontier {
			if !chain[id] {
				candidateIDs = append(candidateIDs, id)
			}
		}
		sort.Strings(candidateIDs)

		for _, id := range candidateIDs {
			if qualifies(registry, id, boundaryID, chain) {
				chain[id] = true
				order = append(order, id)
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	return order
}
