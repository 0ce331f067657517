package artifact

import (
	"sort"

	"github.com/katalvlaran/bpmnlayout/model"
)

// isArtifactLink reports whether kind is one of the three connection kinds
// that join an artifact to a flow element.
func isArtifactLink(kind model.ConnectionKind) bool {
	return kind == model.Association || kind == model.DataInputAssociation || kind == model.DataOutputAssociation
}

// LinkedGroups returns every artifact bucketed by the flow element it is
// linked to via Association/DataInputAssociation/DataOutputAssociation,
// keyed by the linked element's id. An artifact with no qualifying
// connection does not appear in the result — callers distinguish linked
// from unlinked by set membership, not by an empty-string key.
func LinkedGroups(registry *model.Registry) map[string][]*model.Element {
	groups := make(map[string][]*model.Element)
	linkedArtifactIDs := make(map[string]bool)

	for _, c := range registry.AllConnections() {
		if !isArtifactLink(c.Kind) {
			continue
		}
		src, okSrc := registry.Get(c.SourceID)
		tgt, okTgt := registry.Get(c.TargetID)
		if !okSrc || !okTgt {
			continue
		}

		var art, linked *model.Element
		switch {
		case src.Kind == model.KindArtifact && tgt.Kind != model.KindArtifact:
			art, linked = src, tgt
		case tgt.Kind == model.KindArtifact && src.Kind != model.KindArtifact:
			art, linked = tgt, src
		default:
			continue
		}
		if linkedArtifactIDs[art.ID] {
			continue
		}
		linkedArtifactIDs[art.ID] = true
		groups[linked.ID] = append(groups[linked.ID], art)
	}

	for id := range groups {
		sort.Slice(groups[id], func(i, j int) bool { return groups[id][i].ID < groups[id][j].ID })
	}
	return groups
}

// UnlinkedArtifacts returns every artifact in the registry that LinkedGroups
// does not attach to any flow element, id-sorted.
func UnlinkedArtifacts(registry *model.Registry) []*model.Element {
	linked := LinkedGroups(registry)
	isLinked := make(map[string]bool)
	for _, group := range linked {
		for _, a := range group {
			isLinked[a.ID] = true
		}
	}

	return registry.Filter(func(e *model.Element) bool {
		return e.Kind == model.KindArtifact && !isLinked[e.ID] && (e.Artifact == nil || e.Artifact.Sub != model.Group)
	})
}
