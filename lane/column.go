package lane

import (
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// ColumnLayout tiles poolID's lanes left-to-right as vertical column bands,
// used when the diagram's flow direction is DOWN or UP.
//
// The modeler's lane-resize path enforces equal widths across every lane in
// a pool (a behaviour column mode must NOT inherit, since column bands are
// sized to their own content). Column mode therefore writes each lane's
// bounds and DI bounds directly, bypassing the modeler for that one
// mutation only — member-node moves still go through m.MoveElements — and
// marks the pool's Extensions so downstream compaction skips a lane
// re-resize pass that would otherwise re-impose equal widths.
func ColumnLayout(registry *model.Registry, m *modeler.Modeler, poolID string) error {
	pool, ok := registry.Get(poolID)
	if !ok || pool.Kind != model.KindParticipant {
		return ErrNotAParticipant
	}

	bandLeft := pool.Bounds.X
	for _, laneID := range pool.Participant.LaneIDs {
		laneElem, ok := registry.Get(laneID)
		if !ok || laneElem.Lane == nil {
			continue
		}

		members := memberElements(registry, laneElem.Lane.FlowNodeRefs)
		contentMinX, contentMaxX, hasContent := xSpan(members)
		contentW := 0.0
		if hasContent {
			contentW = contentMaxX - contentMinX
		}
		bandWidth := maxF(contentW+2*HorizontalPad, ColumnMinWidth)

		if hasContent {
			bandCentre := bandLeft + bandWidth/2
			medianCentre := medianCenterX(members)
			delta := bandCentre - medianCentre
			delta = clampGroupDeltaX(members, delta, bandLeft, bandLeft+bandWidth)
			if delta != 0 {
				if err := moveGroup(m, members, geometry.Point{X: delta, Y: 0}); err != nil {
					return err
				}
			}
		}

		laneElem.Bounds = geometry.Rect{
			X:      bandLeft,
			Y:      pool.Bounds.Y + PoolLabelBand,
			Width:  bandWidth,
			Height: pool.Bounds.Height - PoolLabelBand,
		}
		laneElem.DIBounds = laneElem.Bounds
		bandLeft += bandWidth
	}

	totalWidth := bandLeft - pool.Bounds.X
	pool.Bounds.Width = totalWidth
	pool.DIBounds = pool.Bounds
	if pool.Extensions == nil {
		pool.Extensions = make(map[string]interface{})
	}
	pool.Extensions[ColumnLockedKey] = true

	return nil
}
