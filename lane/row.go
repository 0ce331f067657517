package lane

import (
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// RowLayout tiles poolID's lanes top-to-bottom as horizontal bands, used
// when the diagram's flow direction is RIGHT or LEFT. Each
// lane's nodes move together so their median centre-y lands on the band
// centre, clamped so no member overshoots the band; lanes are then resized
// through the modeler (the pool first grows whenever a band would reach past
// its bottom), and the pool height is corrected to the sum of band heights.
func RowLayout(registry *model.Registry, m *modeler.Modeler, poolID string) error {
	pool, ok := registry.Get(poolID)
	if !ok || pool.Kind != model.KindParticipant {
		return ErrNotAParticipant
	}

	bandTop := pool.Bounds.Y
	for _, laneID := range pool.Participant.LaneIDs {
		lane, ok := registry.Get(laneID)
		if !ok || lane.Lane == nil {
			continue
		}

		members := memberElements(registry, lane.Lane.FlowNodeRefs)
		contentMinY, contentMaxY, hasContent := ySpan(members)
		contentH := 0.0
		if hasContent {
			contentH = contentMaxY - contentMinY
		}
		bandHeight := maxF(contentH+2*VerticalPad, RowMinHeight)

		if hasContent {
			bandCentre := bandTop + bandHeight/2
			medianCentre := medianCenterY(members)
			delta := bandCentre - medianCentre
			delta = clampGroupDeltaY(members, delta, bandTop, bandTop+bandHeight)
			if delta != 0 {
				if err := moveGroup(m, members, geometry.Point{X: 0, Y: delta}); err != nil {
					return err
				}
			}
		}

		newBounds := geometry.Rect{
			X:      pool.Bounds.X + PoolLabelBand,
			Y:      bandTop,
			Width:  pool.Bounds.Width - PoolLabelBand,
			Height: bandHeight,
		}
		if newBounds.Bottom() > pool.Bounds.Bottom() {
			grown := pool.Bounds
			grown.Height = newBounds.Bottom() - grown.Y
			if err := m.ResizeShape(poolID, grown); err != nil {
				return err
			}
		}
		if err := m.ResizeShape(laneID, newBounds); err != nil {
			return err
		}
		bandTop += bandHeight
	}

	totalHeight := bandTop - pool.Bounds.Y
	poolBounds := pool.Bounds
	poolBounds.Height = totalHeight
	if err := m.ResizeShape(poolID, poolBounds); err != nil {
		return err
	}

	// No re-verify pass follows: with this modeler, ResizeShape never
	// redistributes a sibling's bounds as a side effect, so every band
	// computed above still holds after the pool resize.
	return nil
}
