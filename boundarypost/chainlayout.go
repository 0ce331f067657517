package boundarypost

import (
	"github.com/katalvlaran/bpmnlayout/boundary"
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// PositionExceptionChain lays boundaryID's exception chain out as a linear
// left-to-right row: a fixed gap below the host for a
// bottom/right/left-docked event, above it for a top-docked one, with
// every chain element's centre-y pinned to the row's common centre-y,
// computed from the tallest chain element so a shorter neighbour doesn't
// sit off-centre.
func PositionExceptionChain(registry *model.Registry, m *modeler.Modeler, boundaryID string, opts Options) error {
	chain := boundary.ExceptionChain(registry, boundaryID)
	if len(chain) == 0 {
		return nil
	}
	event, ok := registry.Get(boundaryID)
	if !ok || event.Boundary == nil {
		return nil
	}
	host, ok := registry.Get(event.Boundary.HostID)
	if !ok {
		return nil
	}

	elems := make([]*model.Element, 0, len(chain))
	tallest := 0.0
	for _, id := range chain {
		e, ok := registry.Get(id)
		if !ok {
			continue
		}
		elems = append(elems, e)
		if e.Bounds.Height > tallest {
			tallest = e.Bounds.Height
		}
	}
	if len(elems) == 0 {
		return nil
	}

	above := event.Boundary.Border == model.BorderTop
	var rowCenterY float64
	if above {
		rowCenterY = host.Bounds.Y - opts.ChainGap - tallest/2
	} else {
		rowCenterY = host.Bounds.Bottom() + opts.ChainGap + tallest/2
	}

	cursorX := event.Bounds.CenterX()
	for i, e := range elems {
		if i > 0 {
			cursorX += elems[i-1].Bounds.Width/2 + opts.ChainGap + e.Bounds.Width/2
		}
		bounds := geometry.Rect{
			X: cursorX - e.Bounds.Width/2, Y: rowCenterY - e.Bounds.Height/2,
			Width: e.Bounds.Width, Height: e.Bounds.Height,
		}
		if err := m.ResizeShape(e.ID, bounds); err != nil {
			return err
		}
	}
	return nil
}

// PushChainTargetsBelowHappyPath moves any non-chain, non-boundary-event
// target reached directly from the chain back below the chain's own row
// plus a gap, so a reconciliation node the chain flows
// back into does not overlap the happy-path row it also sits on.
func PushChainTargetsBelowHappyPath(registry *model.Registry, m *modeler.Modeler, boundaryID string, opts Options) error {
	chain := boundary.ExceptionChain(registry, boundaryID)
	if len(chain) == 0 {
		return nil
	}
	inChain := make(map[string]bool, len(chain))
	for _, id := range chain {
		inChain[id] = true
	}

	chainBottom := 0.0
	for _, id := range chain {
		e, ok := registry.Get(id)
		if ok && e.Bounds.Bottom() > chainBottom {
			chainBottom = e.Bounds.Bottom()
		}
	}

	floor := chainBottom + opts.ChainGap
	seen := make(map[string]bool)
	for _, id := range chain {
		for _, c := range registry.Outgoing(id) {
			if inChain[c.TargetID] || c.TargetID == boundaryID || seen[c.TargetID] {
				continue
			}
			seen[c.TargetID] = true
			target, ok := registry.Get(c.TargetID)
			if !ok || target.Kind == model.KindBoundaryEvent || target.Bounds.Y >= floor {
				continue
			}
			delta := geometry.Point{Y: floor - target.Bounds.Y}
			if err := m.MoveElements([]string{c.TargetID}, delta); err != nil {
				return err
			}
		}
	}
	return nil
}

// AlignOffPathEndEvents aligns every end-event in boundaryID's exception
// chain to one shared secondary row below the chain's own row, so the
// chain's terminal off-path ends line up with each other
// even when earlier chain elements vary in height.
func AlignOffPathEndEvents(registry *model.Registry, m *modeler.Modeler, boundaryID string, opts Options) error {
	chain := boundary.ExceptionChain(registry, boundaryID)
	if len(chain) == 0 {
		return nil
	}

	var endEvents []*model.Element
	rowBottom := 0.0
	for _, id := range chain {
		e, ok := registry.Get(id)
		if !ok {
			continue
		}
		if e.Bounds.Bottom() > rowBottom {
			rowBottom = e.Bounds.Bottom()
		}
		if e.FlowNode != nil && e.FlowNode.Sub == model.NodeEndEvent {
			endEvents = append(endEvents, e)
		}
	}
	if len(endEvents) < 2 {
		return nil
	}

	secondaryCenterY := rowBottom + opts.ChainGap + endEvents[0].Bounds.Height/2
	for _, e := range endEvents {
		bounds := e.Bounds
		bounds.Y = secondaryCenterY - bounds.Height/2
		if err := m.ResizeShape(e.ID, bounds); err != nil {
			return err
		}
	}
	return nil
}
