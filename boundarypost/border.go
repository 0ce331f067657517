package boundarypost

import (
	"math"
	"sort"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// ChooseBorder picks boundaryID's docking border: bottom
// by default, or whichever border is dominant in the direction from the
// host's centre to the first valid (still-registered) outgoing target's
// centre.
func ChooseBorder(registry *model.Registry, boundaryID string) model.Border {
	event, ok := registry.Get(boundaryID)
	if !ok || event.Boundary == nil {
		return model.BorderBottom
	}
	host, ok := registry.Get(event.Boundary.HostID)
	if !ok {
		return model.BorderBottom
	}

	out := registry.Outgoing(boundaryID)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	for _, c := range out {
		target, ok := registry.Get(c.TargetID)
		if !ok {
			continue
		}
		dx := target.Bounds.CenterX() - host.Bounds.CenterX()
		dy := target.Bounds.CenterY() - host.Bounds.CenterY()
		if math.Abs(dx) >= math.Abs(dy) {
			if dx >= 0 {
				return model.BorderRight
			}
			return model.BorderLeft
		}
		if dy >= 0 {
			return model.BorderBottom
		}
		return model.BorderTop
	}
	return model.BorderBottom
}

// pointOnBorder returns the point at fraction along border's length,
// fraction 0 being the border's top/left-most end.
func pointOnBorder(hostBounds geometry.Rect, border model.Border, fraction float64) geometry.Point {
	switch border {
	case model.BorderTop:
		return geometry.Point{X: hostBounds.X + hostBounds.Width*fraction, Y: hostBounds.Y}
	case model.BorderBottom:
		return geometry.Point{X: hostBounds.X + hostBounds.Width*fraction, Y: hostBounds.Bottom()}
	case model.BorderLeft:
		return geometry.Point{X: hostBounds.X, Y: hostBounds.Y + hostBounds.Height*fraction}
	case model.BorderRight:
		return geometry.Point{X: hostBounds.Right(), Y: hostBounds.Y + hostBounds.Height*fraction}
	default:
		return hostBounds.Center()
	}
}

// spreadFraction returns the i-th of total evenly-spaced positions along a
// border, falling back to DefaultBorderFraction when there is exactly one
// event to place.
func spreadFraction(i, total int) float64 {
	if total <= 1 {
		return DefaultBorderFraction
	}
	return float64(i+1) / float64(total+1)
}

// PlaceEventsOnHost groups every boundary event hosted on hostID by its
// chosen border and spreads each border's group evenly along that edge
// recording the final border and fraction on each
// event's BoundaryData so RestoreHostAttachment can reproduce it later.
func PlaceEventsOnHost(registry *model.Registry, m *modeler.Modeler, hostID string) error {
	host, ok := registry.Get(hostID)
	if !ok {
		return nil
	}

	byBorder := make(map[model.Border][]*model.Element)
	for _, e := range registry.Filter(func(e *model.Element) bool {
		return e.Kind == model.KindBoundaryEvent && e.Boundary != nil && e.Boundary.HostID == hostID
	}) {
		border := ChooseBorder(registry, e.ID)
		byBorder[border] = append(byBorder[border], e)
	}

	for border, events := range byBorder {
		sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
		for i, e := range events {
			fraction := spreadFraction(i, len(events))
			center := pointOnBorder(host.Bounds, border, fraction)
			bounds := geometry.Rect{
				X: center.X - e.Bounds.Width/2, Y: center.Y - e.Bounds.Height/2,
				Width: e.Bounds.Width, Height: e.Bounds.Height,
			}
			if err := m.MutateBoundaryBounds(e.ID, bounds); err != nil {
				return err
			}
			e.Boundary.Border = border
			e.Boundary.RelativeOffset = fraction
		}
	}
	return nil
}

// RestoreHostAttachment repositions boundaryID from its host's current
// bounds using the border and relative-offset already recorded on its
// BoundaryData, without re-choosing the border. Used after
// a later pass moves or resizes the host, so the event tracks it instead
// of being left in a stale position.
func RestoreHostAttachment(registry *model.Registry, m *modeler.Modeler, boundaryID string) error {
	event, ok := registry.Get(boundaryID)
	if !ok || event.Boundary == nil {
		return nil
	}
	host, ok := registry.Get(event.Boundary.HostID)
	if !ok {
		return nil
	}
	center := pointOnBorder(host.Bounds, event.Boundary.Border, event.Boundary.RelativeOffset)
	bounds := geometry.Rect{
		X: center.X - event.Bounds.Width/2, Y: center.Y - event.Bounds.Height/2,
		Width: event.Bounds.Width, Height: event.Bounds.Height,
	}
	return m.MutateBoundaryBounds(boundaryID, bounds)
}
