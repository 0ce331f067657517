package routing

import (
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// AssociationRoute is the straight centre-to-centre line used for
// associations and data associations, rendered dotted by the DI layer.
// There is no intermediate waypoint: it is purely geometric.
func AssociationRoute(src, tgt geometry.Rect) []geometry.Point {
	return []geometry.Point{src.Center(), tgt.Center()}
}

func isAssociationKind(k model.ConnectionKind) bool {
	return k == model.Association || k == model.DataInputAssociation || k == model.DataOutputAssociation
}

// ApplyAssociationRoutes re-routes every association/data-association
// connection in ids as a straight centre-to-centre line.
func ApplyAssociationRoutes(registry *model.Registry, m *modeler.Modeler, ids []string) error {
	for _, id := range ids {
		c, ok := registry.GetConnection(id)
		if !ok || !isAssociationKind(c.Kind) {
			continue
		}
		src, okSrc := registry.Get(c.SourceID)
		tgt, okTgt := registry.Get(c.TargetID)
		if !okSrc || !okTgt {
			continue
		}
		wps := AssociationRoute(src.Bounds, tgt.Bounds)
		if err := m.UpdateWaypoints(id, wps); err != nil {
			return err
		}
		c.SetOriginalStart(wps[0])
		c.SetOriginalEnd(wps[len(wps)-1])
	}
	return nil
}
