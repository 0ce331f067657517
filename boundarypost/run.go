package boundarypost

import (
	"github.com/katalvlaran/bpmnlayout/boundary"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// hostIDs returns the distinct set of host ids any boundary event in
// registry attaches to, id-sorted order not required since callers only
// range over the resulting map.
func hostIDs(registry *model.Registry) map[string]bool {
	hosts := make(map[string]bool)
	for _, e := range boundary.IdentifyBoundaryEvents(registry) {
		if e.Boundary != nil {
			hosts[e.Boundary.HostID] = true
		}
	}
	return hosts
}

// Run executes the full boundary post-processing pass: for every
// host, place (or re-place) its boundary events and, for each event, lay
// out its exception chain and tidy the row around it.
func Run(registry *model.Registry, m *modeler.Modeler, opts Options) error {
	for hostID := range hostIDs(registry) {
		if err := PlaceEventsOnHost(registry, m, hostID); err != nil {
			return err
		}
	}

	for _, e := range boundary.IdentifyBoundaryEvents(registry) {
		if err := PositionExceptionChain(registry, m, e.ID, opts); err != nil {
			return err
		}
		if err := PushChainTargetsBelowHappyPath(registry, m, e.ID, opts); err != nil {
			return err
		}
		if err := AlignOffPathEndEvents(registry, m, e.ID, opts); err != nil {
			return err
		}
	}
	return nil
}
