package layout

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bpmnlayout/model"
)

// Sentinel error kinds for the layout package.
var (
	// ErrInvalidScope indicates Options.ScopeElementID does not exist or is
	// not a Participant or expanded SubProcess.
	ErrInvalidScope = errors.New("layout: scopeElementId does not exist or is not a Participant or SubProcess")

	// ErrSolverFailure indicates the layered solver rejected the input or
	// returned a malformed tree.
	ErrSolverFailure = errors.New("layout: layered solver rejected the input or returned a malformed tree")
)

// resolveScope validates scopeElementID exists and is a Participant or
// expanded SubProcess, and returns the container id to run against
// (model.RootID for "").
func resolveScope(registry *model.Registry, scopeElementID string) (string, error) {
	if scopeElementID == "" {
		return model.RootID, nil
	}
	e, ok := registry.Get(scopeElementID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, scopeElementID)
	}
	isParticipant := e.Kind == model.KindParticipant
	isExpandedSub := e.Kind == model.KindFlowNode && e.FlowNode != nil && e.FlowNode.Sub == model.NodeSubProcessExpanded
	if !isParticipant && !isExpandedSub {
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, scopeElementID)
	}
	return scopeElementID, nil
}
