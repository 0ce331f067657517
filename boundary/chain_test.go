package boundary

import (
	"testing"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildHostWithException wires: task -(seq)-> next, task -(boundary)-> be,
// be -(seq)-> compensate -(seq)-> rejoin, and rejoin also receives a
// sequence flow from next (so rejoin does NOT qualify: it has a non-chain,
// non-boundary predecessor).
func buildHostWithException(t *testing.T) (*model.Registry, string) {
	t.Helper()
	r := model.NewRegistry()

	mustAdd := func(e *model.Element) {
		require.NoError(t, r.AddElement(e))
	}
	mustAdd(&model.Element{ID: "task", Kind: model.KindFlowNode, FlowNode: &model.FlowNodeData{Sub: model.NodeTask}})
	mustAdd(&model.Element{ID: "next", Kind: model.KindFlowNode, FlowNode: &model.FlowNodeData{Sub: model.NodeTask}})
	mustAdd(&model.Element{
		ID: "be", Kind: model.KindBoundaryEvent,
		Boundary: &model.BoundaryData{Sub: model.NodeIntermediateCatchEvent, HostID: "task"},
	})
	mustAdd(&model.Element{ID: "compensate", Kind: model.KindFlowNode, FlowNode: &model.FlowNodeData{Sub: model.NodeTask}})
	mustAdd(&model.Element{ID: "rejoin", Kind: model.KindFlowNode, FlowNode: &model.FlowNodeData{Sub: model.NodeTask}})

	mustConn := func(id, src, tgt string) {
		require.NoError(t, r.AddConnection(&model.Connection{
			ID: id, Kind: model.SequenceFlow, SourceID: src, TargetID: tgt,
			Waypoints: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		}))
	}
	mustConn("c1", "task", "next")
	mustConn("c2", "be", "compensate")
	mustConn("c3", "compensate", "rejoin")
	mustConn("c4", "next", "rejoin")

	return r, "be"
}

func TestIdentifyBoundaryEvents(t *testing.T) {
	r, beID := buildHostWithException(t)
	events := IdentifyBoundaryEvents(r)
	require.Len(t, events, 1)
	assert.Equal(t, beID, events[0].ID)
}

func TestExceptionChain_StopsAtConvergingPredecessor(t *testing.T) {
	r, beID := buildHostWithException(t)
	chain := ExceptionChain(r, beID)

	assert.Contains(t, chain, "compensate")
	assert.NotContains(t, chain, "rejoin", "rejoin also receives a flow from next, outside the chain")
	assert.NotContains(t, chain, "next")
}

func TestExceptionChain_LinearChainIncludesAll(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, r.AddElement(&model.Element{ID: "task", Kind: model.KindFlowNode, FlowNode: &model.FlowNodeData{Sub: model.NodeTask}}))
	require.NoError(t, r.AddElement(&model.Element{
		ID: "be", Kind: model.KindBoundaryEvent,
		Boundary: &model.BoundaryData{Sub: model.NodeIntermediateCatchEvent, HostID: "task"},
	}))
	require.NoError(t, r.AddElement(&model.Element{ID: "a", Kind: model.KindFlowNode, FlowNode: &model.FlowNodeData{Sub: model.NodeTask}}))
	require.NoError(t, r.AddElement(&model.Element{ID: "b", Kind: model.KindFlowNode, FlowNode: &model.FlowNodeData{Sub: model.NodeTask}}))

	mustConn := func(id, src, tgt string) {
		require.NoError(t, r.AddConnection(&model.Connection{
			ID: id, Kind: model.SequenceFlow, SourceID: src, TargetID: tgt,
			Waypoints: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		}))
	}
	mustConn("c1", "be", "a")
	mustConn("c2", "a", "b")

	chain := ExceptionChain(r, "be")
	assert.Equal(t, []string{"a", "b"}, chain)
}

func TestExceptionChain_NoOutgoingReturnsEmpty(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, r.AddElement(&model.Element{
		ID: "be", Kind: model.KindBoundaryEvent,
		Boundary: &model.BoundaryData{Sub: model.NodeIntermediateCatchEvent, HostID: "task"},
	}))
	chain := ExceptionChain(r, "be")
	assert.Empty(t, chain)
}
