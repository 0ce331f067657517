package egraph

import (
	"testing"

	"github.com/katalvlaran/bpmnlayout/container"
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addFlowNode(t *testing.T, r *model.Registry, id, parent string, sub model.FlowNodeKind, bounds geometry.Rect) {
	t.Helper()
	require.NoError(t, r.AddElement(&model.Element{
		ID: id, Kind: model.KindFlowNode, ParentID: parent, FlowNode: &model.FlowNodeData{Sub: sub}, Bounds: bounds,
	}))
}

func addSeqFlow(t *testing.T, r *model.Registry, id, src, tgt string) {
	t.Helper()
	require.NoError(t, r.AddConnection(&model.Connection{
		ID: id, Kind: model.SequenceFlow, SourceID: src, TargetID: tgt,
		Waypoints: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
	}))
}

func TestBuildContainerGraph_LeafChildrenCarryOwnSize(t *testing.T) {
	r := model.NewRegistry()
	addFlowNode(t, r, "t1", model.RootID, model.NodeTask, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addFlowNode(t, r, "t2", model.RootID, model.NodeTask, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addSeqFlow(t, r, "f1", "t1", "t2")

	node := BuildContainerGraph(r, model.RootID)
	require.Len(t, node.Children, 2)
	require.Len(t, node.Edges, 1)
	assert.Equal(t, "f1", node.Edges[0].ID)
	assert.Equal(t, []string{"t1"}, node.Edges[0].Sources)
	assert.Equal(t, []string{"t2"}, node.Edges[0].Targets)
}

func TestBuildContainerGraph_ExcludesInfrastructureArtifactLaneBoundary(t *testing.T) {
	r := model.NewRegistry()
	addFlowNode(t, r, "t1", model.RootID, model.NodeTask, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	require.NoError(t, r.AddElement(&model.Element{ID: "art", Kind: model.KindArtifact, ParentID: model.RootID, Artifact: &model.ArtifactData{Sub: model.TextAnnotation}}))
	require.NoError(t, r.AddElement(&model.Element{ID: "lane1", Kind: model.KindLane, ParentID: model.RootID, Lane: &model.LaneData{}}))
	require.NoError(t, r.AddElement(&model.Element{ID: "be1", Kind: model.KindBoundaryEvent, ParentID: model.RootID, Boundary: &model.BoundaryData{HostID: "t1"}}))

	node := BuildContainerGraph(r, model.RootID)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "t1", node.Children[0].ID)
}

func TestBuildContainerGraph_SubProcessWithChildrenRecursesCompound(t *testing.T) {
	r := model.NewRegistry()
	addFlowNode(t, r, "sub", model.RootID, model.NodeSubProcessExpanded, geometry.Rect{X: 0, Y: 0, Width: 300, Height: 200})
	addFlowNode(t, r, "inner", "sub", model.NodeTask, geometry.Rect{X: 20, Y: 20, Width: 100, Height: 80})

	node := BuildContainerGraph(r, model.RootID)
	require.Len(t, node.Children, 1)
	sub := node.Children[0]
	assert.Equal(t, "sub", sub.ID)
	require.Len(t, sub.Children, 1)
	assert.Equal(t, "inner", sub.Children[0].ID)
	assert.Equal(t, string(solver.AlgorithmLayered), sub.Options.Get("elk.algorithm"))
}

func TestBuildContainerGraph_EmptySubProcessIsLeaf(t *testing.T) {
	r := model.NewRegistry()
	addFlowNode(t, r, "sub", model.RootID, model.NodeSubProcessExpanded, geometry.Rect{X: 0, Y: 0, Width: 300, Height: 200})

	node := BuildContainerGraph(r, model.RootID)
	require.Len(t, node.Children, 1)
	assert.Empty(t, node.Children[0].Children)
	assert.Equal(t, 300.0, node.Children[0].Width)
}

func TestBuildContainerGraph_ParticipantWithLanesUsesLanePadding(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, r.AddElement(&model.Element{
		ID: "pool", Kind: model.KindParticipant, ParentID: model.RootID,
		Participant: &model.ParticipantData{LaneIDs: []string{"l1"}},
		Bounds:      geometry.Rect{X: 0, Y: 0, Width: 600, Height: 400},
	}))
	require.NoError(t, r.AddElement(&model.Element{ID: "l1", Kind: model.KindLane, ParentID: "pool", Lane: &model.LaneData{}}))
	addFlowNode(t, r, "t1", "pool", model.NodeTask, geometry.Rect{X: 50, Y: 50, Width: 100, Height: 80})

	node := BuildContainerGraph(r, model.RootID)
	require.Len(t, node.Children, 1)
	pool := node.Children[0]
	assert.Equal(t, "60", pool.Options.Get("elk.padding"))
}

func TestBuildContainerGraph_EventSubProcessUsesEventPadding(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, r.AddElement(&model.Element{
		ID: "esub", Kind: model.KindFlowNode, ParentID: model.RootID,
		FlowNode:   &model.FlowNodeData{Sub: model.NodeSubProcessExpanded},
		Bounds:     geometry.Rect{X: 0, Y: 0, Width: 300, Height: 200},
		Extensions: map[string]interface{}{container.EventSubprocessKey: true},
	}))
	addFlowNode(t, r, "inner", "esub", model.NodeTask, geometry.Rect{X: 20, Y: 20, Width: 100, Height: 80})

	node := BuildContainerGraph(r, model.RootID)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "20", node.Children[0].Options.Get("elk.padding"))
}

func TestBuildContainerGraph_BoundaryProxyEdgeFromHostToTarget(t *testing.T) {
	r := model.NewRegistry()
	addFlowNode(t, r, "task", model.RootID, model.NodeTask, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addFlowNode(t, r, "handler", model.RootID, model.NodeTask, geometry.Rect{X: 200, Y: 0, Width: 100, Height: 80})
	require.NoError(t, r.AddElement(&model.Element{
		ID: "be1", Kind: model.KindBoundaryEvent, ParentID: model.RootID,
		Boundary: &model.BoundaryData{HostID: "task"},
	}))
	addSeqFlow(t, r, "errFlow", "be1", "handler")

	node := BuildContainerGraph(r, model.RootID)
	require.Len(t, node.Edges, 1)
	proxy := node.Edges[0]
	assert.Equal(t, ProxyEdgeIDPrefix+"errFlow", proxy.ID)
	assert.Equal(t, []string{"task"}, proxy.Sources)
	assert.Equal(t, []string{"handler"}, proxy.Targets)
}
