package routing

import (
	"testing"

	"github.com/katalvlaran/bpmnlayout/egraph"
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
	"github.com/katalvlaran/bpmnlayout/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addNode(t *testing.T, r *model.Registry, id string, bounds geometry.Rect) {
	t.Helper()
	require.NoError(t, r.AddElement(&model.Element{
		ID: id, Kind: model.KindFlowNode, ParentID: model.RootID,
		FlowNode: &model.FlowNodeData{Sub: model.NodeTask}, Bounds: bounds,
	}))
}

// placeholderWaypoints satisfies Registry.AddConnection's >=2 requirement
// for connections routing itself is about to compute.
func placeholderWaypoints() []geometry.Point {
	return []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
}

func addConn(t *testing.T, r *model.Registry, id string, kind model.ConnectionKind, src, tgt string) {
	t.Helper()
	require.NoError(t, r.AddConnection(&model.Connection{
		ID: id, Kind: kind, SourceID: src, TargetID: tgt, Waypoints: placeholderWaypoints(),
	}))
}

func TestSectionToWaypoints_RoundsSnapsAndDedups(t *testing.T) {
	s := solver.ElkSection{
		StartPoint: solver.ElkPoint{X: 10.4, Y: 20.2},
		BendPoints: []solver.ElkPoint{{X: 15.1, Y: 20.6}},
		EndPoint:   solver.ElkPoint{X: 90.0, Y: 20.0},
	}
	wps := SectionToWaypoints(s)
	// the bend's y (21 after rounding) is within SegmentOrthoSnap of the
	// start's y (20), so it snaps flush to a strict horizontal run.
	require.Len(t, wps, 3)
	assert.Equal(t, 20.0, wps[0].Y)
	assert.Equal(t, 20.0, wps[1].Y)
	assert.Equal(t, 20.0, wps[2].Y)
}

func TestApplySections_SkipsProxyEdgesAndWritesRealOnes(t *testing.T) {
	r := model.NewRegistry()
	addNode(t, r, "a", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addNode(t, r, "b", geometry.Rect{X: 200, Y: 0, Width: 100, Height: 80})
	addConn(t, r, "flow1", model.SequenceFlow, "a", "b")
	m := modeler.New(r)

	edges := []*solver.ElkEdge{
		{ID: egraph.ProxyEdgeIDPrefix + "ghost", Sources: []string{"a"}, Targets: []string{"b"},
			Sections: []solver.ElkSection{{StartPoint: solver.ElkPoint{X: 0, Y: 0}, EndPoint: solver.ElkPoint{X: 1, Y: 1}}}},
		{ID: "flow1", Sources: []string{"a"}, Targets: []string{"b"},
			Sections: []solver.ElkSection{{StartPoint: solver.ElkPoint{X: 100, Y: 40}, EndPoint: solver.ElkPoint{X: 200, Y: 40}}}},
	}

	require.NoError(t, ApplySections(r, m, edges))

	c, _ := r.GetConnection("flow1")
	require.Len(t, c.Waypoints, 2)
	assert.Equal(t, 100.0, c.Waypoints[0].X)
	assert.Equal(t, 200.0, c.Waypoints[1].X)
	require.NotNil(t, c.OriginalStart)
}

func TestBoundaryOutflowRoute_ExitsBottomWhenTargetBelow(t *testing.T) {
	host := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80}
	target := geometry.Rect{X: 200, Y: 150, Width: 100, Height: 80}
	wps := BoundaryOutflowRoute(host, target)
	require.Len(t, wps, 3)
	assert.Equal(t, host.Bottom(), wps[0].Y)
	assert.Equal(t, target.X, wps[2].X)
}

func TestCrossPoolDogLeg_BuildsFourWaypointRoute(t *testing.T) {
	src := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80}
	tgt := geometry.Rect{X: 0, Y: 300, Width: 100, Height: 80}
	wps := CrossPoolDogLeg(src, tgt)
	require.Len(t, wps, 4)
	assert.Equal(t, wps[1].Y, wps[2].Y)
	assert.Equal(t, src.Bottom(), wps[0].Y)
	assert.Equal(t, tgt.Y, wps[3].Y)
}

func TestRouteFallback_UsesDogLegForNonOverlappingMessageFlow(t *testing.T) {
	r := model.NewRegistry()
	addNode(t, r, "a", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addNode(t, r, "b", geometry.Rect{X: 0, Y: 300, Width: 100, Height: 80})
	addConn(t, r, "mf1", model.MessageFlow, "a", "b")
	c, _ := r.GetConnection("mf1")

	wps := RouteFallback(r, c)
	require.Len(t, wps, 4)
}

func TestRouteFallback_NilForOverlappingYMessageFlow(t *testing.T) {
	r := model.NewRegistry()
	addNode(t, r, "a", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addNode(t, r, "b", geometry.Rect{X: 300, Y: 10, Width: 100, Height: 80})
	addConn(t, r, "mf1", model.MessageFlow, "a", "b")
	c, _ := r.GetConnection("mf1")

	assert.Nil(t, RouteFallback(r, c))
}

func TestAssociationRoute_IsCentreToCentre(t *testing.T) {
	src := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80}
	tgt := geometry.Rect{X: 200, Y: 200, Width: 60, Height: 60}
	wps := AssociationRoute(src, tgt)
	require.Len(t, wps, 2)
	assert.Equal(t, src.Center(), wps[0])
	assert.Equal(t, tgt.Center(), wps[1])
}

func TestSelfLoopRoute_BuildsFiveWaypointRectangle(t *testing.T) {
	bounds := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80}
	wps := SelfLoopRoute(bounds)
	require.Len(t, wps, 5)
	assert.Equal(t, bounds.Right(), wps[0].X)
	assert.Equal(t, bounds.Y+20, wps[0].Y)
	assert.Equal(t, bounds.CenterX(), wps[3].X)
	assert.Equal(t, bounds.Bottom(), wps[4].Y)
}

func TestApplySelfLoopRoutes_OnlyTouchesSameSourceTarget(t *testing.T) {
	r := model.NewRegistry()
	addNode(t, r, "a", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addConn(t, r, "loop", model.SequenceFlow, "a", "a")
	m := modeler.New(r)

	require.NoError(t, ApplySelfLoopRoutes(r, m, []string{"loop"}))
	c, _ := r.GetConnection("loop")
	assert.Len(t, c.Waypoints, 5)
}

func TestSpaceParallelMessageFlows_EvenlyOffsetsGroupAroundMean(t *testing.T) {
	r := model.NewRegistry()
	addNode(t, r, "s1", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addNode(t, r, "s2", geometry.Rect{X: 10, Y: 0, Width: 100, Height: 80})
	addNode(t, r, "t1", geometry.Rect{X: 0, Y: 300, Width: 100, Height: 80})
	addNode(t, r, "t2", geometry.Rect{X: 10, Y: 300, Width: 100, Height: 80})
	addConn(t, r, "mf1", model.MessageFlow, "s1", "t1")
	addConn(t, r, "mf2", model.MessageFlow, "s2", "t2")
	m := modeler.New(r)

	c1, _ := r.GetConnection("mf1")
	c1.Waypoints = CrossPoolDogLeg(geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80}, geometry.Rect{X: 0, Y: 300, Width: 100, Height: 80})
	c2, _ := r.GetConnection("mf2")
	c2.Waypoints = CrossPoolDogLeg(geometry.Rect{X: 10, Y: 0, Width: 100, Height: 80}, geometry.Rect{X: 10, Y: 300, Width: 100, Height: 80})

	require.NoError(t, SpaceParallelMessageFlows(r, m, []string{"mf1", "mf2"}))

	c1, _ = r.GetConnection("mf1")
	c2, _ = r.GetConnection("mf2")
	assert.NotEqual(t, c1.Waypoints[1].Y, c2.Waypoints[1].Y)
	assert.InDelta(t, ParallelSpacingStep, c2.Waypoints[1].Y-c1.Waypoints[1].Y, 0.001)
}

func TestOrthogonalSnap_SnapsNearDiagonalLeavesTrueDiagonalAlone(t *testing.T) {
	nearDiagonal := []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 3}}
	snapped := OrthogonalSnap(nearDiagonal, SegmentOrthoSnap)
	assert.Equal(t, 0.0, snapped[1].Y)

	trueDiagonal := []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 100}}
	unsnapped := OrthogonalSnap(trueDiagonal, SegmentOrthoSnap)
	assert.Equal(t, 100.0, unsnapped[1].Y)

	alreadyFlush := []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0.5}}
	leftAlone := OrthogonalSnap(alreadyFlush, SegmentOrthoSnap)
	assert.Equal(t, 0.5, leftAlone[1].Y)
}

func TestRepairNeighbourEdge_SameRowIsStraightLine(t *testing.T) {
	src := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80}
	tgt := geometry.Rect{X: 300, Y: 0, Width: 100, Height: 80}
	wps := RepairNeighbourEdge(src, tgt, geometry.Rect{X: 0, Y: 0, Width: 400, Height: 80})
	require.Len(t, wps, 2)
	assert.Equal(t, src.CenterY(), wps[0].Y)
}

func TestRepairNeighbourEdge_BackwardBuildsUShapeAroundBBox(t *testing.T) {
	src := geometry.Rect{X: 300, Y: 0, Width: 100, Height: 80}
	tgt := geometry.Rect{X: 0, Y: 200, Width: 100, Height: 80}
	flowBBox := geometry.Rect{X: 0, Y: 0, Width: 400, Height: 280}
	wps := RepairNeighbourEdge(src, tgt, flowBBox)
	require.Len(t, wps, 4)
	assert.Greater(t, wps[1].Y, flowBBox.Bottom())
}

func TestApplyNeighbourRepair_OnlyTouchesBridgingConnections(t *testing.T) {
	r := model.NewRegistry()
	addNode(t, r, "a", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addNode(t, r, "b", geometry.Rect{X: 300, Y: 0, Width: 100, Height: 80})
	addNode(t, r, "c", geometry.Rect{X: 600, Y: 0, Width: 100, Height: 80})
	addConn(t, r, "bridge", model.SequenceFlow, "a", "b")
	addConn(t, r, "inside", model.SequenceFlow, "b", "c")
	m := modeler.New(r)

	relaidOut := map[string]bool{"b": true, "c": true}
	flowBBox := geometry.Rect{X: 0, Y: 0, Width: 700, Height: 80}

	require.NoError(t, ApplyNeighbourRepair(r, m, relaidOut, flowBBox))

	bridge, _ := r.GetConnection("bridge")
	inside, _ := r.GetConnection("inside")
	assert.NotEqual(t, placeholderWaypoints(), bridge.Waypoints)
	assert.Equal(t, placeholderWaypoints(), inside.Waypoints)
}

func TestRun_AppliesFullPipelineAcrossConnectionKinds(t *testing.T) {
	r := model.NewRegistry()
	addNode(t, r, "a", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addNode(t, r, "b", geometry.Rect{X: 200, Y: 0, Width: 100, Height: 80})
	addNode(t, r, "note", geometry.Rect{X: 0, Y: 200, Width: 80, Height: 40})
	addConn(t, r, "flow1", model.SequenceFlow, "a", "b")
	addConn(t, r, "assoc1", model.Association, "a", "note")
	addConn(t, r, "loop1", model.SequenceFlow, "a", "a")
	m := modeler.New(r)

	root := &solver.ElkNode{
		ID: model.RootID,
		Edges: []*solver.ElkEdge{
			{ID: "flow1", Sources: []string{"a"}, Targets: []string{"b"}, Sections: []solver.ElkSection{
				{StartPoint: solver.ElkPoint{X: 100, Y: 40}, EndPoint: solver.ElkPoint{X: 200, Y: 40}},
			}},
		},
	}

	require.NoError(t, Run(r, m, root))

	flow1, _ := r.GetConnection("flow1")
	assoc1, _ := r.GetConnection("assoc1")
	loop1, _ := r.GetConnection("loop1")
	assert.Len(t, flow1.Waypoints, 2)
	assert.Len(t, assoc1.Waypoints, 2)
	assert.Len(t, loop1.Waypoints, 5)
}
