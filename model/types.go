package model

import "github.com/katalvlaran/bpmnlayout/geometry"

// ElementKind is the closed set of top-level element variants.
type ElementKind int

const (
	KindFlowNode ElementKind = iota
	KindParticipant
	KindLane
	KindBoundaryEvent
	KindArtifact
	KindLabel
	KindInfrastructure
)

func (k ElementKind) String() string {
	switch k {
	case KindFlowNode:
		return "FlowNode"
	case KindParticipant:
		return "Participant"
	case KindLane:
		return "Lane"
	case KindBoundaryEvent:
		return "BoundaryEvent"
	case KindArtifact:
		return "Artifact"
	case KindLabel:
		return "Label"
	case KindInfrastructure:
		return "Infrastructure"
	default:
		return "Unknown"
	}
}

// FlowNodeKind is the closed set of flow-node sub-kinds. It is shared by
// KindFlowNode elements and by the Sub field of BoundaryData, since a
// boundary event is itself an event sub-kind attached to a host.
type FlowNodeKind int

const (
	NodeTask FlowNodeKind = iota
	NodeUserTask
	NodeServiceTask
	NodeScriptTask
	NodeManualTask
	NodeBusinessRuleTask
	NodeSendTask
	NodeReceiveTask
	NodeStartEvent
	NodeIntermediateCatchEvent
	NodeIntermediateThrowEvent
	NodeEndEvent
	NodeExclusiveGateway
	NodeParallelGateway
	NodeInclusiveGateway
	NodeEventBasedGateway
	NodeComplexGateway
	NodeSubProcessCollapsed
	NodeSubProcessExpanded
	NodeCallActivity
)

// IsGateway reports whether k is one of the gateway sub-kinds.
func (k FlowNodeKind) IsGateway() bool {
	switch k {
	case NodeExclusiveGateway, NodeParallelGateway, NodeInclusiveGateway, NodeEventBasedGateway, NodeComplexGateway:
		return true
	default:
		return false
	}
}

// IsStartEvent reports whether k is the start-event sub-kind.
func (k FlowNodeKind) IsStartEvent() bool { return k == NodeStartEvent }

// IsSubProcess reports whether k is a (collapsed or expanded) sub-process.
func (k FlowNodeKind) IsSubProcess() bool {
	return k == NodeSubProcessCollapsed || k == NodeSubProcessExpanded
}

// ConnectionKind is the closed set of connection variants.
type ConnectionKind int

const (
	SequenceFlow ConnectionKind = iota
	MessageFlow
	Association
	DataInputAssociation
	DataOutputAssociation
)

// ArtifactKind is the closed set of artifact sub-kinds.
type ArtifactKind int

const (
	DataObjectRef ArtifactKind = iota
	DataStoreRef
	TextAnnotation
	Group
)

// EventDefinition narrows an event's trigger/result for boundary border and
// exception-chain decisions that care about error vs. message vs. timer etc.
// It is informational only; the layout engine treats all definitions alike
// except where a caller-supplied hint says otherwise.
type EventDefinition int

const (
	EventDefinitionNone EventDefinition = iota
	EventDefinitionMessage
	EventDefinitionTimer
	EventDefinitionError
	EventDefinitionEscalation
	EventDefinitionSignal
	EventDefinitionConditional
	EventDefinitionCompensation
)

// Border identifies one of a rectangle's four edges, used for boundary-event
// and lane-label placement.
type Border int

const (
	BorderTop Border = iota
	BorderRight
	BorderBottom
	BorderLeft
)

// Direction is the closed set of layout directions shared by lane banding,
// the public layout options, and the external solver's `elk.direction`
// option.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionDown
	DirectionLeft
	DirectionUp
)

// IsHorizontal reports whether d lays out lanes as horizontal row bands
// (RIGHT/LEFT flow) as opposed to vertical column bands (DOWN/UP flow).
func (d Direction) IsHorizontal() bool { return d == DirectionRight || d == DirectionLeft }

func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "RIGHT"
	case DirectionDown:
		return "DOWN"
	case DirectionLeft:
		return "LEFT"
	case DirectionUp:
		return "UP"
	default:
		return "UNKNOWN"
	}
}

// FlowNodeData carries fields specific to KindFlowNode elements.
type FlowNodeData struct {
	Sub        FlowNodeKind
	EventDef   EventDefinition
	InLaneID   string // "" if not in a lane
}

// BoundaryData carries fields specific to KindBoundaryEvent elements.
type BoundaryData struct {
	Sub      FlowNodeKind // always one of the catch-event kinds
	EventDef EventDefinition
	HostID   string // weak reference to the host Task/SubProcess
	Border   Border
	// RelativeOffset is the 0..1 position along Border where the event's
	// centre sits, captured so a post-layout restore can reproduce it.
	RelativeOffset float64
}

// ArtifactData carries fields specific to KindArtifact elements.
type ArtifactData struct {
	Sub              ArtifactKind
	CategoryValueRef string // non-empty only for Group elements
}

// ParticipantData carries fields specific to KindParticipant elements.
type ParticipantData struct {
	LabelBorder Border
	LaneIDs     []string // ordered lane ids, empty if the pool has no lanes
}

// LaneData carries fields specific to KindLane elements.
type LaneData struct {
	FlowNodeRefs map[string]struct{}
}

// Element is a node of the diagram graph: a flow node, participant, lane,
// boundary event, artifact, label, or infrastructure element. Exactly one of
// the kind-specific payload pointers is non-nil, selected by Kind.
type Element struct {
	ID       string
	Kind     ElementKind
	ParentID string // "" only for the canvas root
	LabelID  string // "" if unlabeled

	Bounds   geometry.Rect
	DIBounds geometry.Rect // mirrors Bounds at every observable boundary

	Extensions map[string]interface{}

	FlowNode    *FlowNodeData
	Boundary    *BoundaryData
	Artifact    *ArtifactData
	Participant *ParticipantData
	Lane        *LaneData
}

// IsFlowNode reports whether e participates in the flow graph: everything
// except boundary events, connections, artifacts, lanes, labels,
// participants and infrastructure.
func (e *Element) IsFlowNode() bool { return e.Kind == KindFlowNode }

// Connection is an edge of the diagram graph: a sequence flow, message flow,
// association, or data association. Endpoints are weak references resolved
// through the owning Registry.
type Connection struct {
	ID       string
	Kind     ConnectionKind
	SourceID string
	TargetID string

	// Waypoints is the ordered polyline, always length >= 2.
	Waypoints []geometry.Point

	// OriginalStart/OriginalEnd preserve the pre-cropped docking point for
	// each endpoint, used by interactive re-cropping after layout. Nil when
	// no original point has been recorded yet.
	OriginalStart *geometry.Point
	OriginalEnd   *geometry.Point

	Extensions map[string]interface{}
}

// SetOriginalStart records the pre-cropped docking point for the source end.
func (c *Connection) SetOriginalStart(p geometry.Point) { c.OriginalStart = &p }

// SetOriginalEnd records the pre-cropped docking point for the target end.
func (c *Connection) SetOriginalEnd(p geometry.Point) { c.OriginalEnd = &p }

// FirstWaypoint returns the connection's first waypoint.
func (c *Connection) FirstWaypoint() geometry.Point { return c.Waypoints[0] }

// LastWaypoint returns the connection's last waypoint.
func (c *Connection) LastWaypoint() geometry.Point { return c.Waypoints[len(c.Waypoints)-1] }
