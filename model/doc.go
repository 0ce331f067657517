// Package model defines the in-memory BPMN diagram graph: elements
// (flow nodes, participants, lanes, boundary events, artifacts, labels,
// infrastructure) and connections (sequence/message flows, associations),
// plus the thread-safe Registry that owns them.
//
// References between elements are never owning pointers — a Connection's
// SourceID/TargetID, a BoundaryEvent's HostID, and an Element's ParentID are
// all plain string ids resolved through the Registry, so the graph stays an
// arena of stable ids rather than a web of cyclic pointers. Element kind and
// connection kind are closed tagged variants (ElementKind, ConnectionKind);
// a small Extensions bag absorbs rarely-used BPMN-XML attributes without
// exploding the struct.
//
// Registry is the only type in this package that mutates state directly.
// Other packages in this module change element geometry through
// github.com/katalvlaran/bpmnlayout/modeler, which keeps diagram-interchange
// bounds synchronized with the bounding box invariant; lane's column-mode
// banding and layout's grid snap are the two passes that write bounds or
// waypoints directly.
package model
