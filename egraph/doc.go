// Package egraph builds the recursive compound-node tree the external
// layered solver consumes: BuildContainerGraph walks a container's direct
// shape children, recursing into compound children (a Participant or
// expanded SubProcess with layoutable descendants) with per-container
// padding, and collects sequence/message/association edges scoped to the
// current children set plus synthetic boundary proxy-edges so the solver
// positions a boundary event's successor without needing the boundary
// event itself as a node.
//
// The builder adapts the registry's element/connection graph into an
// external graph representation, exporting into solver.ElkNode's own
// nested tree shape rather than a flat vertex/edge list.
package egraph
