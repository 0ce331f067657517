// Package artifact places DataObjectRef, DataStoreRef, TextAnnotation and
// Group shapes after node placement has settled.
//
// Linked artifacts (joined to a flow element by an Association or data
// association) spread horizontally around their linked element, tracking a
// growing occupied-rect list so siblings shift right, then down, rather than
// overlap. Unlinked artifacts fall back to a row along the flow bounding
// box. Groups are a structural container, not an icon: a Group with
// layoutable descendants resizes to wrap them, otherwise it clamps to the
// flow bbox centre.
//
// The occupied-rect bookkeeping grows a dedup/overlap record one step at a
// time instead of recomputing global state per candidate.
package artifact
