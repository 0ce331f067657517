// Package boundary identifies boundary events and computes each one's
// exception chain: the flow nodes reachable from the boundary event whose
// every incoming sequence flow originates from either a boundary event or
// another exception-chain element.
//
// The fixed-point expansion is a queue-driven traversal with a visit hook
// that can reject a node and thereby prune the frontier — "visit only
// nodes whose every predecessor already qualifies", re-evaluating the
// frontier until a pass adds nothing new.
package boundary
