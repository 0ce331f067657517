// Package topology analyses a container's flow graph: it extracts the graph
// of flow nodes and sequence flows, finds back-edges with a tri-colour DFS
// seeded from the sorted start nodes, assigns longest-path layers with a
// back-edge-aware Kahn topological sort, and detects gateway split/merge
// (fan-out/fan-in) patterns by tracing each branch forward.
//
// The longest-path layering uses a relaxation rule: update a node's layer
// only when a new candidate is strictly greater, the layering analogue of
// "only relax if strictly shorter". Gateway-pattern branch tracing fans out
// from each gateway and collects per-branch reachable sets via BFS.
package topology
