// Package rengine implements the topology-driven rebuild layout: a single
// forward sweep over the already-layered flow graph that places every node
// by predecessor position, keeps gateway branches symmetric around their
// split, aligns merge gateways to the rightmost incoming branch, and folds
// in a lane-centre override before handing the computed table to the
// modeler.
//
// The placement formulas compute a topology's final coordinates from a
// small set of closed-form rules rather than an iterative solver — the
// same "formula, not solver" approach generalised from fixed shapes
// (grid/star/path/wheel) to an arbitrary flow graph's
// predecessor/branch/merge relationships.
package rengine
