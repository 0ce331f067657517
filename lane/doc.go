// Package lane computes lane band geometry inside a participant: row bands
// (horizontal tiling, used when the flow direction is RIGHT/LEFT) or column
// bands (vertical tiling, used when the flow direction is DOWN/UP), orphan
// flow-node assignment, and lane-order optimisation.
//
// The banding arithmetic builds a variable-height/width tiling driven by
// each lane's actual content extent, the same option-driven row/column
// sizing shape as a dense grid layout generalised to variable band sizes.
// Lane-order optimisation runs a brute-force permutation search below a
// size threshold and an adjacent-swap local search above it: exact where
// it's cheap, heuristic once it isn't.
package lane
