// Package spatialgrid implements a uniform 2-D spatial index over shape
// bounding boxes, used for O(k) proximity queries (nearest lane, overlapping
// artifact, boundary-host search) instead of scanning every element in the
// registry.
//
// The index partitions the plane into fixed-size cells (default 200x200 px)
// and inserts each shape's id into every cell its bounding box
// touches. A query expands the search rect by an optional margin, visits the
// touched cells, and returns the deduplicated union of entries found there —
// the same cell-bucket approach gridgraph/ uses to index a regular 2-D grid
// of values, adapted here from integer cell values to diagram shape ids.
package spatialgrid
