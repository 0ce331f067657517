package routing

// Tolerances and margins for routing/snap geometry.
const (
	// SegmentOrthoSnap is the smaller-axis delta below which a section
	// segment is treated as already orthogonal and snapped flush.
	SegmentOrthoSnap = 8.0

	// EndpointSnapTolerance is how close a 2-waypoint horizontal flow's
	// endpoints must sit to their shape's centre-y before routing snaps
	// them onto the actual right/left edge.
	EndpointSnapTolerance = 10.0

	// SelfLoopMarginH/V are the outward offsets of a self-loop's side and
	// bottom legs past the shape's own bounds.
	SelfLoopMarginH = 20.0
	SelfLoopMarginV = 20.0

	// BoundaryProximityTolerance bounds how far a boundary event's host
	// border exit point may drift before a fallback route is considered
	// degenerate (shared with boundarypost's restore pass).
	BoundaryProximityTolerance = 60.0

	// ParallelGroupThreshold buckets message flows whose source-centre x
	// values fall within this distance of each other into one group.
	ParallelGroupThreshold = 40.0

	// ParallelSpacingStep is the fixed offset between adjacent message
	// flows' dog-leg mid-y once grouped.
	ParallelSpacingStep = 30.0

	// orthoSnapMinDelta is the "already orthogonal, do nothing" floor for
	// the generic orthogonal snap pass.
	orthoSnapMinDelta = 1.0
)
