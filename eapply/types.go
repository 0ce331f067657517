package eapply

// SignificantMoveThreshold is the smallest position delta worth writing
// back to the registry.
const SignificantMoveThreshold = 0.5

// SignificantResizeThreshold is the smallest width/height delta worth
// writing back for compound-node resizing.
const SignificantResizeThreshold = 5.0

// Thresholds bundles the move/resize significance cutoffs. The zero value
// sets both cutoffs to 0; use DefaultThresholds() for the package defaults.
type Thresholds struct {
	Move   float64
	Resize float64
}

// DefaultThresholds returns the default move/resize significance cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Move: SignificantMoveThreshold, Resize: SignificantResizeThreshold}
}
