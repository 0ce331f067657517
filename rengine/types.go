package rengine

// Default origin and spacing for a rebuild positioning pass.
const (
	DefaultOriginX       = 180.0
	DefaultOriginY       = 200.0
	DefaultGap           = 50.0
	DefaultBranchSpacing = 130.0
)

// Options configures one R-engine positioning pass.
type Options struct {
	OriginX, OriginY float64
	Gap              float64
	BranchSpacing    float64

	// ExcludeIDs are never assigned a position (left untouched).
	ExcludeIDs map[string]bool
	// PinnedIDs are assigned a position in the table but never actually
	// moved by Apply.
	PinnedIDs map[string]bool
	// LaneCentreY overrides a node's computed y with a lane's centre-y.
	LaneCentreY map[string]float64
}

// DefaultOptions returns the default origin/spacing with empty id sets.
func DefaultOptions() Options {
	return Options{
		OriginX:       DefaultOriginX,
		OriginY:       DefaultOriginY,
		Gap:           DefaultGap,
		BranchSpacing: DefaultBranchSpacing,
		ExcludeIDs:    map[string]bool{},
		PinnedIDs:     map[string]bool{},
		LaneCentreY:   map[string]float64{},
	}
}

// Position is one element's computed centre point.
type Position struct {
	X, Y float64
}
