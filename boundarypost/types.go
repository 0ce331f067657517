package boundarypost

// DefaultBorderFraction is the 2/3 position along a border a single
// boundary event docks at by default.
const DefaultBorderFraction = 2.0 / 3.0

// DefaultChainGap is the fixed vertical gap between a host's edge and its
// exception chain's row, and the horizontal gap between the facing edges of
// consecutive chain elements.
const DefaultChainGap = 50.0

// Options configures one boundary post-processing pass.
type Options struct {
	ChainGap float64
}

// DefaultOptions returns the default boundary post-processing options.
func DefaultOptions() Options {
	return Options{ChainGap: DefaultChainGap}
}
