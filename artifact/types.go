package artifact

// DefaultSearchHeight bounds how far a linked artifact may shift right
// before placement instead shifts it down a row.
const DefaultSearchHeight = 120.0

// DefaultSpacing is the horizontal gap between sibling artifacts placed
// around the same linked element, and the gap used when stacking unlinked
// artifacts into a row.
const DefaultSpacing = 20.0

// DefaultGroupPadding is the margin added around a Group's wrapped
// descendants.
const DefaultGroupPadding = 30.0

// Options configures a Run call. The zero value sets every field to 0; use
// DefaultOptions() for the package defaults.
type Options struct {
	SearchHeight float64
	Spacing      float64
	GroupPadding float64
}

// DefaultOptions returns the default artifact-placement constants.
func DefaultOptions() Options {
	return Options{
		SearchHeight: DefaultSearchHeight,
		Spacing:      DefaultSpacing,
		GroupPadding: DefaultGroupPadding,
	}
}
