package layout

import "github.com/katalvlaran/bpmnlayout/model"

// Compactness is the closed set of "compactness" option values.
type Compactness string

const (
	CompactnessCompact  Compactness = "compact"
	CompactnessSpacious Compactness = "spacious"
)

// LaneStrategy selects whether lane order is preserved or optimised,
// mirroring lane.OrderStrategy at the public-API boundary so callers of
// this package never need to import lane directly.
type LaneStrategy int

const (
	LaneStrategyPreserve LaneStrategy = iota
	LaneStrategyOptimize
)

// Options is the public layout-options contract:
// {direction, nodeSpacing?, layerSpacing?, scopeElementId?,
// preserveHappyPath?, gridQuantum?, compactness?, laneStrategy?}. Build one
// with New and the With* constructors, a functional-options convention.
type Options struct {
	Direction         model.Direction
	NodeSpacing       float64
	LayerSpacing      float64
	ScopeElementID    string
	PreserveHappyPath bool
	GridQuantum       float64
	Compactness       Compactness
	LaneStrategy      LaneStrategy
}

// Option customises an Options under construction.
type Option func(*Options)

// DefaultOptions returns the package defaults: RIGHT direction, the
// rengine/solver default spacings, no scope restriction, spacious
// compactness, and lane order preserved.
func DefaultOptions() Options {
	return Options{
		Direction:    model.DirectionRight,
		NodeSpacing:  50.0,
		LayerSpacing: 130.0,
		Compactness:  CompactnessSpacious,
		LaneStrategy: LaneStrategyPreserve,
	}
}

// New builds an Options from DefaultOptions with opts applied in order.
func New(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDirection sets the layout flow direction.
func WithDirection(d model.Direction) Option {
	return func(o *Options) { o.Direction = d }
}

// WithNodeSpacing overrides the node-to-node spacing.
func WithNodeSpacing(v float64) Option {
	return func(o *Options) { o.NodeSpacing = v }
}

// WithLayerSpacing overrides the layer-to-layer (branch centre-to-centre)
// spacing.
func WithLayerSpacing(v float64) Option {
	return func(o *Options) { o.LayerSpacing = v }
}

// WithScopeElementID restricts the run to the named Participant or
// expanded SubProcess; "" (the default) means the whole canvas.
func WithScopeElementID(id string) Option {
	return func(o *Options) { o.ScopeElementID = id }
}

// WithPreserveHappyPath sets Options.PreserveHappyPath. Neither
// RunRebuildLayout nor RunFullLayout reads this field: boundary
// post-processing places exception chains and pushes their targets the same
// way whichever value is set.
func WithPreserveHappyPath(v bool) Option {
	return func(o *Options) { o.PreserveHappyPath = v }
}

// WithGridQuantum sets the coordinate-snapping grid quantum; 0 (the
// default) disables snapping.
func WithGridQuantum(v float64) Option {
	return func(o *Options) { o.GridQuantum = v }
}

// WithCompactness sets Options.Compactness. No layout step reads this
// field, so it does not change any spacing.
func WithCompactness(c Compactness) Option {
	return func(o *Options) { o.Compactness = c }
}

// WithLaneStrategy sets whether lane order is preserved or optimised.
func WithLaneStrategy(s LaneStrategy) Option {
	return func(o *Options) { o.LaneStrategy = s }
}
