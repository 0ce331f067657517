package egraph

// ProxyEdgeIDPrefix marks a synthetic boundary-event proxy edge id, so a
// downstream consumer can distinguish it from a real connection id.
const ProxyEdgeIDPrefix = "boundary-proxy:"

// Padding values applied to a compound node before handing it to the
// solver, one per container-kind variant. These pad the
// solver's view of the container so its computed size leaves room for the
// chrome the container itself adds afterward (pool label band, lane
// bands, subprocess border) — the exact chrome geometry is re-applied by
// `lane`/`rengine` once the solver's result comes back through `eapply`.
const (
	PaddingPlain               = 40.0
	PaddingParticipant         = 30.0
	PaddingParticipantWithLane = 60.0
	PaddingEventSubProcess     = 20.0
)
