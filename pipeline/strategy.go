package pipeline

import "github.com/katalvlaran/bpmnlayout/model"

// Strategy is the closed set of layout strategies SelectLayoutStrategy
// chooses between.
type Strategy string

const (
	StrategyDeterministic Strategy = "deterministic"
	StrategyCollaboration Strategy = "collaboration"
	StrategyLanes         Strategy = "lanes"
	StrategyFull          Strategy = "full"
)

// TrivialFlowNodeLimit is the "trivial" cutoff on flow-node count.
const TrivialFlowNodeLimit = 20

// TrivialGatewayBranchingLimit is the "trivial" cutoff on average
// gateway out-degree.
const TrivialGatewayBranchingLimit = 2.5

// Stats is the raw counts SelectLayoutStrategy bases its decision on.
type Stats struct {
	FlowNodes               int
	SequenceFlows           int
	MessageFlows            int
	Participants            int
	Lanes                   int
	ExpandedSubProcesses    int
	BoundaryEvents          int
	AverageGatewayBranching float64
}

// StrategyResult is SelectLayoutStrategy's return value:
// {strategy, reason, confidence, stats}.
type StrategyResult struct {
	Strategy   Strategy
	Reason     string
	Confidence float64
	Stats      Stats
}

// SelectLayoutStrategy classifies registry into one of the four layout
// strategies, in priority order: trivial diagrams go deterministic; any
// participant pair or message flow forces collaboration; two or more lanes
// force lanes; everything else falls through to full. The result is a pure
// function of the registry's current counts, so it is deterministic for a
// given registry.
func SelectLayoutStrategy(registry *model.Registry) StrategyResult {
	stats := computeStats(registry)

	trivial := stats.FlowNodes <= TrivialFlowNodeLimit &&
		stats.Lanes == 0 &&
		stats.BoundaryEvents == 0 &&
		stats.ExpandedSubProcesses == 0 &&
		stats.MessageFlows == 0 &&
		stats.AverageGatewayBranching <= TrivialGatewayBranchingLimit

	switch {
	case trivial:
		return StrategyResult{
			Strategy:   StrategyDeterministic,
			Reason:     "diagram is small, flat, and has no lanes, boundary events, or message flows",
			Confidence: 1.0,
			Stats:      stats,
		}
	case stats.Participants >= 2 || stats.MessageFlows > 0:
		return StrategyResult{
			Strategy:   StrategyCollaboration,
			Reason:     "diagram spans multiple participants or carries a message flow",
			Confidence: 0.9,
			Stats:      stats,
		}
	case stats.Lanes >= 2:
		return StrategyResult{
			Strategy:   StrategyLanes,
			Reason:     "diagram has two or more lanes to band",
			Confidence: 0.85,
			Stats:      stats,
		}
	default:
		return StrategyResult{
			Strategy:   StrategyFull,
			Reason:     "diagram needs the full E-engine pipeline but fits in one participant",
			Confidence: 0.7,
			Stats:      stats,
		}
	}
}

func computeStats(registry *model.Registry) Stats {
	var s Stats
	gatewayCount := 0
	gatewayOutDegree := 0

	for _, e := range registry.GetAll() {
		switch e.Kind {
		case model.KindFlowNode:
			s.FlowNodes++
			if e.FlowNode != nil {
				if e.FlowNode.Sub == model.NodeSubProcessExpanded {
					s.ExpandedSubProcesses++
				}
				if e.FlowNode.Sub.IsGateway() {
					gatewayCount++
					gatewayOutDegree += len(registry.Outgoing(e.ID))
				}
			}
		case model.KindParticipant:
			s.Participants++
		case model.KindLane:
			s.Lanes++
		case model.KindBoundaryEvent:
			s.BoundaryEvents++
		}
	}

	for _, c := range registry.AllConnections() {
		switch c.Kind {
		case model.SequenceFlow:
			s.SequenceFlows++
		case model.MessageFlow:
			s.MessageFlows++
		}
	}

	if gatewayCount > 0 {
		s.AverageGatewayBranching = float64(gatewayOutDegree) / float64(gatewayCount)
	}
	return s
}
