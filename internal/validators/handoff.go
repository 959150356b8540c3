package validators

import "github.com/metalagman/protovet/internal/rubric"

// NewHandoff builds the cross-protocol handoff validator.
//
// Dimension shapes: upstream_inputs ratio/2, downstream_outputs ratio/2,
// handoff_checklist count/3, context_transfer composite/1,
// continuity_owner composite/1.
func NewHandoff() *Validator {
	return Must(New("handoff", []Dimension{
		{
			Name:    "upstream_inputs",
			Weight:  0.25,
			Section: "Integration",
			Score: ratioScorer([]check{
				{"upstream", rubric.UpstreamMention, "No upstream protocol named"},
				{"protocol_ref", rubric.ProtocolRef, "Upstream inputs are not tied to a protocol number"},
			}),
		},
		{
			Name:    "downstream_outputs",
			Weight:  0.25,
			Section: "Integration",
			Score: ratioScorer([]check{
				{"downstream", rubric.DownstreamMention, "No downstream protocol named"},
				{"artifacts", rubric.SharedArtifact, "No artifacts listed for handoff"},
			}),
		},
		{
			Name:    "handoff_checklist",
			Weight:  0.20,
			Section: "Integration",
			Score:   countScorer("handoff_items", rubric.BulletItem, 3),
		},
		{
			Name:    "context_transfer",
			Weight:  0.15,
			Section: "Integration",
			Score: compositeScorer([]check{
				{"context_transfer", rubric.ContextTransfer, "No context transfer document or briefing specified"},
			}),
		},
		{
			Name:    "continuity_owner",
			Weight:  0.15,
			Section: "Integration",
			Score: compositeScorer([]check{
				{"continuity_owner", rubric.ContinuityOwner, "No continuity owner for the handoff"},
			}),
		},
	}))
}
