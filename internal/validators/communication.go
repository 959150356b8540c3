package validators

import "github.com/metalagman/protovet/internal/rubric"

// NewCommunication builds the client-communication validator. Touchpoints
// and cadence may appear anywhere in the document, so every dimension
// scans the full text.
//
// Dimension shapes: client_touchpoints count/3, tone_guidance composite/1,
// escalation_path composite/1, update_cadence composite/1,
// stakeholder_matrix ratio/3.
func NewCommunication() *Validator {
	return Must(New("communication", []Dimension{
		{
			Name:   "client_touchpoints",
			Weight: 0.25,
			Score:  countScorer("touchpoints", rubric.TouchpointItem, 3),
		},
		{
			Name:   "tone_guidance",
			Weight: 0.20,
			Score: compositeScorer([]check{
				{"tone", rubric.ToneGuidance, "No tone or voice guidance for client communication"},
			}),
		},
		{
			Name:   "escalation_path",
			Weight: 0.20,
			Score: compositeScorer([]check{
				{"escalation", rubric.EscalationPath, "No escalation path documented"},
			}),
		},
		{
			Name:   "update_cadence",
			Weight: 0.15,
			Score: compositeScorer([]check{
				{"cadence", rubric.UpdateCadence, "No update cadence documented"},
			}),
		},
		{
			Name:   "stakeholder_matrix",
			Weight: 0.20,
			Score: ratioScorer([]check{
				{"stakeholders_named", rubric.StakeholderMatrix, "No stakeholders identified"},
				{"stakeholder_entries", rubric.StakeholderEntry, "Stakeholders are not itemized"},
				{"matrix_table", rubric.TableRow, "No stakeholder matrix table"},
			}),
		},
	}))
}
