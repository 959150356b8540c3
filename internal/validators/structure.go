package validators

import "github.com/metalagman/protovet/internal/rubric"

// NewStructure builds the workflow structure validator.
//
// Dimension shapes: phase_definitions count/3, step_numbering ratio/3,
// entry_exit_criteria composite/2, decision_points count/2,
// checklist_usage count/4.
func NewStructure() *Validator {
	return Must(New("structure", []Dimension{
		{
			Name:    "phase_definitions",
			Weight:  0.30,
			Section: "Workflow",
			Score:   countScorer("phase_headings", rubric.PhaseHeading, 3),
		},
		{
			Name:    "step_numbering",
			Weight:  0.20,
			Section: "Workflow",
			Score: ratioScorer([]check{
				{"numbered_steps", rubric.NumberedStep, "Workflow has no numbered steps"},
				{"starts_at_one", rubric.FirstStep, "Numbered steps do not start at 1"},
				{"bulleted_detail", rubric.BulletItem, "Workflow steps carry no bulleted detail"},
			}),
		},
		{
			Name:    "entry_exit_criteria",
			Weight:  0.20,
			Section: "Workflow",
			Score: compositeScorer([]check{
				{"entry_criteria", rubric.EntryCriteria, "No entry criteria documented"},
				{"exit_criteria", rubric.ExitCriteria, "No exit criteria documented"},
			}),
		},
		{
			Name:    "decision_points",
			Weight:  0.15,
			Section: "Workflow",
			Score:   countScorer("decision_points", rubric.DecisionPoint, 2),
		},
		{
			Name:    "checklist_usage",
			Weight:  0.15,
			Section: "Workflow",
			Score:   countScorer("checklist_items", rubric.ChecklistItem, 4),
		},
	}))
}
