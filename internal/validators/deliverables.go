package validators

import "github.com/metalagman/protovet/internal/rubric"

// NewDeliverables builds the deliverables validator.
//
// Dimension shapes: deliverable_definitions count/2, acceptance_criteria
// ratio/3, template_references composite/1, format_specifications
// composite/1, ownership_assignment ratio/2.
func NewDeliverables() *Validator {
	return Must(New("deliverables", []Dimension{
		{
			Name:    "deliverable_definitions",
			Weight:  0.30,
			Section: "Deliverables",
			Score:   countScorer("deliverable_entries", rubric.DeliverableItem, 2),
		},
		{
			Name:    "acceptance_criteria",
			Weight:  0.25,
			Section: "Deliverables",
			Score: ratioScorer([]check{
				{"acceptance_criteria", rubric.AcceptanceCriteria, "Deliverables carry no acceptance criteria"},
				{"itemized", rubric.BulletItem, "Acceptance criteria are not itemized"},
				{"measurable", rubric.MeasurableTerm, "Acceptance criteria are not measurable"},
			}),
		},
		{
			Name:    "template_references",
			Weight:  0.15,
			Section: "Deliverables",
			Score: compositeScorer([]check{
				{"template", rubric.TemplateRef, "No template referenced for deliverables"},
			}),
		},
		{
			Name:    "format_specifications",
			Weight:  0.15,
			Section: "Deliverables",
			Score: compositeScorer([]check{
				{"format", rubric.FormatSpec, "No delivery format specified"},
			}),
		},
		{
			Name:    "ownership_assignment",
			Weight:  0.15,
			Section: "Deliverables",
			Score: ratioScorer([]check{
				{"ownership", rubric.OwnershipTag, "Deliverables have no ownership assignment"},
				{"named_role", rubric.RoleMention, "No named role attached to deliverables"},
			}),
		},
	}))
}
