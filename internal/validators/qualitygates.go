package validators

import "github.com/metalagman/protovet/internal/rubric"

// NewQualityGates builds the quality-gate documentation validator. It
// checks that a protocol documents its own gates, not that the gates pass.
//
// Dimension shapes: gate_definitions count/2, threshold_declarations
// ratio/2, halt_policy composite/1, evidence_requirements composite/2,
// gate_ordering composite/1.
func NewQualityGates() *Validator {
	return Must(New("gates", []Dimension{
		{
			Name:    "gate_definitions",
			Weight:  0.30,
			Section: "Quality Gates",
			Score:   countScorer("gate_definitions", rubric.GateDefinition, 2),
		},
		{
			Name:    "threshold_declarations",
			Weight:  0.20,
			Section: "Quality Gates",
			Score: ratioScorer([]check{
				{"threshold", rubric.ThresholdDecl, "No numeric pass threshold declared"},
				{"pass_fail_language", rubric.PassFailLanguage, "No pass/fail language around gates"},
			}),
		},
		{
			Name:    "halt_policy",
			Weight:  0.20,
			Section: "Quality Gates",
			Score: compositeScorer([]check{
				{"halt_on_fail", rubric.HaltPolicy, "No halt-on-fail policy documented"},
			}),
		},
		{
			Name:    "evidence_requirements",
			Weight:  0.15,
			Section: "Quality Gates",
			Score: compositeScorer([]check{
				{"evidence", rubric.EvidenceRequire, "Gates do not state evidence requirements"},
				{"manifest", rubric.ManifestReference, "Gates do not reference an evidence manifest"},
			}),
		},
		{
			Name:    "gate_ordering",
			Weight:  0.15,
			Section: "Quality Gates",
			Score: compositeScorer([]check{
				{"ordering", rubric.GateOrdering, "Gate execution order is not documented"},
			}),
		},
	}))
}
