package validators

import (
	"fmt"

	"github.com/metalagman/protovet/internal/rubric"
	"github.com/metalagman/protovet/internal/section"
)

// RequiredSections is the canonical heading set every protocol document
// must carry, in document order.
var RequiredSections = []string{
	"Purpose",
	"Prerequisites",
	"Workflow",
	"Deliverables",
	"Quality Gates",
	"Integration",
	"Compliance",
	"Failure Recovery",
	"References",
}

// NewIdentity builds the protocol identity validator.
//
// Dimension shapes: basic_information ratio/6, prerequisites composite/3,
// integration_mapping composite/3, compliance_standards ratio/4,
// section_completeness ratio/9. The basic_information weight is high
// enough that a single missing identity field (5/6 = 0.833) pulls the
// overall score into the warning band.
func NewIdentity() *Validator {
	return Must(New("identity", []Dimension{
		{
			Name:   "basic_information",
			Weight: 0.35,
			Score: ratioScorer([]check{
				{"title", rubric.TitleHeading, "Top-level title heading missing"},
				{"protocol_id", rubric.ProtocolIDField, "Protocol ID field missing"},
				{"version", rubric.SemanticVersion, "Semantic version line missing"},
				{"objective", rubric.ObjectiveField, "Objective field missing"},
				{"owner", rubric.OwnerField, "Owner field missing"},
				{"duration", rubric.DurationField, "Estimated duration field missing"},
			}),
		},
		{
			Name:    "prerequisites",
			Weight:  0.15,
			Section: "Prerequisites",
			Score: compositeScorer([]check{
				{"required_inputs", rubric.RequiredInputs, "Prerequisites do not list required inputs"},
				{"required_approvals", rubric.RequiredApprovals, "Prerequisites do not list required approvals"},
				{"environment_tooling", rubric.EnvironmentTooling, "Prerequisites do not cover environment or tooling"},
			}),
		},
		{
			Name:    "integration_mapping",
			Weight:  0.15,
			Section: "Integration",
			Score: compositeScorer([]check{
				{"upstream", rubric.UpstreamMention, "Integration section missing upstream protocol reference"},
				{"downstream", rubric.DownstreamMention, "Integration section missing downstream protocol reference"},
				{"shared_artifacts", rubric.SharedArtifact, "Integration section missing shared artifact list"},
			}),
		},
		{
			Name:    "compliance_standards",
			Weight:  0.15,
			Section: "Compliance",
			Score: ratioScorer([]check{
				{"standards_section", rubric.StandardsMention, "Compliance section does not mention standards"},
				{"named_standard", rubric.NamedStandard, "No named standard referenced"},
				{"review_checkpoint", rubric.ReviewCheckpoint, "No review checkpoint documented"},
				{"signoff", rubric.SignoffRequire, "No sign-off requirement documented"},
			}),
		},
		{
			Name:   "section_completeness",
			Weight: 0.20,
			Score:  sectionCompleteness,
		},
	}))
}

func sectionCompleteness(_, document string) rubric.DimensionResult {
	found := make(map[string]any, len(RequiredSections))
	var issues []string
	present := 0
	for _, name := range RequiredSections {
		ok := section.Has(document, name)
		found[name] = ok
		if ok {
			present++
		} else {
			issues = append(issues, fmt.Sprintf("Required section missing: %s", name))
		}
	}
	return rubric.DimensionResult{
		Score:         rubric.RatioScore(present, len(RequiredSections)),
		Issues:        issues,
		ElementsFound: found,
	}
}
