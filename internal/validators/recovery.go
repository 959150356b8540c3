package validators

import "github.com/metalagman/protovet/internal/rubric"

// NewRecovery builds the failure-recovery validator.
//
// Dimension shapes: failure_modes count/2, rollback_procedures
// composite/1, contingency_plans ratio/2, detection_signals composite/1,
// recovery_owners composite/1.
func NewRecovery() *Validator {
	return Must(New("recovery", []Dimension{
		{
			Name:    "failure_modes",
			Weight:  0.30,
			Section: "Failure Recovery",
			Score:   countScorer("failure_modes", rubric.FailureMode, 2),
		},
		{
			Name:    "rollback_procedures",
			Weight:  0.25,
			Section: "Failure Recovery",
			Score: compositeScorer([]check{
				{"rollback", rubric.RollbackStep, "No rollback or revert procedure documented"},
			}),
		},
		{
			Name:    "contingency_plans",
			Weight:  0.15,
			Section: "Failure Recovery",
			Score: ratioScorer([]check{
				{"contingency", rubric.ContingencyPlan, "No contingency plan documented"},
				{"itemized", rubric.BulletItem, "Contingency steps are not itemized"},
			}),
		},
		{
			Name:    "detection_signals",
			Weight:  0.15,
			Section: "Failure Recovery",
			Score: compositeScorer([]check{
				{"detection", rubric.DetectionSignal, "No failure detection signals documented"},
			}),
		},
		{
			Name:    "recovery_owners",
			Weight:  0.15,
			Section: "Failure Recovery",
			Score: compositeScorer([]check{
				{"recovery_owner", rubric.RecoveryOwner, "No recovery owner assigned"},
			}),
		},
	}))
}
