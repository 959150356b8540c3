// Package rubric defines the shared scoring vocabulary for protocol
// validation: result types, the process-wide status thresholds, and the
// numeric scoring shapes used by every dimension scorer.
package rubric

import "time"

// Status classifies a score against the shared thresholds.
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
)

// Shared classification breakpoints. Every validator must use Classify;
// duplicating these constants per validator is how cutoffs drift apart.
const (
	PassThreshold    = 0.95
	WarningThreshold = 0.80
)

// Classify maps a score in [0,1] to a status using the fixed breakpoints.
func Classify(score float64) Status {
	switch {
	case score >= PassThreshold:
		return StatusPass
	case score >= WarningThreshold:
		return StatusWarning
	default:
		return StatusFail
	}
}

// DimensionResult is the output of a single dimension scorer.
type DimensionResult struct {
	Dimension     string         `json:"dimension"`
	Score         float64        `json:"score"`
	Status        Status         `json:"status"`
	Issues        []string       `json:"issues"`
	ElementsFound map[string]any `json:"elements_found"`
}

// ValidationResult is the output of one validator for one protocol.
// Immutable once created; serialized as-is into evidence artifacts.
type ValidationResult struct {
	Validator        string                     `json:"validator"`
	ProtocolID       string                     `json:"protocol_id"`
	Timestamp        string                     `json:"timestamp"`
	Dimensions       map[string]DimensionResult `json:"dimensions"`
	OverallScore     float64                    `json:"overall_score"`
	ValidationStatus Status                     `json:"validation_status"`
	Issues           []string                   `json:"issues"`
	Recommendations  []string                   `json:"recommendations"`
}

// Now returns the timestamp format used in all results and manifests.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
