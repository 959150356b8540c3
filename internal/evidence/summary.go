package evidence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/metalagman/protovet/internal/rubric"
)

// ProtocolScore is one row of a summary report.
type ProtocolScore struct {
	ProtocolID string        `json:"protocol_id"`
	Status     rubric.Status `json:"status"`
	Score      float64       `json:"score"`
}

// Summary is the per-validator batch aggregate.
type Summary struct {
	Validator           string          `json:"validator"`
	ValidationTimestamp string          `json:"validation_timestamp"`
	TotalProtocols      int             `json:"total_protocols"`
	PassCount           int             `json:"pass_count"`
	WarningCount        int             `json:"warning_count"`
	FailCount           int             `json:"fail_count"`
	AverageScore        float64         `json:"average_score"`
	Protocols           []ProtocolScore `json:"protocols"`
}

// BuildSummary aggregates results for a single validator. Rows are sorted
// by protocol id ascending.
func BuildSummary(validator string, results []rubric.ValidationResult) Summary {
	s := Summary{
		Validator:           validator,
		ValidationTimestamp: rubric.Now(),
		TotalProtocols:      len(results),
	}
	total := 0.0
	for _, res := range results {
		total += res.OverallScore
		switch res.ValidationStatus {
		case rubric.StatusPass:
			s.PassCount++
		case rubric.StatusWarning:
			s.WarningCount++
		default:
			s.FailCount++
		}
		s.Protocols = append(s.Protocols, ProtocolScore{
			ProtocolID: res.ProtocolID,
			Status:     res.ValidationStatus,
			Score:      res.OverallScore,
		})
	}
	sort.Slice(s.Protocols, func(i, j int) bool {
		return s.Protocols[i].ProtocolID < s.Protocols[j].ProtocolID
	})
	if len(results) > 0 {
		s.AverageScore = total / float64(len(results))
	}
	return s
}

// SummaryPath returns the deterministic summary path for a validator.
func (w *Writer) SummaryPath(validator string) string {
	return filepath.Join(w.Dir, validator+"-summary.json")
}

// WriteSummary writes the batch summary for one validator. The caller is
// the sole writer of this file per invocation: it runs only after all
// per-protocol tasks have joined.
func (w *Writer) WriteSummary(s Summary) (Artifact, error) {
	path := w.SummaryPath(s.Validator)
	sum, err := writeJSON(path, s)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: path, SHA256: sum}, nil
}

// LoadResults reads every stored ValidationResult for a validator back
// from the validation directory. Used to regenerate summaries without
// re-running validation.
func (w *Writer) LoadResults(validator string) ([]rubric.ValidationResult, error) {
	matches, err := filepath.Glob(filepath.Join(w.Dir, "protocol-*-"+validator+".json"))
	if err != nil {
		return nil, fmt.Errorf("glob results: %w", err)
	}
	sort.Strings(matches)
	var results []rubric.ValidationResult
	for _, path := range matches {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read result %s: %w", path, err)
		}
		var res rubric.ValidationResult
		if err := json.Unmarshal(raw, &res); err != nil {
			return nil, fmt.Errorf("parse result %s: %w", path, err)
		}
		results = append(results, res)
	}
	return results, nil
}
