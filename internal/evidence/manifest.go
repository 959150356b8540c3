package evidence

import (
	"path/filepath"

	"github.com/metalagman/protovet/internal/rubric"
)

// Artifact is one referenced output file with its content checksum.
type Artifact struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
}

// ManifestStats summarizes an invocation's outcomes.
type ManifestStats struct {
	PassCount    int     `json:"pass_count"`
	WarningCount int     `json:"warning_count"`
	FailCount    int     `json:"fail_count"`
	AverageScore float64 `json:"average_score"`
}

// Manifest is the audit-traceability record of one engine invocation.
// ProtocolID is "batch" for multi-protocol runs. One file per invocation,
// assembled after all tasks complete; never updated incrementally.
type Manifest struct {
	GeneratedAt    string        `json:"generated_at"`
	ProtocolID     string        `json:"protocol_id"`
	PatternVersion string        `json:"pattern_version"`
	Artifacts      []Artifact    `json:"artifacts"`
	Stats          ManifestStats `json:"stats"`
}

// BatchProtocolID marks a manifest covering multiple protocols.
const BatchProtocolID = "batch"

// NewManifest starts a manifest for the given scope.
func NewManifest(protocolID string) *Manifest {
	return &Manifest{
		GeneratedAt:    rubric.Now(),
		ProtocolID:     protocolID,
		PatternVersion: rubric.PatternVersion,
	}
}

// Add appends an artifact reference.
func (m *Manifest) Add(a Artifact) {
	m.Artifacts = append(m.Artifacts, a)
}

// Tally folds one result into the summary statistics, keeping a running
// average over all recorded results.
func (m *Manifest) Tally(results ...rubric.ValidationResult) {
	n := m.Stats.PassCount + m.Stats.WarningCount + m.Stats.FailCount
	total := m.Stats.AverageScore * float64(n)
	for _, res := range results {
		switch res.ValidationStatus {
		case rubric.StatusPass:
			m.Stats.PassCount++
		case rubric.StatusWarning:
			m.Stats.WarningCount++
		default:
			m.Stats.FailCount++
		}
		total += res.OverallScore
		n++
	}
	if n > 0 {
		m.Stats.AverageScore = total / float64(n)
	}
}

// ManifestPath returns the manifest location inside the validation dir.
func (w *Writer) ManifestPath() string {
	return filepath.Join(w.Dir, "evidence-manifest.json")
}

// WriteManifest persists the manifest atomically.
func (w *Writer) WriteManifest(m *Manifest) (Artifact, error) {
	path := w.ManifestPath()
	sum, err := writeJSON(path, m)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: path, SHA256: sum}, nil
}
