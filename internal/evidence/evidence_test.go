package evidence

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/metalagman/protovet/internal/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(protocolID string, score float64) rubric.ValidationResult {
	return rubric.ValidationResult{
		Validator:        "identity",
		ProtocolID:       protocolID,
		Timestamp:        "2026-08-29T00:00:00Z",
		Dimensions:       map[string]rubric.DimensionResult{},
		OverallScore:     score,
		ValidationStatus: rubric.Classify(score),
	}
}

func TestWriter_WriteResult(t *testing.T) {
	t.Parallel()

	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	artifact, err := writer.WriteResult(result("01", 0.97))
	require.NoError(t, err)
	assert.Equal(t, writer.ResultPath("01", "identity"), artifact.Path)
	assert.Equal(t, "protocol-01-identity.json", filepath.Base(artifact.Path))

	data, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), artifact.SHA256)

	var decoded rubric.ValidationResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "01", decoded.ProtocolID)
	assert.Equal(t, 0.97, decoded.OverallScore)

	// No temp files left behind by the atomic write.
	leftovers, err := filepath.Glob(filepath.Join(writer.Dir, ".protovet-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestBuildSummary_CountsAndOrdering(t *testing.T) {
	t.Parallel()

	results := []rubric.ValidationResult{
		result("03", 0.70),
		result("01", 0.99),
		result("02", 0.85),
	}
	summary := BuildSummary("identity", results)

	assert.Equal(t, 3, summary.TotalProtocols)
	assert.Equal(t, 1, summary.PassCount)
	assert.Equal(t, 1, summary.WarningCount)
	assert.Equal(t, 1, summary.FailCount)
	assert.InDelta(t, (0.70+0.99+0.85)/3, summary.AverageScore, 1e-9)

	// Rows sorted by protocol id ascending.
	require.Len(t, summary.Protocols, 3)
	assert.Equal(t, "01", summary.Protocols[0].ProtocolID)
	assert.Equal(t, "02", summary.Protocols[1].ProtocolID)
	assert.Equal(t, "03", summary.Protocols[2].ProtocolID)
}

func TestWriter_SummaryRoundTrip(t *testing.T) {
	t.Parallel()

	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	for _, res := range []rubric.ValidationResult{result("01", 0.99), result("02", 0.60)} {
		_, err := writer.WriteResult(res)
		require.NoError(t, err)
	}

	loaded, err := writer.LoadResults("identity")
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	summary := BuildSummary("identity", loaded)
	artifact, err := writer.WriteSummary(summary)
	require.NoError(t, err)
	assert.Equal(t, writer.SummaryPath("identity"), artifact.Path)
	assert.Equal(t, "identity-summary.json", filepath.Base(artifact.Path))
}

func TestManifest_Tally(t *testing.T) {
	t.Parallel()

	m := NewManifest(BatchProtocolID)
	m.Tally(result("01", 1.0), result("02", 0.9))
	m.Tally(result("03", 0.5))

	assert.Equal(t, 1, m.Stats.PassCount)
	assert.Equal(t, 1, m.Stats.WarningCount)
	assert.Equal(t, 1, m.Stats.FailCount)
	assert.InDelta(t, (1.0+0.9+0.5)/3, m.Stats.AverageScore, 1e-9)
	assert.Equal(t, rubric.PatternVersion, m.PatternVersion)
}
