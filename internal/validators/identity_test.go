package validators

import (
	"encoding/json"
	"testing"

	"github.com/metalagman/protovet/internal/protocol"
	"github.com/metalagman/protovet/internal/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_HappyPath(t *testing.T) {
	t.Parallel()

	doc := protocol.NewDocument("01", "01-discovery.md", completeProtocol)
	res := NewIdentity().Validate(doc)

	for name, dim := range res.Dimensions {
		assert.Equal(t, 1.0, dim.Score, "dimension %s: %v", name, dim.Issues)
	}
	assert.GreaterOrEqual(t, res.OverallScore, 0.95)
	assert.Equal(t, rubric.StatusPass, res.ValidationStatus)
	assert.Empty(t, res.Issues)
}

func TestIdentity_MissingVersionOnly(t *testing.T) {
	t.Parallel()

	doc := protocol.NewDocument("01", "01-discovery.md", withoutLine(completeProtocol, "**Version**"))
	res := NewIdentity().Validate(doc)

	basic := res.Dimensions["basic_information"]
	assert.InDelta(t, 0.833, basic.Score, 1e-3)
	assert.Equal(t, rubric.StatusWarning, basic.Status)
	assert.Contains(t, basic.Issues, "Semantic version line missing")
	assert.Equal(t, false, basic.ElementsFound["version"])

	// One missing identity field degrades the overall verdict to warning,
	// never all the way to fail.
	assert.InDelta(t, 0.9417, res.OverallScore, 1e-3)
	assert.Equal(t, rubric.StatusWarning, res.ValidationStatus)
}

func TestIdentity_MissingSectionIsScoringSignal(t *testing.T) {
	t.Parallel()

	stripped := withoutLine(completeProtocol, "## 7. Compliance")
	doc := protocol.NewDocument("01", "01-discovery.md", stripped)
	res := NewIdentity().Validate(doc)

	completeness := res.Dimensions["section_completeness"]
	assert.InDelta(t, 8.0/9.0, completeness.Score, 1e-9)
	assert.Contains(t, completeness.Issues, "Required section missing: Compliance")
}

func TestIdentity_Monotonicity(t *testing.T) {
	t.Parallel()

	without := NewIdentity().Validate(protocol.NewDocument("01", "01-d.md", withoutLine(completeProtocol, "**Version**")))
	with := NewIdentity().Validate(protocol.NewDocument("01", "01-d.md", completeProtocol))

	// Adding a previously-missing element never decreases any score.
	assert.GreaterOrEqual(t, with.Dimensions["basic_information"].Score, without.Dimensions["basic_information"].Score)
	assert.GreaterOrEqual(t, with.OverallScore, without.OverallScore)
}

func TestIdentity_Deterministic(t *testing.T) {
	t.Parallel()

	doc := protocol.NewDocument("01", "01-discovery.md", completeProtocol)
	v := NewIdentity()

	first := v.Validate(doc)
	second := v.Validate(doc)
	first.Timestamp = ""
	second.Timestamp = ""

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestValidator_MissingFileResult(t *testing.T) {
	t.Parallel()

	res := NewIdentity().MissingFileResult("02")
	assert.Equal(t, rubric.StatusFail, res.ValidationStatus)
	assert.Equal(t, 0.0, res.OverallScore)
	assert.Contains(t, res.Issues, "Protocol file not found for ID 02")
	assert.Len(t, res.Dimensions, 5)
	for _, dim := range res.Dimensions {
		assert.Equal(t, rubric.StatusFail, dim.Status)
	}
}
