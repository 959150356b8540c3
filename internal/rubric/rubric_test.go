package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Breakpoints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score float64
		want  Status
	}{
		{1.0, StatusPass},
		{0.95, StatusPass},
		{0.9499, StatusWarning},
		{0.80, StatusWarning},
		{0.7999, StatusFail},
		{0.0, StatusFail},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.score), "score %v", tc.score)
	}
}

func TestCompositeScore_Breakpoints(t *testing.T) {
	t.Parallel()

	all := map[string]bool{"a": true, "b": true, "c": true}
	assert.Equal(t, 1.0, CompositeScore(all))

	majority := map[string]bool{"a": true, "b": true, "c": false}
	assert.Equal(t, 0.85, CompositeScore(majority))

	minority := map[string]bool{"a": true, "b": false, "c": false}
	assert.Equal(t, 0.0, CompositeScore(minority))

	assert.Equal(t, 0.0, CompositeScore(nil))

	// Exactly half is not a majority.
	half := map[string]bool{"a": true, "b": false}
	assert.Equal(t, 0.0, CompositeScore(half))
}

func TestRatioScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, RatioScore(6, 6))
	assert.InDelta(t, 0.8333, RatioScore(5, 6), 1e-3)
	assert.Equal(t, 0.5, RatioScore(2, 4))
	assert.Equal(t, 0.0, RatioScore(0, 4))
	assert.Equal(t, 0.0, RatioScore(3, 0))
	// Clamped, never above 1.
	assert.Equal(t, 1.0, RatioScore(7, 6))
}

func TestCountThresholdScore_Breakpoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, CountThresholdScore(4, 4))
	assert.Equal(t, 1.0, CountThresholdScore(9, 4))
	assert.Equal(t, 0.85, CountThresholdScore(2, 4))
	assert.Equal(t, 0.85, CountThresholdScore(3, 4))
	assert.Equal(t, 0.0, CountThresholdScore(1, 4))
	assert.Equal(t, 0.0, CountThresholdScore(0, 4))
}

func TestCountThresholdScore_Monotone(t *testing.T) {
	t.Parallel()

	prev := 0.0
	for count := 0; count <= 10; count++ {
		score := CountThresholdScore(count, 5)
		assert.GreaterOrEqual(t, score, prev, "count %d", count)
		prev = score
	}
}
