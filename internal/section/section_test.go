package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_RoundTrip(t *testing.T) {
	t.Parallel()

	doc := "# A\nalpha\n# B\nbeta\n# C\ngamma\n"
	assert.Equal(t, "beta\n", Extract(doc, "B"))
	assert.Equal(t, "alpha\n", Extract(doc, "A"))
	assert.Equal(t, "gamma\n", Extract(doc, "C"))
}

func TestExtract_NumberedAndCased(t *testing.T) {
	t.Parallel()

	doc := "# Title\n\n## 1. PURPOSE\nbody one\n\n## 2. Quality Gates\nbody two\n"
	assert.Contains(t, Extract(doc, "purpose"), "body one")
	assert.Contains(t, Extract(doc, "Quality Gates"), "body two")
}

func TestExtract_StopsAtSameOrShallowerLevel(t *testing.T) {
	t.Parallel()

	doc := "## Workflow\nintro\n### Phase 1\nsteps\n## Deliverables\nitems\n"
	body := Extract(doc, "Workflow")
	assert.Contains(t, body, "intro")
	assert.Contains(t, body, "steps")
	assert.NotContains(t, body, "items")
}

func TestExtract_FirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	doc := "## Notes\nfirst\n## Notes\nsecond\n"
	assert.Equal(t, "first\n", Extract(doc, "Notes"))
}

func TestExtract_MissingSectionIsEmpty(t *testing.T) {
	t.Parallel()

	doc := "# Title\n## Purpose\nbody\n"
	assert.Equal(t, "", Extract(doc, "Compliance"))
	assert.False(t, Has(doc, "Compliance"))
	assert.True(t, Has(doc, "Purpose"))
}

func TestExtract_IgnoresHeadingsInCodeFences(t *testing.T) {
	t.Parallel()

	doc := "## Setup\nbefore\n```\n## NotASection\ncode\n```\nafter\n## Teardown\nend\n"
	body := Extract(doc, "Setup")
	assert.Contains(t, body, "before")
	assert.Contains(t, body, "after")
	assert.False(t, Has(doc, "NotASection"))
}

func TestExtract_TitleSuffixTolerated(t *testing.T) {
	t.Parallel()

	doc := "## Workflow Overview and Steps\nbody\n"
	assert.Equal(t, "body\n", Extract(doc, "Workflow"))
}

func TestTokenize_Order(t *testing.T) {
	t.Parallel()

	doc := "# One\na\n## Two\nb\n# Three\nc\n"
	nodes := Tokenize(doc)
	require.Len(t, nodes, 3)
	assert.Equal(t, "One", nodes[0].Title)
	assert.Equal(t, 1, nodes[0].Level)
	assert.Equal(t, "Two", nodes[1].Title)
	assert.Equal(t, 2, nodes[1].Level)
	// A level-1 node's body runs until the next level-1 heading.
	assert.Equal(t, "a\n## Two\nb\n", nodes[0].Body)
	assert.Equal(t, "c\n", nodes[2].Body)
}
