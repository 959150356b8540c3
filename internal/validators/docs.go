package validators

import (
	"fmt"
	"strings"

	"github.com/metalagman/protovet/internal/rubric"
	"github.com/metalagman/protovet/internal/section"
)

// NewDocs builds the documentation-standards validator.
//
// Dimension shapes: heading_hierarchy composite/2, version_history
// composite/1, terminology_consistency ratio/3, link_integrity ratio over
// present links, formatting_conventions composite/2.
func NewDocs() *Validator {
	return Must(New("docs", []Dimension{
		{
			Name:   "heading_hierarchy",
			Weight: 0.25,
			Score:  headingHierarchy,
		},
		{
			Name:   "version_history",
			Weight: 0.20,
			Score: compositeScorer([]check{
				{"version_history", rubric.VersionHistoryRe, "No version history or changelog"},
			}),
		},
		{
			Name:   "terminology_consistency",
			Weight: 0.20,
			Score: ratioScorer([]check{
				{"protocol_term", rubric.ProtocolRef, "Document never refers to protocols by number"},
				{"glossary", rubric.GlossaryMention, "No glossary or definitions section"},
				{"gate_term", rubric.GateMention, "Gate terminology never used"},
			}),
		},
		{
			Name:   "link_integrity",
			Weight: 0.20,
			Score:  linkIntegrity,
		},
		{
			Name:   "formatting_conventions",
			Weight: 0.15,
			Score: compositeScorer([]check{
				{"bullet_lists", rubric.BulletItem, "No bulleted lists used"},
				{"tables", rubric.TableRow, "No tables used"},
			}),
		},
	}))
}

func headingHierarchy(_, document string) rubric.DimensionResult {
	nodes := section.Tokenize(document)
	h1 := 0
	noJumps := true
	prev := 0
	for _, n := range nodes {
		if n.Level == 1 {
			h1++
		}
		if prev > 0 && n.Level > prev+1 {
			noJumps = false
		}
		prev = n.Level
	}
	found := map[string]any{
		"single_h1":      h1 == 1,
		"no_level_jumps": noJumps,
	}
	var issues []string
	if h1 != 1 {
		issues = append(issues, fmt.Sprintf("Expected exactly one top-level heading, found %d", h1))
	}
	if !noJumps {
		issues = append(issues, "Heading levels jump by more than one")
	}
	return rubric.DimensionResult{
		Score:         rubric.CompositeScore(boolMap(found)),
		Issues:        issues,
		ElementsFound: found,
	}
}

func linkIntegrity(_, document string) rubric.DimensionResult {
	links := rubric.MarkdownLink.FindAllStringSubmatch(document, -1)
	found := make(map[string]any, len(links))
	var issues []string
	valid := 0
	for _, m := range links {
		target := strings.TrimSpace(m[2])
		ok := target != "" && target != "#" && !strings.EqualFold(target, "tbd")
		found[m[2]] = ok
		if ok {
			valid++
		} else {
			issues = append(issues, fmt.Sprintf("Link %q has a placeholder target", m[1]))
		}
	}
	if len(links) == 0 {
		issues = append(issues, "Document contains no links")
	}
	return rubric.DimensionResult{
		Score:         rubric.RatioScore(valid, len(links)),
		Issues:        issues,
		ElementsFound: found,
	}
}
