package validators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/metalagman/protovet/internal/rubric"
	"github.com/metalagman/protovet/internal/scripts"
)

// NewScriptIntegration builds the script integration validator. It is the
// one validator constructed with a collaborator: the script registry,
// consumed read-only to resolve referenced script paths.
//
// Dimension shapes: script_references count/2, registry_resolution ratio
// over referenced paths, invocation_examples composite/2, path_validity
// ratio over referenced paths, fallback_guidance composite/1.
func NewScriptIntegration(reg scripts.Registry) *Validator {
	return Must(New("scripts", []Dimension{
		{
			Name:   "script_references",
			Weight: 0.25,
			Score:  countScorer("script_references", rubric.ScriptPath, 2),
		},
		{
			Name:   "registry_resolution",
			Weight: 0.30,
			Score:  registryResolution(reg),
		},
		{
			Name:   "invocation_examples",
			Weight: 0.15,
			Score: compositeScorer([]check{
				{"invocation_command", rubric.ScriptInvocation, "No script invocation example shown"},
				{"code_block", rubric.FencedCode, "No fenced code block with an invocation"},
			}),
		},
		{
			Name:   "path_validity",
			Weight: 0.15,
			Score:  pathValidity,
		},
		{
			Name:   "fallback_guidance",
			Weight: 0.15,
			Score: compositeScorer([]check{
				{"fallback", rubric.FallbackGuide, "No manual fallback documented for script failure"},
			}),
		},
	}))
}

func referencedPaths(document string) []string {
	seen := make(map[string]bool)
	var paths []string
	for _, m := range rubric.ScriptPath.FindAllString(document, -1) {
		if !seen[m] {
			seen[m] = true
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths
}

func registryResolution(reg scripts.Registry) ScoreFunc {
	return func(_, document string) rubric.DimensionResult {
		paths := referencedPaths(document)
		found := make(map[string]any, len(paths))
		var issues []string
		resolved := 0
		for _, p := range paths {
			ok := reg.HasPath(p)
			found[p] = ok
			if ok {
				resolved++
			} else {
				issues = append(issues, fmt.Sprintf("Referenced script not in registry: %s", p))
			}
		}
		if len(paths) == 0 {
			issues = append(issues, "No script references to resolve against the registry")
		}
		return rubric.DimensionResult{
			Score:         rubric.RatioScore(resolved, len(paths)),
			Issues:        issues,
			ElementsFound: found,
		}
	}
}

func pathValidity(_, document string) rubric.DimensionResult {
	paths := referencedPaths(document)
	found := make(map[string]any, len(paths))
	var issues []string
	valid := 0
	for _, p := range paths {
		ok := !strings.HasPrefix(p, "/") && !strings.Contains(p, "..")
		found[p] = ok
		if ok {
			valid++
		} else {
			issues = append(issues, fmt.Sprintf("Script path is not workspace-relative: %s", p))
		}
	}
	if len(paths) == 0 {
		issues = append(issues, "No script paths to validate")
	}
	return rubric.DimensionResult{
		Score:         rubric.RatioScore(valid, len(paths)),
		Issues:        issues,
		ElementsFound: found,
	}
}
