// Package validators implements the ten protocol validator modules and the
// gate registry that dispatches to them. Each validator combines five
// weighted dimension scorers into one ValidationResult; the weights must
// sum to 1.0 and the validator constructor asserts that.
package validators

import (
	"fmt"
	"math"
	"regexp"

	"github.com/metalagman/protovet/internal/protocol"
	"github.com/metalagman/protovet/internal/rubric"
)

// ScoreFunc is a pure function over the extracted section text and the
// full document. No side effects; deterministic for fixed inputs.
type ScoreFunc func(sectionText, document string) rubric.DimensionResult

// Dimension is one weighted rubric dimension of a validator. Section names
// the heading whose body is handed to the scorer; an empty Section feeds
// the whole document.
type Dimension struct {
	Name    string
	Weight  float64
	Section string
	Score   ScoreFunc
}

const weightTolerance = 1e-9

// Validator scores one protocol document across five dimensions.
type Validator struct {
	name string
	dims []Dimension
}

// New builds a validator, asserting that the dimension weights sum to 1.0.
func New(name string, dims []Dimension) (*Validator, error) {
	if len(dims) != 5 {
		return nil, fmt.Errorf("validator %s: got %d dimensions, want 5", name, len(dims))
	}
	sum := 0.0
	for _, d := range dims {
		sum += d.Weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return nil, fmt.Errorf("validator %s: dimension weights sum to %v, want 1.0", name, sum)
	}
	return &Validator{name: name, dims: dims}, nil
}

// Must unwraps a validator constructor. Definition errors are programmer
// errors, not runtime conditions.
func Must(v *Validator, err error) *Validator {
	if err != nil {
		panic(err)
	}
	return v
}

// Name returns the validator's registry name.
func (v *Validator) Name() string { return v.name }

// Dimensions returns the dimension definitions, in declaration order.
func (v *Validator) Dimensions() []Dimension { return v.dims }

// Validate scores the document across all dimensions. Running it twice on
// an unchanged document yields identical results except for Timestamp.
func (v *Validator) Validate(doc *protocol.Document) rubric.ValidationResult {
	res := rubric.ValidationResult{
		Validator:  v.name,
		ProtocolID: doc.ID,
		Timestamp:  rubric.Now(),
		Dimensions: make(map[string]rubric.DimensionResult, len(v.dims)),
	}
	overall := 0.0
	for _, dim := range v.dims {
		text := doc.Raw()
		if dim.Section != "" {
			text = doc.Section(dim.Section)
		}
		dr := dim.Score(text, doc.Raw())
		dr.Dimension = dim.Name
		dr.Status = rubric.Classify(dr.Score)
		res.Dimensions[dim.Name] = dr
		res.Issues = append(res.Issues, dr.Issues...)
		if dr.Status != rubric.StatusPass {
			res.Recommendations = append(res.Recommendations,
				fmt.Sprintf("Improve %s (score %.3f): %d issue(s) outstanding", dim.Name, dr.Score, len(dr.Issues)))
		}
		overall += dr.Score * dim.Weight
	}
	res.OverallScore = overall
	res.ValidationStatus = rubric.Classify(overall)
	return res
}

// MissingFileResult produces the zero-dimension fail result for a protocol
// whose file could not be located. A data-quality finding: the batch keeps
// running and this result is serialized like any other.
func (v *Validator) MissingFileResult(protocolID string) rubric.ValidationResult {
	res := rubric.ValidationResult{
		Validator:        v.name,
		ProtocolID:       protocolID,
		Timestamp:        rubric.Now(),
		Dimensions:       make(map[string]rubric.DimensionResult, len(v.dims)),
		OverallScore:     0,
		ValidationStatus: rubric.StatusFail,
		Issues:           []string{fmt.Sprintf("Protocol file not found for ID %s", protocolID)},
	}
	for _, dim := range v.dims {
		res.Dimensions[dim.Name] = rubric.DimensionResult{
			Dimension:     dim.Name,
			Score:         0,
			Status:        rubric.StatusFail,
			Issues:        []string{"Not scored: protocol file missing"},
			ElementsFound: map[string]any{},
		}
		res.Recommendations = append(res.Recommendations,
			fmt.Sprintf("Improve %s (score 0.000): 1 issue(s) outstanding", dim.Name))
	}
	return res
}

// check is one required element within a dimension: a name recorded in
// elements_found, the pattern that detects it, and the issue text emitted
// when it is absent.
type check struct {
	name string
	re   *regexp.Regexp
	hint string
}

func findElements(text string, checks []check) (map[string]any, []string) {
	found := make(map[string]any, len(checks))
	var issues []string
	for _, c := range checks {
		ok := c.re.MatchString(text)
		found[c.name] = ok
		if !ok {
			issues = append(issues, c.hint)
		}
	}
	return found, issues
}

func presentCount(found map[string]any) int {
	n := 0
	for _, v := range found {
		if ok, _ := v.(bool); ok {
			n++
		}
	}
	return n
}

func boolMap(found map[string]any) map[string]bool {
	out := make(map[string]bool, len(found))
	for k, v := range found {
		ok, _ := v.(bool)
		out[k] = ok
	}
	return out
}

// compositeScorer scores with the binary-composite shape: all elements
// present, a majority present, or neither.
func compositeScorer(checks []check) ScoreFunc {
	return func(text, _ string) rubric.DimensionResult {
		found, issues := findElements(text, checks)
		return rubric.DimensionResult{
			Score:         rubric.CompositeScore(boolMap(found)),
			Issues:        issues,
			ElementsFound: found,
		}
	}
}

// ratioScorer scores with the continuous ratio shape over boolean checks.
func ratioScorer(checks []check) ScoreFunc {
	return func(text, _ string) rubric.DimensionResult {
		found, issues := findElements(text, checks)
		return rubric.DimensionResult{
			Score:         rubric.RatioScore(presentCount(found), len(checks)),
			Issues:        issues,
			ElementsFound: found,
		}
	}
}

// countScorer scores with the count-threshold shape: full marks at target,
// the warning band at half target.
func countScorer(element string, re *regexp.Regexp, target int) ScoreFunc {
	return func(text, _ string) rubric.DimensionResult {
		count := len(re.FindAllStringIndex(text, -1))
		dr := rubric.DimensionResult{
			Score:         rubric.CountThresholdScore(count, target),
			ElementsFound: map[string]any{element: count},
		}
		if count < target {
			dr.Issues = append(dr.Issues,
				fmt.Sprintf("Found %d %s, expected at least %d", count, element, target))
		}
		return dr
	}
}
