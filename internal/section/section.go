// Package section locates named logical sections inside loosely-structured
// markdown documents. The primary path is a heading-aware tokenizer that
// builds an ordered list of (level, title, body) nodes; a positional regex
// is kept as a fallback for documents the tokenizer cannot resolve.
package section

import (
	"fmt"
	"regexp"
	"strings"
)

// Node is one heading plus the body text that belongs to it. The body runs
// from the end of the heading line to the next heading of the same or a
// shallower level.
type Node struct {
	Level int
	Title string
	Body  string
}

var (
	headingLine   = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*$`)
	numberPrefix  = regexp.MustCompile(`^\d+(?:\.\d+)*\.?\s+`)
	fenceLine     = regexp.MustCompile("^(?:```|~~~)")
	anyHeadingRe  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	trailingHash  = regexp.MustCompile(`\s+#+$`)
	legacyPattern = `(?im)^#{1,6}\s+(?:\d+(?:\.\d+)*\.?\s+)?%s\b.*$`
)

// Tokenize splits markdown content into an ordered list of heading nodes.
// Headings inside fenced code blocks are ignored. Content before the first
// heading is not represented.
func Tokenize(content string) []Node {
	lines := strings.SplitAfter(content, "\n")

	type mark struct {
		level    int
		title    string
		bodyFrom int // byte offset where the body starts
		pos      int // byte offset of the heading line
	}
	var marks []mark
	offset := 0
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\n")
		if fenceLine.MatchString(strings.TrimSpace(trimmed)) {
			inFence = !inFence
		} else if !inFence {
			if m := headingLine.FindStringSubmatch(trimmed); m != nil {
				marks = append(marks, mark{
					level:    len(m[1]),
					title:    trailingHash.ReplaceAllString(m[2], ""),
					bodyFrom: offset + len(line),
					pos:      offset,
				})
			}
		}
		offset += len(line)
	}

	nodes := make([]Node, 0, len(marks))
	for i, m := range marks {
		end := len(content)
		for j := i + 1; j < len(marks); j++ {
			if marks[j].level <= m.level {
				end = marks[j].pos
				break
			}
		}
		if m.bodyFrom > end {
			m.bodyFrom = end
		}
		nodes = append(nodes, Node{Level: m.level, Title: m.title, Body: content[m.bodyFrom:end]})
	}
	return nodes
}

// Extract returns the body of the first section whose heading matches name,
// or the empty string when no such section exists. Matching is
// case-insensitive and tolerant of numbering prefixes and trailing
// decoration; the first occurrence wins when a name appears twice.
// Absence of a section is a scoring signal, never an error.
func Extract(content, name string) string {
	want := normalize(name)
	if want == "" {
		return ""
	}
	for _, node := range Tokenize(content) {
		if titleMatches(normalize(node.Title), want) {
			return node.Body
		}
	}
	return legacyExtract(content, name)
}

// Has reports whether a section with the given name exists.
func Has(content, name string) bool {
	want := normalize(name)
	if want == "" {
		return false
	}
	for _, node := range Tokenize(content) {
		if titleMatches(normalize(node.Title), want) {
			return true
		}
	}
	return false
}

func normalize(title string) string {
	title = numberPrefix.ReplaceAllString(strings.TrimSpace(title), "")
	title = strings.TrimSuffix(title, ":")
	return strings.ToLower(strings.TrimSpace(title))
}

func titleMatches(title, want string) bool {
	if title == want {
		return true
	}
	return strings.HasPrefix(title, want+" ") || strings.HasPrefix(title, want+":")
}

// legacyExtract is the historical regex path: anchored heading match, body
// up to the next heading of any level. Kept for documents whose heading
// style defeats the tokenizer (for example headings inside HTML blocks).
func legacyExtract(content, name string) string {
	re, err := regexp.Compile(fmt.Sprintf(legacyPattern, regexp.QuoteMeta(name)))
	if err != nil {
		return ""
	}
	loc := re.FindStringIndex(content)
	if loc == nil {
		return ""
	}
	body := content[loc[1]:]
	body = strings.TrimPrefix(body, "\n")
	if next := anyHeadingRe.FindStringIndex(body); next != nil {
		body = body[:next[0]]
	}
	return body
}
