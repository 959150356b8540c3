package protocol

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// NotFoundError reports that no file matches a protocol id. This is a
// data-quality finding, not a process error: callers record it as an issue
// on the protocol's result and keep going.
type NotFoundError struct {
	ProtocolID string
	Dir        string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("protocol file not found for ID %s under %s", e.ProtocolID, e.Dir)
}

var protocolFileRe = regexp.MustCompile(`^(\d{2})-.*\.md$`)

// Loader resolves protocol ids to markdown files under a single directory.
type Loader struct {
	Dir string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Load reads the protocol document for the given two-digit id, resolved via
// the {id}-*.md filename convention. The first match in lexical order wins.
func (l *Loader) Load(id string) (*Document, error) {
	matches, err := filepath.Glob(filepath.Join(l.Dir, id+"-*.md"))
	if err != nil {
		return nil, fmt.Errorf("glob protocol %s: %w", id, err)
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, &NotFoundError{ProtocolID: id, Dir: l.Dir}
	}
	raw, err := os.ReadFile(matches[0])
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{ProtocolID: id, Dir: l.Dir}
		}
		return nil, fmt.Errorf("read protocol %s: %w", id, err)
	}
	return NewDocument(id, matches[0], string(raw)), nil
}

// Discover lists every protocol id present in the directory, ascending.
func (l *Loader) Discover() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("list protocols dir: %w", err)
	}
	seen := make(map[string]bool)
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := protocolFileRe.FindStringSubmatch(entry.Name())
		if m == nil || seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		ids = append(ids, m[1])
	}
	sort.Strings(ids)
	return ids, nil
}
