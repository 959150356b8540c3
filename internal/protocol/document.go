// Package protocol loads protocol documents from the workspace and exposes
// their identity and section structure to validators.
package protocol

import (
	"github.com/metalagman/protovet/internal/section"
)

// Document is one protocol markdown file. Read-only input: loaded once per
// validation run and never mutated by the engine.
type Document struct {
	ID   string
	Path string

	raw      string
	sections map[string]string
}

// NewDocument wraps already-read content. Used by tests and the loader.
func NewDocument(id, path, raw string) *Document {
	return &Document{ID: id, Path: path, raw: raw}
}

// Raw returns the full document text.
func (d *Document) Raw() string { return d.raw }

// Section returns the body of the named section, computing and caching the
// lookup on first use. Returns the empty string when the section is absent.
func (d *Document) Section(name string) string {
	if d.sections == nil {
		d.sections = make(map[string]string)
	}
	if body, ok := d.sections[name]; ok {
		return body
	}
	body := section.Extract(d.raw, name)
	d.sections[name] = body
	return body
}

// HasSection reports whether the named section exists in the document.
func (d *Document) HasSection(name string) bool {
	return section.Has(d.raw, name)
}
