// Package scripts loads the script registry consumed by the script
// integration validator: a JSON mapping of logical script names to paths.
package scripts

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const registrySchema = `{
	"type": "object",
	"additionalProperties": {"type": "string", "minLength": 1}
}`

// Registry maps logical script names to workspace-relative paths.
type Registry map[string]string

// Load reads and validates the registry file. A missing file yields an
// empty registry: every script reference then resolves as unknown, which
// is a scoring signal rather than an error.
func Load(path string) (Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Registry{}, nil
		}
		return nil, fmt.Errorf("read script registry: %w", err)
	}

	var settings map[string]any
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("parse script registry: %w", err)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(registrySchema),
		gojsonschema.NewGoLoader(settings),
	)
	if err != nil {
		return nil, fmt.Errorf("validate script registry schema: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, 0, len(result.Errors()))
		for _, schemaErr := range result.Errors() {
			errs = append(errs, schemaErr.String())
		}
		sort.Strings(errs)
		return nil, fmt.Errorf("script registry schema validation failed: %s", strings.Join(errs, "; "))
	}

	reg := make(Registry, len(settings))
	for name, value := range settings {
		reg[name] = value.(string)
	}
	return reg, nil
}

// Resolve returns the registered path for a logical name.
func (r Registry) Resolve(name string) (string, bool) {
	path, ok := r[name]
	return path, ok
}

// HasPath reports whether any registered script resolves to the given path.
func (r Registry) HasPath(path string) bool {
	for _, registered := range r {
		if registered == path {
			return true
		}
	}
	return false
}
