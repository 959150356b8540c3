// Package gate loads per-protocol gate configurations and orchestrates
// validator execution against them.
package gate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const configSchema = `{
	"type": "object",
	"required": ["gates"],
	"properties": {
		"gates": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"pass_threshold": {"type": "number", "minimum": 0, "maximum": 1},
					"halt_on_fail": {"type": "boolean"}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`

// Spec is one gate declaration within a protocol's config.
type Spec struct {
	ID            string  `yaml:"id"`
	PassThreshold float64 `yaml:"pass_threshold"`
	HaltOnFail    bool    `yaml:"halt_on_fail"`
}

// Config is the declarative gate configuration for one protocol. Owned by
// the protocol author; the engine reads it and nothing else.
type Config struct {
	ProtocolID string
	Gates      []Spec `yaml:"gates"`
}

// DefaultPassThreshold applies when a gate omits pass_threshold.
const DefaultPassThreshold = 0.80

// LoadConfig reads and validates config/protocol_gates/{id}.yaml under
// gatesDir. A malformed file is a configuration error fatal for that
// protocol only; os.IsNotExist distinguishes the no-config case.
func LoadConfig(gatesDir, protocolID string) (Config, error) {
	path := filepath.Join(gatesDir, protocolID+".yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var settings map[string]any
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return Config{}, fmt.Errorf("parse gate config %s: %w", path, err)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewGoLoader(settings),
	)
	if err != nil {
		return Config{}, fmt.Errorf("validate gate config schema: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, 0, len(result.Errors()))
		for _, schemaErr := range result.Errors() {
			errs = append(errs, schemaErr.String())
		}
		sort.Strings(errs)
		return Config{}, fmt.Errorf("gate config %s invalid: %s", path, strings.Join(errs, "; "))
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode gate config %s: %w", path, err)
	}
	cfg.ProtocolID = protocolID
	for i := range cfg.Gates {
		if cfg.Gates[i].PassThreshold == 0 {
			cfg.Gates[i].PassThreshold = DefaultPassThreshold
		}
	}
	return cfg, nil
}
