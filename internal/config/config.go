// Package config provides workspace configuration loading for protovet.
package config

import "path/filepath"

// Config is the root workspace configuration.
type Config struct {
	Paths     Paths           `json:"paths"               mapstructure:"paths"`
	Workers   int             `json:"workers,omitempty"   mapstructure:"workers"`
	Retention RetentionPolicy `json:"retention,omitempty" mapstructure:"retention"`
}

// Paths locates the engine's inputs and outputs, relative to the
// workspace root unless absolute.
type Paths struct {
	ProtocolsDir   string `json:"protocols_dir,omitempty"   mapstructure:"protocols_dir"`
	ValidationDir  string `json:"validation_dir,omitempty"  mapstructure:"validation_dir"`
	GatesDir       string `json:"gates_dir,omitempty"       mapstructure:"gates_dir"`
	ScriptRegistry string `json:"script_registry,omitempty" mapstructure:"script_registry"`
}

// RetentionPolicy defines how much invocation history to keep.
type RetentionPolicy struct {
	KeepLast int `json:"keep_last,omitempty" mapstructure:"keep_last"`
	KeepDays int `json:"keep_days,omitempty" mapstructure:"keep_days"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Paths: Paths{
			ProtocolsDir:   "protocols",
			ValidationDir:  filepath.Join(".protovet", "validation"),
			GatesDir:       filepath.Join("config", "protocol_gates"),
			ScriptRegistry: filepath.Join("config", "script_registry.json"),
		},
		Workers: 4,
	}
}

// Resolve fills empty fields with defaults and anchors relative paths at
// the workspace root.
func (c Config) Resolve(workspace string) Config {
	def := Default()
	if c.Paths.ProtocolsDir == "" {
		c.Paths.ProtocolsDir = def.Paths.ProtocolsDir
	}
	if c.Paths.ValidationDir == "" {
		c.Paths.ValidationDir = def.Paths.ValidationDir
	}
	if c.Paths.GatesDir == "" {
		c.Paths.GatesDir = def.Paths.GatesDir
	}
	if c.Paths.ScriptRegistry == "" {
		c.Paths.ScriptRegistry = def.Paths.ScriptRegistry
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	c.Paths.ProtocolsDir = anchor(workspace, c.Paths.ProtocolsDir)
	c.Paths.ValidationDir = anchor(workspace, c.Paths.ValidationDir)
	c.Paths.GatesDir = anchor(workspace, c.Paths.GatesDir)
	c.Paths.ScriptRegistry = anchor(workspace, c.Paths.ScriptRegistry)
	return c
}

func anchor(workspace, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workspace, path)
}
