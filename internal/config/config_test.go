package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	err := ValidateSettings(map[string]any{
		"paths": map[string]any{
			"protocols_dir":  "protocols",
			"validation_dir": ".protovet/validation",
		},
		"workers": 8,
		"retention": map[string]any{
			"keep_last": 20,
			"keep_days": 30,
		},
	})
	assert.NoError(t, err)
}

func TestValidateSettings_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	err := ValidateSettings(map[string]any{"parallelism": 8})
	require.ErrorContains(t, err, "config schema validation failed")
}

func TestValidateSettings_RejectsBadWorkerCount(t *testing.T) {
	t.Parallel()

	err := ValidateSettings(map[string]any{"workers": 0})
	require.ErrorContains(t, err, "config schema validation failed")
}

func TestResolve_FillsDefaultsAndAnchors(t *testing.T) {
	t.Parallel()

	got := Config{}.Resolve("/work/space")
	assert.Equal(t, filepath.Join("/work/space", "protocols"), got.Paths.ProtocolsDir)
	assert.Equal(t, filepath.Join("/work/space", ".protovet", "validation"), got.Paths.ValidationDir)
	assert.Equal(t, filepath.Join("/work/space", "config", "protocol_gates"), got.Paths.GatesDir)
	assert.Equal(t, filepath.Join("/work/space", "config", "script_registry.json"), got.Paths.ScriptRegistry)
	assert.Equal(t, 4, got.Workers)
}

func TestResolve_KeepsAbsolutePaths(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Paths:   Paths{ProtocolsDir: "/abs/protocols", ValidationDir: "out"},
		Workers: 2,
	}
	got := cfg.Resolve("/work/space")
	assert.Equal(t, "/abs/protocols", got.Paths.ProtocolsDir)
	assert.Equal(t, filepath.Join("/work/space", "out"), got.Paths.ValidationDir)
	assert.Equal(t, 2, got.Workers)
}
