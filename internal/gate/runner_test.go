package gate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/metalagman/protovet/internal/protocol"
	"github.com/metalagman/protovet/internal/scripts"
	"github.com/metalagman/protovet/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// sparseProtocol scores low on every validator: no identity fields, no
// required sections.
const sparseProtocol = "# Bare Notes\n\nSome prose with no structure.\n"

func newTestRunner(t *testing.T) (*Runner, string, string) {
	t.Helper()
	root := t.TempDir()
	protocolsDir := filepath.Join(root, "protocols")
	gatesDir := filepath.Join(root, "config", "protocol_gates")
	require.NoError(t, os.MkdirAll(protocolsDir, 0o755))
	require.NoError(t, os.MkdirAll(gatesDir, 0o755))
	runner := NewRunner(
		protocol.NewLoader(protocolsDir),
		validators.Default(scripts.Registry{}),
		gatesDir,
	)
	return runner, protocolsDir, gatesDir
}

func TestRunner_HaltOnFail(t *testing.T) {
	t.Parallel()

	runner, protocolsDir, gatesDir := newTestRunner(t)
	writeFile(t, filepath.Join(protocolsDir, "01-sparse.md"), sparseProtocol)
	writeFile(t, filepath.Join(gatesDir, "01.yaml"), `gates:
  - id: identity
    pass_threshold: 0.90
    halt_on_fail: true
  - id: structure
    pass_threshold: 0.50
`)

	report := runner.RunProtocol("01")
	require.Len(t, report.Gates, 2)
	assert.Equal(t, StateHalted, report.State)
	assert.Equal(t, GateFailed, report.Gates[0].Status)
	// The second gate is never invoked: not_run is distinct from failed.
	assert.Equal(t, GateNotRun, report.Gates[1].Status)
	assert.Nil(t, report.Gates[1].Result)
	assert.True(t, report.Failed())
}

func TestRunner_ContinueOnFail(t *testing.T) {
	t.Parallel()

	runner, protocolsDir, gatesDir := newTestRunner(t)
	writeFile(t, filepath.Join(protocolsDir, "02-sparse.md"), sparseProtocol)
	writeFile(t, filepath.Join(gatesDir, "02.yaml"), `gates:
  - id: identity
    pass_threshold: 0.90
    halt_on_fail: false
  - id: docs
    pass_threshold: 0.01
`)

	report := runner.RunProtocol("02")
	require.Len(t, report.Gates, 2)
	assert.Equal(t, StateCompleted, report.State)
	assert.Equal(t, GateFailed, report.Gates[0].Status)
	// Degraded-pass policy: the failure is recorded and the pipeline
	// keeps going.
	assert.NotEqual(t, GateNotRun, report.Gates[1].Status)
	assert.NotNil(t, report.Gates[1].Result)
}

func TestRunner_MalformedConfig(t *testing.T) {
	t.Parallel()

	runner, protocolsDir, gatesDir := newTestRunner(t)
	writeFile(t, filepath.Join(protocolsDir, "03-sparse.md"), sparseProtocol)
	writeFile(t, filepath.Join(gatesDir, "03.yaml"), "gates: [this is: not: valid\n")

	report := runner.RunProtocol("03")
	assert.Equal(t, StateConfigError, report.State)
	assert.True(t, report.Failed())
	require.NotEmpty(t, report.Issues)
	assert.Contains(t, report.Issues[0], "gate config unusable")
}

func TestRunner_UnknownGateID(t *testing.T) {
	t.Parallel()

	runner, protocolsDir, gatesDir := newTestRunner(t)
	writeFile(t, filepath.Join(protocolsDir, "04-sparse.md"), sparseProtocol)
	writeFile(t, filepath.Join(gatesDir, "04.yaml"), `gates:
  - id: no_such_validator
    halt_on_fail: true
  - id: identity
`)

	report := runner.RunProtocol("04")
	require.Len(t, report.Gates, 2)
	assert.Equal(t, GateFailed, report.Gates[0].Status)
	assert.Contains(t, report.Gates[0].Issues[0], "unknown gate id")
	assert.Equal(t, GateNotRun, report.Gates[1].Status)
}

func TestRunner_MissingProtocolFile(t *testing.T) {
	t.Parallel()

	runner, _, gatesDir := newTestRunner(t)
	writeFile(t, filepath.Join(gatesDir, "05.yaml"), `gates:
  - id: identity
    pass_threshold: 0.80
`)

	report := runner.RunProtocol("05")
	require.Len(t, report.Gates, 1)
	assert.Equal(t, GateFailed, report.Gates[0].Status)
	require.NotNil(t, report.Gates[0].Result)
	assert.Contains(t, report.Gates[0].Result.Issues, "Protocol file not found for ID 05")
}

func TestLoadConfig_DefaultsAndSchema(t *testing.T) {
	t.Parallel()

	gatesDir := t.TempDir()
	writeFile(t, filepath.Join(gatesDir, "06.yaml"), `gates:
  - id: identity
`)
	cfg, err := LoadConfig(gatesDir, "06")
	require.NoError(t, err)
	require.Len(t, cfg.Gates, 1)
	assert.Equal(t, DefaultPassThreshold, cfg.Gates[0].PassThreshold)
	assert.False(t, cfg.Gates[0].HaltOnFail)

	writeFile(t, filepath.Join(gatesDir, "07.yaml"), `gates:
  - id: identity
    pass_threshold: 2.5
`)
	_, err = LoadConfig(gatesDir, "07")
	assert.ErrorContains(t, err, "invalid")
}
