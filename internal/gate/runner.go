package gate

import (
	"errors"
	"fmt"
	"os"

	"github.com/metalagman/protovet/internal/protocol"
	"github.com/metalagman/protovet/internal/rubric"
	"github.com/metalagman/protovet/internal/validators"
	"github.com/rs/zerolog/log"
)

// Protocol pipeline states. Completed and Halted are terminal; ConfigError
// marks a protocol whose gate config could not be loaded.
const (
	StateCompleted   = "completed"
	StateHalted      = "halted"
	StateConfigError = "config_error"
)

// Gate outcome statuses. NotRun is distinct from Failed: it marks gates
// skipped after an upstream halt.
const (
	GatePassed = "passed"
	GateWarned = "warned"
	GateFailed = "failed"
	GateNotRun = "not_run"
)

// Outcome records a single gate's execution within a protocol pipeline.
type Outcome struct {
	GateID        string                   `json:"gate_id"`
	Status        string                   `json:"status"`
	Score         float64                  `json:"score"`
	PassThreshold float64                  `json:"pass_threshold"`
	HaltOnFail    bool                     `json:"halt_on_fail"`
	Issues        []string                 `json:"issues,omitempty"`
	Result        *rubric.ValidationResult `json:"result,omitempty"`
}

// Report is the gate-execution record for one protocol.
type Report struct {
	ProtocolID  string    `json:"protocol_id"`
	GeneratedAt string    `json:"generated_at"`
	State       string    `json:"state"`
	Gates       []Outcome `json:"gates"`
	Issues      []string  `json:"issues,omitempty"`
}

// Failed reports whether the pipeline ended in a non-passing state.
func (r Report) Failed() bool {
	if r.State == StateConfigError {
		return true
	}
	for _, g := range r.Gates {
		if g.Status == GateFailed {
			return true
		}
	}
	return false
}

// Runner executes a protocol's gates in declared order. Failure isolation
// is per-protocol: a halt here never blocks other protocols in a batch.
type Runner struct {
	Loader   *protocol.Loader
	Registry *validators.Registry
	GatesDir string
}

// NewRunner wires a gate runner.
func NewRunner(loader *protocol.Loader, registry *validators.Registry, gatesDir string) *Runner {
	return &Runner{Loader: loader, Registry: registry, GatesDir: gatesDir}
}

// HasConfig reports whether a gate config exists for the protocol.
func (r *Runner) HasConfig(protocolID string) bool {
	_, err := LoadConfig(r.GatesDir, protocolID)
	return err == nil || !os.IsNotExist(err)
}

// RunProtocol executes every configured gate for one protocol. On a failed
// gate with halt_on_fail the pipeline transitions to halted and the
// remaining gates are recorded as not_run.
func (r *Runner) RunProtocol(protocolID string) Report {
	report := Report{
		ProtocolID:  protocolID,
		GeneratedAt: rubric.Now(),
		State:       StateCompleted,
	}

	cfg, err := LoadConfig(r.GatesDir, protocolID)
	if err != nil {
		report.State = StateConfigError
		report.Issues = append(report.Issues, fmt.Sprintf("gate config unusable: %v", err))
		log.Error().Err(err).Str("protocol", protocolID).Msg("gate config unusable")
		return report
	}

	doc, loadErr := r.Loader.Load(protocolID)
	var notFound *protocol.NotFoundError
	if loadErr != nil && !errors.As(loadErr, &notFound) {
		report.State = StateConfigError
		report.Issues = append(report.Issues, fmt.Sprintf("load protocol: %v", loadErr))
		return report
	}

	halted := false
	for _, spec := range cfg.Gates {
		outcome := Outcome{
			GateID:        spec.ID,
			PassThreshold: spec.PassThreshold,
			HaltOnFail:    spec.HaltOnFail,
		}
		if halted {
			outcome.Status = GateNotRun
			report.Gates = append(report.Gates, outcome)
			continue
		}

		validator, err := r.Registry.Resolve(spec.ID)
		if err != nil {
			outcome.Status = GateFailed
			outcome.Issues = append(outcome.Issues, err.Error())
			report.Gates = append(report.Gates, outcome)
			log.Error().Err(err).Str("protocol", protocolID).Msg("gate resolution failed")
			if spec.HaltOnFail {
				halted = true
				report.State = StateHalted
			}
			continue
		}

		var result rubric.ValidationResult
		if doc == nil {
			result = validator.MissingFileResult(protocolID)
		} else {
			result = validator.Validate(doc)
		}
		outcome.Score = result.OverallScore
		outcome.Result = &result
		outcome.Status = classifyGate(result, spec.PassThreshold)
		report.Gates = append(report.Gates, outcome)

		log.Debug().
			Str("protocol", protocolID).
			Str("gate", spec.ID).
			Float64("score", result.OverallScore).
			Str("status", outcome.Status).
			Msg("gate evaluated")

		if outcome.Status == GateFailed && spec.HaltOnFail {
			halted = true
			report.State = StateHalted
		}
	}
	return report
}

// classifyGate applies the gate's own threshold first, then carries the
// validator's warning band through. Warned always proceeds.
func classifyGate(result rubric.ValidationResult, passThreshold float64) string {
	if result.OverallScore < passThreshold {
		return GateFailed
	}
	if result.ValidationStatus == rubric.StatusWarning {
		return GateWarned
	}
	return GatePassed
}
