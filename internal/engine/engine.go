// Package engine orchestrates validation runs: fan-out over protocols,
// per-result artifact writes, summary aggregation, and the evidence
// manifest. The cmd layer stays thin and delegates here.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/metalagman/protovet/internal/batch"
	"github.com/metalagman/protovet/internal/evidence"
	"github.com/metalagman/protovet/internal/protocol"
	"github.com/metalagman/protovet/internal/rubric"
	"github.com/metalagman/protovet/internal/validators"
	"github.com/rs/zerolog/log"
)

// Runner executes validators over protocols and persists the evidence.
type Runner struct {
	Loader   *protocol.Loader
	Registry *validators.Registry
	Writer   *evidence.Writer
	Workers  int
}

// NewRunner wires an engine runner.
func NewRunner(loader *protocol.Loader, registry *validators.Registry, writer *evidence.Writer, workers int) *Runner {
	return &Runner{Loader: loader, Registry: registry, Writer: writer, Workers: workers}
}

// ProtocolOutcome is the validation of one protocol across the selected
// validators, in selection order.
type ProtocolOutcome struct {
	ProtocolID string
	Results    []rubric.ValidationResult
	Artifacts  []evidence.Artifact

	// writeErr carries an artifact-write failure out of the worker pool.
	// It is a process error, not a data-quality finding.
	writeErr error
}

// Status is the worst validation status across the outcome's results.
func (o ProtocolOutcome) Status() rubric.Status {
	status := rubric.StatusPass
	for _, res := range o.Results {
		switch res.ValidationStatus {
		case rubric.StatusFail:
			return rubric.StatusFail
		case rubric.StatusWarning:
			status = rubric.StatusWarning
		}
	}
	return status
}

// Score is the mean overall score across the outcome's results.
func (o ProtocolOutcome) Score() float64 {
	if len(o.Results) == 0 {
		return 0
	}
	total := 0.0
	for _, res := range o.Results {
		total += res.OverallScore
	}
	return total / float64(len(o.Results))
}

// ValidateProtocol runs the selected validators against one protocol and
// writes one artifact per result. A missing protocol file becomes a
// zero-dimension fail result on every validator, never an error.
func (r *Runner) ValidateProtocol(protocolID string, validatorNames []string) ProtocolOutcome {
	outcome := ProtocolOutcome{ProtocolID: protocolID}

	doc, err := r.Loader.Load(protocolID)
	var notFound *protocol.NotFoundError
	if err != nil && !errors.As(err, &notFound) {
		outcome.writeErr = fmt.Errorf("load protocol %s: %w", protocolID, err)
		return outcome
	}

	for _, name := range validatorNames {
		validator, err := r.Registry.Resolve(name)
		if err != nil {
			outcome.writeErr = err
			return outcome
		}
		var res rubric.ValidationResult
		if doc == nil {
			res = validator.MissingFileResult(protocolID)
		} else {
			res = validator.Validate(doc)
		}
		outcome.Results = append(outcome.Results, res)

		artifact, err := r.Writer.WriteResult(res)
		if err != nil {
			outcome.writeErr = err
			return outcome
		}
		outcome.Artifacts = append(outcome.Artifacts, artifact)

		log.Debug().
			Str("protocol", protocolID).
			Str("validator", name).
			Float64("score", res.OverallScore).
			Str("status", string(res.ValidationStatus)).
			Msg("protocol validated")
	}
	return outcome
}

// ValidateAll fans ValidateProtocol out over a worker pool, joins, and
// returns outcomes in protocol order. Per-protocol findings stay local to
// each outcome; only process errors (artifact writes, unknown validators)
// surface as the returned error.
func (r *Runner) ValidateAll(ctx context.Context, protocolIDs, validatorNames []string) ([]ProtocolOutcome, error) {
	outcomes := batch.Run(ctx, protocolIDs, r.Workers, func(_ context.Context, id string) ProtocolOutcome {
		return r.ValidateProtocol(id, validatorNames)
	})
	for _, outcome := range outcomes {
		if outcome.writeErr != nil {
			return outcomes, outcome.writeErr
		}
	}
	return outcomes, nil
}

// Summarize builds and writes one summary per validator from the joined
// outcomes. Must run only after ValidateAll returns: it is the barrier
// consumer and the sole writer of the summary files.
func (r *Runner) Summarize(validatorNames []string, outcomes []ProtocolOutcome) ([]evidence.Summary, []evidence.Artifact, error) {
	var summaries []evidence.Summary
	var artifacts []evidence.Artifact
	for _, name := range validatorNames {
		var results []rubric.ValidationResult
		for _, outcome := range outcomes {
			for _, res := range outcome.Results {
				if res.Validator == name {
					results = append(results, res)
				}
			}
		}
		summary := evidence.BuildSummary(name, results)
		artifact, err := r.Writer.WriteSummary(summary)
		if err != nil {
			return nil, nil, err
		}
		summaries = append(summaries, summary)
		artifacts = append(artifacts, artifact)
	}
	return summaries, artifacts, nil
}

// WriteManifest assembles and persists the invocation evidence manifest.
func (r *Runner) WriteManifest(scope string, outcomes []ProtocolOutcome, extra []evidence.Artifact) (*evidence.Manifest, error) {
	manifest := evidence.NewManifest(scope)
	for _, outcome := range outcomes {
		for _, artifact := range outcome.Artifacts {
			manifest.Add(artifact)
		}
		manifest.Tally(outcome.Results...)
	}
	for _, artifact := range extra {
		manifest.Add(artifact)
	}
	if _, err := r.Writer.WriteManifest(manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}
