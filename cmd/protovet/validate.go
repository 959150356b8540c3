package main

import (
	"fmt"

	"github.com/metalagman/protovet/internal/engine"
	"github.com/metalagman/protovet/internal/evidence"
	"github.com/metalagman/protovet/internal/history"
	"github.com/metalagman/protovet/internal/rubric"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var protocolID string
	var all bool
	var validatorName string
	var forceReport bool
	cmd := &cobra.Command{
		Use:          "validate",
		Short:        "Validate protocol documents against the rubric",
		Long:         "Validate one protocol (--protocol) or every discoverable protocol (--all). Exits nonzero when any protocol fails.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (protocolID == "") == !all {
				return fmt.Errorf("exactly one of --protocol or --all is required")
			}

			workspaceRoot, err := resolveWorkspace()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(workspaceRoot)
			if err != nil {
				return err
			}
			runner, registry, err := buildRunner(cfg)
			if err != nil {
				return err
			}

			names := registry.Names()
			if validatorName != "" {
				if _, err := registry.Resolve(validatorName); err != nil {
					return err
				}
				names = []string{validatorName}
			}

			ids := []string{protocolID}
			scope := protocolID
			if all {
				ids, err = runner.Loader.Discover()
				if err != nil {
					return err
				}
				if len(ids) == 0 {
					return fmt.Errorf("no protocol documents found under %s", cfg.Paths.ProtocolsDir)
				}
				scope = "batch"
			}

			startedAt := rubric.Now()
			outcomes, err := runner.ValidateAll(cmd.Context(), ids, names)
			if err != nil {
				return err
			}

			failCount := 0
			inv := history.Invocation{StartedAt: startedAt, Mode: "validate", Total: len(outcomes)}
			for _, outcome := range outcomes {
				status := outcome.Status()
				fmt.Println(protocolLine(outcome.ProtocolID, status, outcome.Score()))
				switch status {
				case rubric.StatusPass:
					inv.PassCount++
				case rubric.StatusWarning:
					inv.WarningCount++
				default:
					inv.FailCount++
					failCount++
				}
				inv.Protocols = append(inv.Protocols, history.ProtocolRow{
					ProtocolID: outcome.ProtocolID,
					Status:     string(status),
					Score:      outcome.Score(),
				})
			}

			extras, err := writeSummaries(runner, names, outcomes, all || forceReport)
			if err != nil {
				return err
			}
			manifest, err := runner.WriteManifest(scope, outcomes, extras)
			if err != nil {
				return err
			}

			inv.AverageScore = manifest.Stats.AverageScore
			inv.ManifestPath = runner.Writer.ManifestPath()
			recordInvocation(cmd.Context(), workspaceRoot, inv)

			fmt.Println(summaryLine(inv.PassCount, inv.WarningCount, inv.FailCount,
				manifest.Stats.AverageScore, cfg.Paths.ValidationDir))
			if failCount > 0 {
				return fmt.Errorf("%d protocol(s) in fail status", failCount)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&protocolID, "protocol", "", "two-digit protocol id to validate")
	cmd.Flags().BoolVar(&all, "all", false, "validate every discoverable protocol")
	cmd.Flags().StringVar(&validatorName, "validator", "", "run a single validator instead of all ten")
	cmd.Flags().BoolVar(&forceReport, "report", false, "write summary reports even for a single protocol")
	return cmd
}

// writeSummaries emits per-validator summaries for batch runs, or when
// --report forces regeneration for a single protocol.
func writeSummaries(runner *engine.Runner, names []string, outcomes []engine.ProtocolOutcome, wanted bool) ([]evidence.Artifact, error) {
	if !wanted {
		return nil, nil
	}
	_, artifacts, err := runner.Summarize(names, outcomes)
	return artifacts, err
}
