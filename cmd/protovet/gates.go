package main

import (
	"context"
	"fmt"

	"github.com/metalagman/protovet/internal/batch"
	"github.com/metalagman/protovet/internal/evidence"
	"github.com/metalagman/protovet/internal/gate"
	"github.com/metalagman/protovet/internal/history"
	"github.com/metalagman/protovet/internal/protocol"
	"github.com/metalagman/protovet/internal/rubric"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func gatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gates",
		Short: "Run gate pipelines from per-protocol gate configs",
	}
	cmd.AddCommand(gatesRunCmd())
	return cmd
}

func gatesRunCmd() *cobra.Command {
	var protocolID string
	var all bool
	cmd := &cobra.Command{
		Use:          "run",
		Short:        "Execute the configured gates for one or all protocols",
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
			engineRunner, registry, err := buildRunner(cfg)
			if err != nil {
				return err
			}
			gateRunner := gate.NewRunner(
				protocol.NewLoader(cfg.Paths.ProtocolsDir), registry, cfg.Paths.GatesDir)

			ids := []string{protocolID}
			if all {
				ids, err = gateRunner.Loader.Discover()
				if err != nil {
					return err
				}
			}

			startedAt := rubric.Now()
			// Gate pipelines are independent per protocol; a halt in one
			// never blocks the others.
			reports := batch.Run(cmd.Context(), ids, cfg.Workers, func(_ context.Context, id string) gate.Report {
				if all && !gateRunner.HasConfig(id) {
					log.Debug().Str("protocol", id).Msg("no gate config, skipping")
					return gate.Report{ProtocolID: id, State: ""}
				}
				return gateRunner.RunProtocol(id)
			})

			manifest := evidence.NewManifest(manifestScope(all, protocolID))
			inv := history.Invocation{StartedAt: startedAt, Mode: "gates"}
			failCount := 0
			for _, report := range reports {
				if report.State == "" {
					continue
				}
				artifact, err := engineRunner.Writer.WriteGateReport(report.ProtocolID, report)
				if err != nil {
					return err
				}
				manifest.Add(artifact)

				status := gateStatus(report)
				score := gateScore(report)
				fmt.Println(protocolLine(report.ProtocolID, status, score))
				inv.Total++
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
					ProtocolID: report.ProtocolID,
					Status:     string(status),
					Score:      score,
				})
				for _, g := range report.Gates {
					if g.Result != nil {
						manifest.Tally(*g.Result)
					}
				}
			}
			if inv.Total == 0 {
				return fmt.Errorf("no gate configs found under %s", cfg.Paths.GatesDir)
			}

			if _, err := engineRunner.Writer.WriteManifest(manifest); err != nil {
				return err
			}
			inv.AverageScore = manifest.Stats.AverageScore
			inv.ManifestPath = engineRunner.Writer.ManifestPath()
			recordInvocation(cmd.Context(), workspaceRoot, inv)

			fmt.Println(summaryLine(inv.PassCount, inv.WarningCount, inv.FailCount,
				manifest.Stats.AverageScore, cfg.Paths.ValidationDir))
			if failCount > 0 {
				return fmt.Errorf("%d protocol(s) failed their gates", failCount)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&protocolID, "protocol", "", "two-digit protocol id")
	cmd.Flags().BoolVar(&all, "all", false, "run gates for every protocol with a gate config")
	return cmd
}

func manifestScope(all bool, protocolID string) string {
	if all {
		return evidence.BatchProtocolID
	}
	return protocolID
}

func gateStatus(report gate.Report) rubric.Status {
	if report.Failed() {
		return rubric.StatusFail
	}
	for _, g := range report.Gates {
		if g.Status == gate.GateWarned {
			return rubric.StatusWarning
		}
	}
	return rubric.StatusPass
}

func gateScore(report gate.Report) float64 {
	n := 0
	total := 0.0
	for _, g := range report.Gates {
		if g.Status == gate.GateNotRun || g.Result == nil {
			continue
		}
		total += g.Score
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}
