package main

import (
	"fmt"

	"github.com/metalagman/protovet/internal/evidence"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var validatorName string
	cmd := &cobra.Command{
		Use:          "report",
		Short:        "Regenerate summary reports from stored validation results",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			written := 0
			for _, name := range names {
				results, err := runner.Writer.LoadResults(name)
				if err != nil {
					return err
				}
				if len(results) == 0 {
					continue
				}
				summary := evidence.BuildSummary(name, results)
				if _, err := runner.Writer.WriteSummary(summary); err != nil {
					return err
				}
				fmt.Printf("%s: %s\n", name,
					summaryLine(summary.PassCount, summary.WarningCount, summary.FailCount,
						summary.AverageScore, runner.Writer.SummaryPath(name)))
				written++
			}
			if written == 0 {
				return fmt.Errorf("no stored results under %s; run validate first", cfg.Paths.ValidationDir)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&validatorName, "validator", "", "regenerate a single validator's summary")
	return cmd
}
