package main

import (
	"fmt"

	"github.com/metalagman/protovet/internal/history"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:          "runs",
		Short:        "List and prune recorded engine invocations",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			workspaceRoot, err := resolveWorkspace()
			if err != nil {
				return err
			}
			db, closeFn, err := openHistory(workspaceRoot)
			if err != nil {
				return err
			}
			defer closeFn()

			store := history.NewStore(db)
			invocations, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(invocations) == 0 {
				fmt.Println("no recorded invocations")
				return nil
			}
			for _, inv := range invocations {
				fmt.Printf("%s  %s  %-8s  %d protocols  %d pass / %d warn / %d fail  avg %.3f\n",
					inv.ID, inv.StartedAt, inv.Mode, inv.Total,
					inv.PassCount, inv.WarningCount, inv.FailCount, inv.AverageScore)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum invocations to list")
	cmd.AddCommand(runsPruneCmd())
	return cmd
}

func runsPruneCmd() *cobra.Command {
	var keepLast int
	var keepDays int
	var dryRun bool
	cmd := &cobra.Command{
		Use:          "prune",
		Short:        "Prune old invocations from the history database",
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

			policy := history.RetentionPolicy{KeepLast: keepLast, KeepDays: keepDays}
			if policy.KeepLast <= 0 && policy.KeepDays <= 0 {
				policy = history.RetentionPolicy{
					KeepLast: cfg.Retention.KeepLast,
					KeepDays: cfg.Retention.KeepDays,
				}
			}
			if policy.KeepLast <= 0 && policy.KeepDays <= 0 {
				return fmt.Errorf("set --keep-last or --keep-days (or configure retention in .protovet/config.json)")
			}

			db, closeFn, err := openHistory(workspaceRoot)
			if err != nil {
				return err
			}
			defer closeFn()

			store := history.NewStore(db)
			res, err := store.Prune(cmd.Context(), policy, dryRun)
			if err != nil {
				return err
			}
			mode := "deleted"
			if dryRun {
				mode = "would delete"
			}
			log.Info().Msgf("%s %d invocations (kept %d of %d)", mode, res.Deleted, res.Kept, res.Considered)
			return nil
		},
	}
	cmd.Flags().IntVar(&keepLast, "keep-last", 0, "keep the newest N invocations")
	cmd.Flags().IntVar(&keepDays, "keep-days", 0, "keep invocations newer than N days")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be pruned without deleting")
	return cmd
}
