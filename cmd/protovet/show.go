package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "show <protocol-id>",
		Short:        "Render a protocol document in the terminal",
		Args:         cobra.ExactArgs(1),
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
			runner, _, err := buildRunner(cfg)
			if err != nil {
				return err
			}
			doc, err := runner.Loader.Load(args[0])
			if err != nil {
				return err
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return fmt.Errorf("init renderer: %w", err)
			}
			out, err := renderer.Render(doc.Raw())
			if err != nil {
				return fmt.Errorf("render %s: %w", doc.Path, err)
			}
			fmt.Print(out)
			return nil
		},
	}
	return cmd
}
