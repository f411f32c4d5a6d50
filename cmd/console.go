package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/trknhr/hmmtag/internal/tui"
)

func newConsoleCmd(a *app) *cobra.Command {
	var name string
	var demo bool

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Tag sentences interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.decoder(name, demo)
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.NewSession(d),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run console: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "model name (default from config)")
	cmd.Flags().BoolVar(&demo, "demo", false, "use the built-in demo model")

	return cmd
}
