package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nextwave/siteclient/pkg/searchui"
	"github.com/nextwave/siteclient/pkg/tui"
)

func newTUICmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive search box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := g.searchClient()
			if err != nil {
				return err
			}
			// Log lines would be drawn over the alternate screen.
			log := zerolog.Nop()
			if g.verbose {
				log = *g.log
			}
			model, err := tui.New(commandContext(cmd), client, searchui.Options{
				Delay: g.cfg.Debounce(),
				Log:   log,
			})
			if err != nil {
				return err
			}
			defer model.Shutdown()
			if _, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(commandContext(cmd))).Run(); err != nil {
				return fmt.Errorf("tui failed: %w", err)
			}
			if chosen := model.Chosen(); chosen != "" {
				fmt.Fprintln(cmd.OutOrStdout(), g.cfg.Search.BaseURL+chosen)
			}
			return nil
		},
	}
}
