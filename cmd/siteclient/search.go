package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nextwave/siteclient/pkg/searchui"
)

func newSearchCmd(g *globals) *cobra.Command {
	var asHTML bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a single site search",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := g.searchClient()
			if err != nil {
				return err
			}
			var panel searchui.Panel
			htmlPanel := &searchui.HTMLPanel{}
			if asHTML {
				panel = htmlPanel
			} else {
				panel = searchui.NewWriterPanel(cmd.OutOrStdout())
			}
			controller := searchui.NewController(commandContext(cmd), client, panel, searchui.Options{
				Delay: g.cfg.Debounce(),
				Log:   *g.log,
			})
			defer controller.Close()

			controller.OnSubmit(strings.Join(args, " "))
			controller.Wait()
			if asHTML {
				fmt.Fprintln(cmd.OutOrStdout(), htmlPanel.HTML())
			}
			if controller.State().Kind == searchui.StateFailed {
				return exitError(1)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "print the results dropdown markup instead of text")
	return cmd
}
