package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nextwave/siteclient/pkg/theme"
)

func newThemeCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the site theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			controller := g.themeController()
			current := controller.Load()
			if len(args) == 1 {
				var err error
				if args[0] == "toggle" {
					current, err = controller.Toggle(commandContext(cmd))
				} else if current, err = theme.Parse(args[0]); err == nil {
					err = controller.Set(current)
				}
				if err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", current, current.Icon())
			return nil
		},
	}
}
