package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nextwave/siteclient/pkg/formux"
)

func newFilterCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "filter <path> [field=value...]",
		Short: "Print the listing URL for a set of job or blog filters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target string
			form := formux.NewFilterForm(g.cfg.Search.BaseURL+args[0], func(url string) {
				target = url
			})
			for _, arg := range args[1:] {
				field, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid filter %q, expected field=value", arg)
				}
				if err := form.Change(field, value); err != nil {
					return err
				}
			}
			if target == "" {
				var err error
				if target, err = form.Target(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
}
