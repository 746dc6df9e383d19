package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/y23cs140nandinipinneboina/sahayak/internal/pages"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := pages.Table()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tPAGE")
			for _, r := range table.Routes() {
				fmt.Fprintf(tw, "%s\t%s\n", r.Path, r.Page)
			}
			return tw.Flush()
		},
	}
}
