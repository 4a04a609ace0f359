package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/polite/internal/config"
)

func newListCmd(ctx *context) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every alias in the local configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := config.LoadLocal(ctx.settings.ConfigPath)
			if err != nil {
				return err
			}

			aliases := make([]config.Alias, 0, len(configs))
			for alias := range configs {
				aliases = append(aliases, alias)
			}
			sort.Slice(aliases, func(i, j int) bool { return aliases[i] < aliases[j] })

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ALIAS\tNICENESS\tOOM_SCORE_ADJ")
			for _, alias := range aliases {
				cfg := configs[alias]
				fmt.Fprintf(w, "%d\t%d\t%d\n", alias, cfg.Niceness, cfg.OOMScoreAdj)
			}
			return w.Flush()
		},
	}
}
