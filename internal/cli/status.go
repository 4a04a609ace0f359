package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/polite/internal/inspect"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <pid>",
		Short: "Show the currently-applied settings of a running process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse pid %q: %w", args[0], err)
			}
			if pid <= 0 {
				return fmt.Errorf("pid must be positive, got %d", pid)
			}
			status, err := inspect.Settings(pid)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), status)
			return nil
		},
	}
}
