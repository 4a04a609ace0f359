package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/polite/internal/config"
	"github.com/Paintersrp/polite/internal/launch"
)

func newRunCmd(ctx *context) *cobra.Command {
	var hold bool

	cmd := &cobra.Command{
		Use:   "run <alias> <program>",
		Short: "Resolve settings for an alias and launch a program under them",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias, err := parseAlias(args[0])
			if err != nil {
				return err
			}
			program := args[1]

			resolver, err := ctx.resolver()
			if err != nil {
				return err
			}
			cfg, err := resolver.Resolve(cmd.Context(), alias, program)
			if err != nil {
				return err
			}

			opts := []launch.Option{
				launch.WithStdout(cmd.OutOrStdout()),
				launch.WithStderr(cmd.ErrOrStderr()),
				launch.WithPostStart(func(pid int) error {
					if err := launch.Apply(pid, cfg); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Started %s with alias %d (%s)\n", program, alias, cfg)
					return nil
				}),
			}
			if hold {
				opts = append(opts, launch.WithHold())
			}

			code, err := launch.Launch(cmd.Context(), program, opts...)
			if err != nil {
				return err
			}
			if code != 0 {
				return &launch.ExitStatusError{Code: code}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hold, "hold", false, "Keep the child stopped until its settings are applied")
	return cmd
}

func parseAlias(raw string) (config.Alias, error) {
	value, err := strconv.ParseInt(raw, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("parse alias %q: %w", raw, err)
	}
	return config.Alias(value), nil
}
