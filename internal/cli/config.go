package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/polite/internal/config"
	"github.com/Paintersrp/polite/internal/policy"
)

func newConfigCmd(ctx *context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Work with polite configuration files",
	}
	cmd.AddCommand(newConfigLintCmd(ctx))
	return cmd
}

func newConfigLintCmd(ctx *context) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Validate the local configuration and rule table",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := config.LoadLocal(ctx.settings.ConfigPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d aliases\n", ctx.settings.ConfigPath, len(configs))

			if ctx.settings.RulesPath != "" {
				rules, err := policy.LoadRules(ctx.settings.RulesPath)
				if err != nil {
					return err
				}
				if _, err := policy.NewRuleOracle(rules); err != nil {
					return fmt.Errorf("%s: %w", ctx.settings.RulesPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rules\n", ctx.settings.RulesPath, len(rules))
			}
			return nil
		},
	}
}
