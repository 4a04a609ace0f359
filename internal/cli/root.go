package cli

import (
	stdcontext "context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/polite/internal/config"
	"github.com/Paintersrp/polite/internal/launch"
	"github.com/Paintersrp/polite/internal/policy"
)

func NewRootCmd() *cobra.Command {
	root, _ := newRootCommand()
	return root
}

func newRootCommand() (*cobra.Command, *context) {
	settings := settingsFromEnv()

	root := &cobra.Command{
		Use:   "polite",
		Short: "Launch programs with considerate scheduling and OOM settings",
	}

	root.PersistentFlags().
		StringVarP(&settings.ConfigPath, "config", "f", settings.ConfigPath, "Path to the local alias configuration")
	root.PersistentFlags().
		StringVar(&settings.RemoteURL, "remote-url", settings.RemoteURL, "URL of the shared configuration document")
	root.PersistentFlags().
		DurationVar(&settings.RefreshInterval, "refresh-interval", settings.RefreshInterval, "Minimum age of the last remote fetch before refetching")
	root.PersistentFlags().
		StringVar(&settings.RulesPath, "rules", settings.RulesPath, "YAML rule table for the fallback decision")
	root.PersistentFlags().
		StringVar(&settings.StateDir, "state-dir", settings.StateDir, "Directory holding the last-refresh timestamp")

	ctx := &context{settings: &settings}
	root.AddCommand(newRunCmd(ctx))
	root.AddCommand(newStatusCmd())
	root.AddCommand(newListCmd(ctx))
	root.AddCommand(newConfigCmd(ctx))

	root.SilenceUsage = true
	root.SilenceErrors = true

	return root, ctx
}

// Execute runs the CLI entrypoint. A child's nonzero exit status
// becomes this process's exit code.
func Execute() {
	ctx, stop := signal.NotifyContext(stdcontext.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	root.SetContext(ctx)

	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr *launch.ExitStatusError
		if errors.As(err, &exitErr) {
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

type context struct {
	settings *settings
}

type settings struct {
	ConfigPath      string
	RemoteURL       string
	RefreshInterval time.Duration
	RulesPath       string
	StateDir        string
}

func settingsFromEnv() settings {
	cfg := settings{
		ConfigPath:      config.DefaultPath,
		RemoteURL:       config.DefaultRemoteURL,
		RefreshInterval: policy.DefaultRefreshInterval,
	}
	if value := os.Getenv("POLITE_CONFIG"); value != "" {
		cfg.ConfigPath = value
	}
	if value := os.Getenv("POLITE_REMOTE_URL"); value != "" {
		cfg.RemoteURL = value
	}
	if value := os.Getenv("POLITE_REFRESH_INTERVAL"); value != "" {
		if interval, err := time.ParseDuration(value); err == nil && interval > 0 {
			cfg.RefreshInterval = interval
		}
	}
	if value := os.Getenv("POLITE_RULES"); value != "" {
		cfg.RulesPath = value
	}
	if value := os.Getenv("POLITE_STATE_DIR"); value != "" {
		cfg.StateDir = value
	}
	return cfg
}

// resolver assembles the resolution policy from the effective settings.
func (c *context) resolver() (*policy.Resolver, error) {
	var rules []policy.Rule
	if c.settings.RulesPath != "" {
		loaded, err := policy.LoadRules(c.settings.RulesPath)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}
	oracle, err := policy.NewRuleOracle(rules)
	if err != nil {
		return nil, err
	}
	store, err := policy.NewFileStore(c.settings.StateDir)
	if err != nil {
		return nil, err
	}
	return &policy.Resolver{
		LocalPath:       c.settings.ConfigPath,
		Remote:          config.NewFetcher(c.settings.RemoteURL, nil),
		Strategy:        oracle,
		Refresh:         store,
		RefreshInterval: c.settings.RefreshInterval,
	}, nil
}
