package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mj1618/nc-clear/internal/config"
	"github.com/mj1618/nc-clear/internal/logger"
	"github.com/mj1618/nc-clear/internal/notify"
	"github.com/mj1618/nc-clear/internal/output"
	"github.com/mj1618/nc-clear/internal/platform"
	"github.com/mj1618/nc-clear/internal/version"
	"github.com/spf13/cobra"
)

// newProvider is swapped in tests.
var newProvider = platform.NewProvider

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "nc-clear",
		Short: "Dismiss macOS notification popups",
		Long: "Find the notification alerts that NotificationCenter shows on screen via the " +
			"accessibility API and close them.\n\n" +
			"Settings can also come from ~/.config/nc-clear/config.toml or NC_CLEAR_* " +
			"environment variables. Set LOG_LEVEL=debug for detailed logs.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runClear,
	}
	c.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)

	flags := c.Flags()
	flags.String("mode", string(notify.ModeConcurrent), "Close mode: concurrent or sequential")
	flags.Int("max-workers", 0, "Max notifications closed at once in concurrent mode (0 = no limit)")
	flags.Bool("dry-run", false, "Find notifications and report them without closing")
	flags.String("format", "", "Print a run summary to stdout: yaml or json")
	flags.Bool("log-json", false, "Write logs as JSON")
	return c
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "\n%s\n", hint)
	}
}

func runClear(cmd *cobra.Command, args []string) error {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	if err := logger.Initialize(cfg.LogJSON); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	defer logger.Sync()

	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.CheckPermission != nil {
		if err := provider.CheckPermission(); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	summary, err := clearNotifications(ctx, provider, cfg)
	if err != nil {
		return err
	}
	return output.Print(cmd.OutOrStdout(), output.Format(cfg.Format), summary)
}

// clearNotifications locates the on-screen notification groups and closes
// them, or only describes them in dry-run mode.
func clearNotifications(ctx context.Context, provider *platform.Provider, cfg *config.Config) (*output.Summary, error) {
	start := time.Now()
	ax := provider.Accessibility

	groups, err := notify.NewLocator(ax, provider.Processes).Locate(ctx)
	if err != nil {
		return nil, err
	}
	defer notify.ReleaseAll(groups)

	summary := &output.Summary{
		Mode:   string(cfg.ParsedMode()),
		DryRun: cfg.DryRun,
		Found:  len(groups),
	}

	switch {
	case len(groups) == 0:
		logger.Logger.Info("No notifications found")
	case cfg.DryRun:
		for _, g := range groups {
			summary.Groups = append(summary.Groups, notify.Describe(ax, g))
		}
		logger.Logger.Infow("Found notification groups (dry run)", "found", len(groups))
	default:
		logger.Logger.Infow("Found notification groups, closing", "found", len(groups), "mode", summary.Mode)
		closer := notify.NewCloser(ax,
			notify.WithMode(cfg.ParsedMode()),
			notify.WithMaxWorkers(cfg.MaxWorkers))
		summary.Closed = closer.Close(groups)
	}

	summary.ElapsedMs = time.Since(start).Milliseconds()
	if len(groups) > 0 && !cfg.DryRun {
		logger.Logger.Infow("Closed notifications", "closed", summary.Closed, "found", summary.Found, "elapsed_ms", summary.ElapsedMs)
	}
	return summary, nil
}
