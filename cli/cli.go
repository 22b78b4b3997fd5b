package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/slacknotify"
	"github.com/randalmurphal/slacknotify/config"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var envFile string

// Execute runs the CLI. Errors are printed with their remediation text
// before the non-zero exit.
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "❌ %v\n", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "slacknotify",
		Short:         "Slack progress-update notifier and MCP server",
		Long:          "slacknotify posts agent progress updates to a pre-configured Slack channel,\neither directly from the command line or as an MCP stdio server.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to a key=value file loaded before the environment")

	root.AddCommand(newServeCmd())
	root.AddCommand(newProbeCmd())
	root.AddCommand(newSendCmd())
	root.AddCommand(newSmokeCmd())

	return root
}

// newLogger builds the process logger. Everything goes to stderr: when
// serving, stdout belongs to the stdio transport.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// loadNotifier resolves configuration and constructs the core notifier.
// The token format check is hard here, matching the sender's contract.
func loadNotifier(logger *slog.Logger) (*slacknotify.Notifier, error) {
	cfg, err := config.Load(config.WithEnvFile(envFile))
	if err != nil {
		return nil, err
	}
	return slacknotify.New(cfg, slacknotify.WithLogger(logger))
}

// preflight resolves configuration for serve, downgrading a malformed
// token to a warning so the probe can produce the authoritative error.
func preflight() (*config.Config, error) {
	cfg, err := config.Load(config.WithEnvFile(envFile))
	if err != nil {
		return nil, err
	}

	if err := cfg.CheckToken(); err != nil {
		color.New(color.FgYellow).Fprintf(os.Stderr, "⚠️  Warning: bot token doesn't look like a valid Slack token (%s)\n", cfg.Redacted())
		fmt.Fprintf(os.Stderr, "   Expected format: %s... for bot tokens or %s... for user tokens\n",
			config.BotTokenPrefix, config.UserTokenPrefix)
	}

	return cfg, nil
}
