package cli

import (
	"github.com/spf13/cobra"

	"github.com/randalmurphal/slacknotify"
	"github.com/randalmurphal/slacknotify/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP stdio server",
		Long: "Validates configuration, probes the Slack connection, then serves the\n" +
			"slack-progress-update tool over stdio until the client disconnects.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := preflight()
			if err != nil {
				return err
			}

			notifier, err := slacknotify.New(cfg, slacknotify.WithLogger(logger))
			if err != nil {
				return err
			}

			// Fail fast with a clear diagnostic before accepting requests.
			id, err := notifier.Probe(cmd.Context())
			if err != nil {
				return err
			}

			logger.Info("connected to Slack",
				"user", id.User,
				"team", id.Team,
				"channel", id.Channel)
			logger.Info("serving MCP over stdio")

			return server.Run(cmd.Context(), notifier, Version)
		},
	}
}
