package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Test the Slack connection and print bot identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifier, err := loadNotifier(newLogger())
			if err != nil {
				return err
			}

			id, err := notifier.Probe(cmd.Context())
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s Connected to Slack\n", green("✅"))
			fmt.Fprintf(cmd.OutOrStdout(), "  User:    %s (%s)\n", id.User, id.UserID)
			fmt.Fprintf(cmd.OutOrStdout(), "  Team:    %s (%s)\n", id.Team, id.TeamID)
			if id.URL != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  URL:     %s\n", id.URL)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  Channel: %s\n", id.Channel)
			return nil
		},
	}
}
