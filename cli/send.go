package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/slacknotify"
)

func newSendCmd() *cobra.Command {
	var req slacknotify.Request

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a single progress update",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifier, err := loadNotifier(newLogger())
			if err != nil {
				return err
			}

			receipt, err := notifier.Send(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), receipt)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Summary, "summary", "", "summary of what was accomplished (required)")
	cmd.Flags().StringVar(&req.Details, "details", "", "detailed information about the task")
	cmd.Flags().StringVar(&req.Status, "status", slacknotify.DefaultStatus, "status tag (completed, failed, in_progress, ...)")
	cmd.Flags().StringVar(&req.Timestamp, "timestamp", "", "ISO timestamp (defaults to now)")
	cmd.Flags().StringVar(&req.TaskID, "task-id", "", "task identifier")
	cmd.Flags().StringVar(&req.AgentName, "agent", "", "name of the reporting agent")
	cmd.Flags().StringVar(&req.ThreadTS, "thread", "", "thread timestamp to reply under")
	cmd.MarkFlagRequired("summary")

	return cmd
}
