package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/slacknotify"
)

// smokeScenarios are literal end-to-end scenarios posted to the real
// configured channel. Each exercises a different shape of request.
var smokeScenarios = []struct {
	name string
	req  slacknotify.Request
}{
	{
		name: "Basic completion",
		req: slacknotify.Request{
			Summary: "Successfully processed customer data batch",
			Status:  slacknotify.StatusCompleted,
		},
	},
	{
		name: "Detailed success with agent info",
		req: slacknotify.Request{
			Summary:   "Machine learning model training completed",
			Details:   "Trained on 10K samples, achieved 95% accuracy, saved model to production",
			Status:    slacknotify.StatusSuccess,
			TaskID:    "ML-TRAIN-001",
			AgentName: "MLTrainingAgent",
		},
	},
	{
		name: "Error notification",
		req: slacknotify.Request{
			Summary:   "Database connection failed",
			Details:   "Connection timeout after 30 seconds. Will retry with exponential backoff.",
			Status:    slacknotify.StatusFailed,
			AgentName: "DatabaseAgent",
			TaskID:    "DB-SYNC-456",
		},
	},
	{
		name: "Progress update",
		req: slacknotify.Request{
			Summary:   "Long-running data analysis in progress",
			Details:   "Processed 2,500/10,000 records (25% complete). ETA: 2 hours.",
			Status:    slacknotify.StatusInProgress,
			AgentName: "DataAnalysisAgent",
		},
	},
}

func newSmokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Post the built-in smoke-test scenarios to the configured channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifier, err := loadNotifier(newLogger())
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			red := color.New(color.FgRed).SprintFunc()

			failures := 0
			for i, sc := range smokeScenarios {
				fmt.Fprintf(cmd.OutOrStdout(), "📝 Test %d: %s\n", i+1, sc.name)

				receipt, err := notifier.Send(cmd.Context(), sc.req)
				if err != nil {
					failures++
					fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n\n", red("❌"), err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s sent (ts %s)\n\n", green("✅"), receipt.MessageTS)
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d scenarios failed", failures, len(smokeScenarios))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "🎉 All scenarios sent. Check channel #%s for messages.\n", notifier.Channel())
			return nil
		},
	}
}
