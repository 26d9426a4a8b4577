package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zjrosen/spacetraders/internal/presentation"
)

var agentRefresh bool

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Show the saved agent",
	Long: `Show the agent from the saved session.

With --refresh the agent is fetched from the server first and the session is
saved again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAgent(cmd.Context(), current, agentRefresh)
	},
}

func init() {
	agentCmd.Flags().BoolVarP(&agentRefresh, "refresh", "r", false, "fetch the agent from the server")
	rootCmd.AddCommand(agentCmd)
}

func runAgent(ctx context.Context, a *app, refresh bool) error {
	if err := a.load(); err != nil {
		return err
	}
	if refresh {
		if _, err := a.client.RefreshAgent(ctx); err != nil {
			return err
		}
		if err := a.save(); err != nil {
			return err
		}
	}
	return a.out.Print(presentation.FromAgent(a.client.Cache()))
}
