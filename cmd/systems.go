package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zjrosen/spacetraders/internal/api"
	"github.com/zjrosen/spacetraders/internal/presentation"
)

var (
	shipyardsPage  int64
	shipyardsLimit int64
)

var waypointCmd = &cobra.Command{
	Use:   "waypoint <system> <waypoint>",
	Short: "Show a waypoint",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWaypoint(cmd.Context(), current, args[0], args[1])
	},
}

var shipyardCmd = &cobra.Command{
	Use:   "shipyard <system> <waypoint>",
	Short: "Show the ships a shipyard sells",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShipyard(cmd.Context(), current, args[0], args[1])
	},
}

var shipyardsCmd = &cobra.Command{
	Use:   "shipyards [system]",
	Short: "Find waypoints with a shipyard",
	Long: `Find waypoints with a shipyard in a system, one page at a time.

Without a system the agent's starting system is searched.

Examples:
  spacetraders shipyards
  spacetraders shipyards X1-ZA40 --page 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := api.NewPageRequest(shipyardsPage, shipyardsLimit)
		if err != nil {
			return err
		}
		system := ""
		if len(args) == 1 {
			system = args[0]
		}
		return runShipyards(cmd.Context(), current, system, req)
	},
}

func init() {
	shipyardsCmd.Flags().Int64VarP(&shipyardsPage, "page", "p", 1, "page number")
	shipyardsCmd.Flags().Int64VarP(&shipyardsLimit, "limit", "l", api.DefaultPageLimit, "page size (1-20)")
	rootCmd.AddCommand(waypointCmd, shipyardCmd, shipyardsCmd)
}

func runWaypoint(ctx context.Context, a *app, system, waypoint string) error {
	if err := a.load(); err != nil {
		return err
	}
	wp, err := a.client.ViewWaypoint(ctx, system, waypoint)
	if err != nil {
		return err
	}
	return a.out.Print(presentation.FromWaypoint(wp))
}

func runShipyard(ctx context.Context, a *app, system, waypoint string) error {
	if err := a.load(); err != nil {
		return err
	}
	yard, err := a.client.ViewShipyard(ctx, system, waypoint)
	if err != nil {
		return err
	}
	return a.out.Print(presentation.FromShipyard(yard))
}

func runShipyards(ctx context.Context, a *app, system string, req api.PageRequest) error {
	if err := a.load(); err != nil {
		return err
	}
	if system == "" {
		start, err := a.client.StartingSystem()
		if err != nil {
			return err
		}
		system = start.String()
	}
	page, err := a.client.FindShipyards(ctx, system, req)
	if err != nil {
		return err
	}
	return a.out.Print(presentation.FromPage(page, presentation.FromWaypoint))
}
