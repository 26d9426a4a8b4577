package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zjrosen/spacetraders/internal/api"
	"github.com/zjrosen/spacetraders/internal/presentation"
)

var (
	contractsPage  int64
	contractsLimit int64
)

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List and accept contracts",
}

var contractsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of the agent's contracts from the server",
	Long: `List one page of the agent's contracts from the server.

Examples:
  spacetraders contracts list
  spacetraders contracts list --page 2 --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := api.NewPageRequest(contractsPage, contractsLimit)
		if err != nil {
			return err
		}
		return runContractsList(cmd.Context(), current, req)
	},
}

var contractsAcceptCmd = &cobra.Command{
	Use:   "accept <contract-id>",
	Short: "Accept a contract from the saved session",
	Long: `Accept a contract. Accepting an already accepted contract succeeds
without contacting the server.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runContractsAccept(cmd.Context(), current, args[0])
	},
}

func init() {
	contractsListCmd.Flags().Int64VarP(&contractsPage, "page", "p", 1, "page number")
	contractsListCmd.Flags().Int64VarP(&contractsLimit, "limit", "l", api.DefaultPageLimit, "page size (1-20)")
	contractsCmd.AddCommand(contractsListCmd, contractsAcceptCmd)
	rootCmd.AddCommand(contractsCmd)
}

func runContractsList(ctx context.Context, a *app, req api.PageRequest) error {
	if err := a.load(); err != nil {
		return err
	}
	page, err := a.client.ListContracts(ctx, req)
	if err != nil {
		return err
	}
	return a.out.Print(presentation.FromPage(page, presentation.FromContract))
}

func runContractsAccept(ctx context.Context, a *app, id string) error {
	if err := a.load(); err != nil {
		return err
	}
	contract, err := a.client.AcceptContract(ctx, id)
	if err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}
	return a.out.Print(presentation.FromContract(contract))
}
