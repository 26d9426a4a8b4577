package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/zjrosen/spacetraders/internal/ledger"
	"github.com/zjrosen/spacetraders/internal/presentation"
)

var (
	ledgerKind  string
	ledgerLimit int
)

// errLedgerDisabled is returned by the ledger command when ledger.enabled is false.
var errLedgerDisabled = errors.New("the credit ledger is disabled (ledger.enabled: false)")

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Show recorded credit changes for the saved agent",
	Long: `Show every credit change the client confirmed with the server for the
saved agent, newest first, with their net sum.

Examples:
  spacetraders ledger
  spacetraders ledger --kind ship_purchased --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLedger(cmd.Context(), current, ledger.ListFilter{Kind: ledger.Kind(ledgerKind), Limit: ledgerLimit})
	},
}

func init() {
	ledgerCmd.Flags().StringVarP(&ledgerKind, "kind", "k", "", "only entries of this kind (registered, contract_accepted, ship_purchased)")
	ledgerCmd.Flags().IntVarP(&ledgerLimit, "limit", "l", 0, "maximum number of entries (0 for all)")
	rootCmd.AddCommand(ledgerCmd)
}

func runLedger(ctx context.Context, a *app, filter ledger.ListFilter) error {
	if a.ledger == nil {
		return errLedgerDisabled
	}
	if filter.Kind != "" && !filter.Kind.IsValid() {
		return &ledger.InvalidKindError{Kind: filter.Kind}
	}
	if err := a.load(); err != nil {
		return err
	}
	agent := a.client.Cache().Agent().Symbol.String()

	entries, err := a.ledger.List(ctx, agent, filter)
	if err != nil {
		return err
	}
	net, err := a.ledger.Net(ctx, agent)
	if err != nil {
		return err
	}
	return a.out.Print(presentation.FromLedger(agent, net, entries))
}
