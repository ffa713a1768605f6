package transaction

import (
	"context"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/constants"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Box   string
	Limit int
	Skip  int
}

type listRunner struct {
	svc   *service.Service
	owner auth.Resolver
	flags *listFlags
}

func NewListCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List recent transactions",
		Long: `List recent transactions, newest first.

This command displays a table of transactions with their date, type,
box, description and signed amount.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				owner: owner,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Box, "box", "b", "", "Filter transactions by box name or id")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultListLimit, "Maximum number of transactions to display (max 100)")
	cmd.Flags().IntVarP(&flags.Skip, "skip", "s", 0, "Number of transactions to skip")

	return cmd
}

func (r *listRunner) Run(ctx context.Context) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	in := service.ListTransactionsInput{Limit: r.flags.Limit, Skip: r.flags.Skip}

	if r.flags.Box != "" {
		box, err := r.svc.Box.FindBox(ctx, ownerID, r.flags.Box)
		if err != nil {
			return err
		}
		in.BoxID = box.ID
		pterm.Info.Printf("Showing transactions for box: %s\n\n", box.Name)
	}

	txs, err := r.svc.Transaction.ListTransactions(ctx, ownerID, in)
	if err != nil {
		return err
	}

	limit := min(max(r.flags.Limit, 1), constants.MaxListLimit)
	return views.NewTransactionListView(r.svc.Config.Defaults.Currency).Render(txs, limit, r.flags.Skip)
}
