package box

import (
	"context"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/constants"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	svc   *service.Service
	owner auth.Resolver
}

func NewShowCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	return &cobra.Command{
		Use:   "show <box>",
		Short: "Show a box and its latest transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				svc:   svc,
				owner: owner,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}
}

func (r *ShowCommandRunner) Run(ctx context.Context, ref string) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	box, err := r.svc.Box.FindBox(ctx, ownerID, ref)
	if err != nil {
		return err
	}

	symbol := r.svc.Config.Defaults.Currency
	if err := views.RenderBoxDetail(box, symbol); err != nil {
		return err
	}

	txs, err := r.svc.Transaction.ListTransactions(ctx, ownerID, service.ListTransactionsInput{
		BoxID: box.ID,
		Limit: constants.DefaultListLimit,
	})
	if err != nil {
		return err
	}

	return views.NewTransactionListView(symbol).Render(txs, constants.DefaultListLimit, 0)
}
