package transaction

import (
	"context"

	"github.com/hance08/caja/internal/auth"
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
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
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

func (r *ShowCommandRunner) Run(ctx context.Context, id string) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	tx, err := r.svc.Transaction.GetTransaction(ctx, ownerID, id)
	if err != nil {
		return err
	}

	return views.RenderTransactionDetail(tx, r.svc.Config.Defaults.Currency)
}
