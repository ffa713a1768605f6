package transaction

import (
	"context"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type DeleteCommandRunner struct {
	svc   *service.Service
	owner auth.Resolver
	yes   bool
}

func NewDeleteCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	runner := &DeleteCommandRunner{svc: svc, owner: owner}

	cmd := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction and restore its box balance. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), args[0])
		},
	}
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

func (r *DeleteCommandRunner) Run(ctx context.Context, id string) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	// Get transaction details first to show what will be deleted
	tx, err := r.svc.Transaction.GetTransaction(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if !r.yes {
		if err := views.RenderTransactionDeletePreview(tx, r.svc.Config.Defaults.Currency); err != nil {
			return err
		}

		confirmation, err := ui.ConfirmDestructive("Do you want to delete this transaction?")
		if err != nil {
			return err
		}
		if !confirmation {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Transaction.DeleteTransaction(ctx, ownerID, tx.ID); err != nil {
		return err
	}

	views.RenderTransactionDeleteSuccess(tx.ID)
	return nil
}
