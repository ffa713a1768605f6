package box

import (
	"context"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/spf13/cobra"
)

type VerifyCommandRunner struct {
	svc   *service.Service
	owner auth.Resolver
	fix   bool
}

func NewVerifyCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	runner := &VerifyCommandRunner{svc: svc, owner: owner}

	cmd := &cobra.Command{
		Use:   "verify [box]",
		Short: "Check that box balances match their transaction history",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), args)
		},
	}
	cmd.Flags().BoolVar(&runner.fix, "fix", false, "Correct any drift found")

	return cmd
}

func (r *VerifyCommandRunner) Run(ctx context.Context, args []string) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	var ids []string
	if len(args) == 1 {
		box, err := r.svc.Box.FindBox(ctx, ownerID, args[0])
		if err != nil {
			return err
		}
		ids = append(ids, box.ID)
	} else {
		boxes, err := r.svc.Box.ListBoxes(ctx, ownerID, true)
		if err != nil {
			return err
		}
		for _, b := range boxes {
			ids = append(ids, b.ID)
		}
	}

	for _, id := range ids {
		rec, err := r.svc.Box.VerifyBox(ctx, ownerID, id, r.fix)
		if err != nil {
			return err
		}
		if err := views.RenderReconciliation(rec, r.svc.Config.Defaults.Currency); err != nil {
			return err
		}
	}
	return nil
}
