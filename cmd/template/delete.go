package template

import (
	"context"
	"fmt"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui"
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
		Use:   "delete <template-id>",
		Short: "Delete a transaction template",
		Long:  `Delete a template. Transactions already recorded from it are not affected.`,
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

	tpl, err := r.svc.Template.GetTemplate(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if !r.yes {
		ok, err := ui.ConfirmDestructive(fmt.Sprintf("Delete template %q?", tpl.Name))
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Template.DeleteTemplate(ctx, ownerID, tpl.ID); err != nil {
		return err
	}

	pterm.Success.Printf("Template '%s' deleted\n", tpl.Name)
	return nil
}
