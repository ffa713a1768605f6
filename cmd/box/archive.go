package box

import (
	"context"
	"fmt"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type ArchiveCommandRunner struct {
	svc   *service.Service
	owner auth.Resolver
	yes   bool
}

func NewArchiveCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	runner := &ArchiveCommandRunner{svc: svc, owner: owner}

	cmd := &cobra.Command{
		Use:   "archive <box>",
		Short: "Archive a box",
		Long: `Archive a box. It disappears from lists and can't receive new transactions,
but its history and balance are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), args[0])
		},
	}
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

func (r *ArchiveCommandRunner) Run(ctx context.Context, ref string) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	box, err := r.svc.Box.FindBox(ctx, ownerID, ref)
	if err != nil {
		return err
	}

	if !r.yes {
		if err := views.RenderBoxDetail(box, r.svc.Config.Defaults.Currency); err != nil {
			return err
		}
		ok, err := ui.ConfirmDestructive(fmt.Sprintf("Archive box %q?", box.Name))
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Archive cancelled")
			return nil
		}
	}

	if err := r.svc.Box.ArchiveBox(ctx, ownerID, box.ID); err != nil {
		return err
	}

	views.RenderBoxSuccess(box, "archived")
	return nil
}
