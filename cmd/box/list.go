package box

import (
	"context"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	ShowArchived bool
}

type ListCommandRunner struct {
	svc   *service.Service
	owner auth.Resolver
	flags *listFlags
}

func NewListCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List boxes with their balances",
		Long: `List your boxes with their current balances.
Archived boxes are hidden unless --archived is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				owner: owner,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&flags.ShowArchived, "archived", "a", false, "Include archived boxes")

	return cmd
}

func (r *ListCommandRunner) Run(ctx context.Context) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	boxes, err := r.svc.Box.ListBoxes(ctx, ownerID, r.flags.ShowArchived)
	if err != nil {
		return err
	}

	return views.NewBoxListView(r.svc.Config.Defaults.Currency).Render(boxes)
}
