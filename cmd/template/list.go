package template

import (
	"context"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	svc   *service.Service
	owner auth.Resolver
}

func NewListCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transaction templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{svc: svc, owner: owner}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *ListCommandRunner) Run(ctx context.Context) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	templates, err := r.svc.Template.ListTemplates(ctx, ownerID)
	if err != nil {
		return err
	}

	return views.RenderTemplateList(templates, r.svc.Config.Defaults.Currency)
}
