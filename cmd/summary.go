package cmd

import (
	"context"
	"time"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/hance08/caja/internal/utils"
	"github.com/spf13/cobra"
)

type summaryRunner struct {
	svc   *service.Service
	owner auth.Resolver
	month string
}

func NewSummaryCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	runner := &summaryRunner{svc: svc, owner: owner}

	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"sum"},
		Short:   "Show liquid balance, this month's totals and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&runner.month, "month", "m", "", "Any date (YYYY-MM-DD) inside the month to report, default is today")

	return cmd
}

func (r *summaryRunner) Run(ctx context.Context) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	at, err := utils.ParseDate(r.month, time.Now())
	if err != nil {
		return err
	}

	ov, err := r.svc.Summary.Overview(ctx, ownerID, at)
	if err != nil {
		return err
	}

	return views.RenderOverview(ov, r.svc.Config.Defaults.Currency)
}
