package cmd

import (
	"context"
	"time"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/spf13/cobra"
)

type goalsRunner struct {
	svc   *service.Service
	owner auth.Resolver
}

func NewGoalsCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	return &cobra.Command{
		Use:     "goals [box]",
		Aliases: []string{"g"},
		Short:   "Show savings goal progress and estimated completion dates",
		Long: `Without arguments, list every active savings goal with its progress and
the date it should be reached at the current saving pace.

With a box name or id, show the full estimate for that goal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &goalsRunner{
				svc:   svc,
				owner: owner,
			}
			return runner.Run(cmd.Context(), args)
		},
	}
}

func (r *goalsRunner) Run(ctx context.Context, args []string) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	symbol := r.svc.Config.Defaults.Currency
	now := time.Now()

	if len(args) == 1 {
		box, err := r.svc.Box.FindBox(ctx, ownerID, args[0])
		if err != nil {
			return err
		}

		report, err := r.svc.Goal.ProjectGoal(ctx, ownerID, box.ID, now)
		if err != nil {
			return err
		}
		return views.RenderGoalDetail(report, symbol)
	}

	reports, err := r.svc.Goal.ListGoals(ctx, ownerID, now)
	if err != nil {
		return err
	}

	overview, err := r.svc.Goal.Overview(ctx, ownerID)
	if err != nil {
		return err
	}

	return views.RenderGoalList(reports, overview, symbol)
}
