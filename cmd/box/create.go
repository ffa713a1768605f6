package box

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui/prompts"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/hance08/caja/internal/utils"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name       string
	Icon       string
	Color      string
	Balance    string
	Goal       bool
	Target     string
	ThirdParty bool
}

type CreateCommandRunner struct {
	svc   *service.Service
	owner auth.Resolver
	flags *createFlags
	cmd   *cobra.Command
}

func NewCreateCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new box.",
		Long: `Create a box to keep money in. An opening balance is recorded as the
box's first income transaction.

Examples:
  caja box create --name Wallet --balance 250
  caja box create --name Trip --goal --target 3000 --color "#3abff8"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CreateCommandRunner{
				svc:   svc,
				owner: owner,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Box name")
	cmd.Flags().StringVarP(&flags.Icon, "icon", "i", "", "Icon, e.g. an emoji")
	cmd.Flags().StringVar(&flags.Color, "color", "", "Palette color (hex)")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Opening balance (whole amount)")
	cmd.Flags().BoolVarP(&flags.Goal, "goal", "g", false, "Make this box a savings goal")
	cmd.Flags().StringVarP(&flags.Target, "target", "t", "", "Goal target amount")
	cmd.Flags().BoolVar(&flags.ThirdParty, "third-party", false, "Money held for someone else")

	return cmd
}

func (r *CreateCommandRunner) Run(ctx context.Context) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	form := prompts.BoxForm{
		Name:           r.flags.Name,
		Icon:           r.flags.Icon,
		Color:          r.flags.Color,
		OpeningBalance: r.flags.Balance,
		IsGoal:         r.flags.Goal,
		Target:         r.flags.Target,
		IsThirdParty:   r.flags.ThirdParty,
	}

	if !r.cmd.Flags().Changed("name") {
		if err := prompts.PromptBox(&form, true); err != nil {
			return err
		}
	}

	in, err := createInput(form)
	if err != nil {
		return err
	}

	box, err := r.svc.Box.CreateBox(ctx, ownerID, in)
	if err != nil {
		return err
	}

	views.RenderBoxSuccess(box, "created")
	return views.RenderBoxDetail(box, r.svc.Config.Defaults.Currency)
}

func createInput(form prompts.BoxForm) (service.CreateBoxInput, error) {
	in := service.CreateBoxInput{
		Name:         form.Name,
		Icon:         &form.Icon,
		Color:        &form.Color,
		IsGoal:       form.IsGoal,
		IsThirdParty: form.IsThirdParty,
	}

	if strings.TrimSpace(form.OpeningBalance) != "" {
		balance, err := utils.ParseAmount(form.OpeningBalance)
		if err != nil {
			return in, fmt.Errorf("opening balance: %w", err)
		}
		in.OpeningBalance = balance
	}

	if form.IsGoal && strings.TrimSpace(form.Target) != "" {
		target, err := utils.ParseAmount(form.Target)
		if err != nil {
			return in, fmt.Errorf("target: %w", err)
		}
		in.TargetAmount = &target
	}

	return in, nil
}
