package box

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui/prompts"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/hance08/caja/internal/utils"
	"github.com/spf13/cobra"
)

type editFlags struct {
	Name       string
	Icon       string
	Color      string
	Goal       bool
	Target     string
	ThirdParty bool
}

type EditCommandRunner struct {
	svc   *service.Service
	owner auth.Resolver
	flags *editFlags
	cmd   *cobra.Command
}

func NewEditCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <box>",
		Short: "Edit a box's name, look or goal",
		Long: `Edit a box. Only the flags you pass are changed; without flags an
interactive form opens. The balance can't be edited, record a transaction instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &EditCommandRunner{
				svc:   svc,
				owner: owner,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&flags.Icon, "icon", "i", "", "New icon (empty clears it)")
	cmd.Flags().StringVar(&flags.Color, "color", "", "New palette color (empty clears it)")
	cmd.Flags().BoolVarP(&flags.Goal, "goal", "g", false, "Whether the box is a savings goal")
	cmd.Flags().StringVarP(&flags.Target, "target", "t", "", "Goal target amount")
	cmd.Flags().BoolVar(&flags.ThirdParty, "third-party", false, "Whether the money is held for someone else")

	return cmd
}

func (r *EditCommandRunner) Run(ctx context.Context, ref string) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	box, err := r.svc.Box.FindBox(ctx, ownerID, ref)
	if err != nil {
		return err
	}

	var patch service.UpdateBoxInput
	if r.hasFlags() {
		patch, err = r.flagsPatch()
	} else {
		patch, err = r.interactivePatch(box)
	}
	if err != nil {
		return err
	}

	updated, err := r.svc.Box.UpdateBox(ctx, ownerID, box.ID, patch)
	if err != nil {
		return err
	}

	views.RenderBoxSuccess(updated, "updated")
	return views.RenderBoxDetail(updated, r.svc.Config.Defaults.Currency)
}

func (r *EditCommandRunner) hasFlags() bool {
	for _, name := range []string{"name", "icon", "color", "goal", "target", "third-party"} {
		if r.cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func (r *EditCommandRunner) flagsPatch() (service.UpdateBoxInput, error) {
	var patch service.UpdateBoxInput
	changed := r.cmd.Flags().Changed

	if changed("name") {
		patch.Name = &r.flags.Name
	}
	if changed("icon") {
		patch.Icon = &r.flags.Icon
	}
	if changed("color") {
		patch.Color = &r.flags.Color
	}
	if changed("goal") {
		patch.IsGoal = &r.flags.Goal
	}
	if changed("third-party") {
		patch.IsThirdParty = &r.flags.ThirdParty
	}
	if changed("target") {
		target, err := utils.ParseAmount(r.flags.Target)
		if err != nil {
			return patch, fmt.Errorf("target: %w", err)
		}
		patch.TargetAmount = &target
	}

	return patch, nil
}

func (r *EditCommandRunner) interactivePatch(box *model.Box) (service.UpdateBoxInput, error) {
	form := prompts.BoxForm{
		Name:         box.Name,
		Icon:         deref(box.Icon),
		Color:        strings.ToLower(deref(box.Color)),
		IsGoal:       box.IsGoal,
		IsThirdParty: box.IsThirdParty,
	}
	if box.IsGoal {
		form.Target = fmt.Sprintf("%d", box.Target())
	}

	if err := prompts.PromptBox(&form, false); err != nil {
		return service.UpdateBoxInput{}, err
	}

	patch := service.UpdateBoxInput{
		Name:         &form.Name,
		Icon:         &form.Icon,
		Color:        &form.Color,
		IsGoal:       &form.IsGoal,
		IsThirdParty: &form.IsThirdParty,
	}
	if form.IsGoal {
		target, err := utils.ParseAmount(form.Target)
		if err != nil {
			return patch, fmt.Errorf("target: %w", err)
		}
		patch.TargetAmount = &target
	}

	return patch, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
