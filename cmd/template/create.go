package template

import (
	"context"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui/prompts"
	"github.com/hance08/caja/internal/utils"
	"github.com/hance08/caja/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name   string
	Box    string
	Type   string
	Amount string
	Desc   string
}

type CreateCommandRunner struct {
	svc   *service.Service
	owner auth.Resolver
	flags *createFlags
}

func NewCreateCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a transaction template",
		Long: `Create a transaction template.
With --name, --box and --amount the template is created directly,
otherwise you are prompted for each field.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CreateCommandRunner{
				svc:   svc,
				owner: owner,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Template name")
	cmd.Flags().StringVarP(&flags.Box, "box", "b", "", "Box name or id")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", string(model.TxExpense), "income or expense")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Whole amount")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Description")

	return cmd
}

func (r *CreateCommandRunner) Run(ctx context.Context) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	var in service.CreateTemplateInput
	if r.flags.Name != "" && r.flags.Box != "" && r.flags.Amount != "" {
		in, err = r.flagsMode(ctx, ownerID)
	} else {
		in, err = r.interactiveMode(ctx, ownerID)
	}
	if err != nil {
		return err
	}

	tpl, err := r.svc.Template.CreateTemplate(ctx, ownerID, in)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Template '%s' created (%s)\n", tpl.Name, tpl.ID)
	return nil
}

func (r *CreateCommandRunner) flagsMode(ctx context.Context, ownerID string) (service.CreateTemplateInput, error) {
	box, err := r.svc.Box.FindBox(ctx, ownerID, r.flags.Box)
	if err != nil {
		return service.CreateTemplateInput{}, err
	}

	txType, err := model.ParseTxType(r.flags.Type)
	if err != nil {
		return service.CreateTemplateInput{}, err
	}

	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return service.CreateTemplateInput{}, err
	}

	desc := r.flags.Desc
	if desc == "" {
		desc = r.flags.Name
	}

	return service.CreateTemplateInput{
		Name:        r.flags.Name,
		BoxID:       box.ID,
		Type:        txType,
		Amount:      amount,
		Description: desc,
	}, nil
}

func (r *CreateCommandRunner) interactiveMode(ctx context.Context, ownerID string) (service.CreateTemplateInput, error) {
	var in service.CreateTemplateInput

	boxes, err := r.svc.Box.ListBoxes(ctx, ownerID, false)
	if err != nil {
		return in, err
	}
	if len(boxes) == 0 {
		pterm.Warning.Println("No boxes yet. Create one with 'caja box create'.")
		return in, service.ErrBoxNotFound
	}

	if in.Name, err = prompts.PromptInput("Template name:", r.flags.Name, validation.ValidateTemplateName); err != nil {
		return in, err
	}
	if in.BoxID, err = prompts.PromptBoxSelection(boxes, "Box:", r.svc.Config.Defaults.Currency); err != nil {
		return in, err
	}
	if in.Type, err = prompts.PromptTransactionType(model.TxExpense); err != nil {
		return in, err
	}
	if in.Amount, err = prompts.PromptAmount("Amount:", 0, validation.AmountInput); err != nil {
		return in, err
	}
	if in.Description, err = prompts.PromptDescription("Description:", in.Name, validation.DescriptionInput); err != nil {
		return in, err
	}

	return in, nil
}
