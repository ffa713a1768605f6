package transaction

import (
	"context"
	"fmt"

	"github.com/hance08/caja/internal/auth"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui/prompts"
	"github.com/hance08/caja/internal/ui/views"
	"github.com/hance08/caja/internal/utils"
	"github.com/hance08/caja/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editFlags struct {
	Box    string
	Type   string
	Amount string
	Desc   string
	Date   string
}

type EditCommandRunner struct {
	svc   *service.Service
	owner auth.Resolver
	flags *editFlags
	cmd   *cobra.Command
}

const (
	menuBasic  = "basic"
	menuBox    = "box"
	menuAmount = "amount"
	menuSave   = "save"
	menuCancel = "cancel"
)

func NewEditCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction's box, type, amount, description or date.
The old effect is taken off the old box and the new one applied, in one step.
Without flags an interactive menu opens.`,
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

	cmd.Flags().StringVarP(&flags.Box, "box", "b", "", "Move to another box (name or id)")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "income or expense")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "New whole amount")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "New description")
	cmd.Flags().StringVar(&flags.Date, "date", "", "New date (YYYY-MM-DD)")

	return cmd
}

func (r *EditCommandRunner) Run(ctx context.Context, id string) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	// Get current transaction details
	tx, err := r.svc.Transaction.GetTransaction(ctx, ownerID, id)
	if err != nil {
		return err
	}

	in := service.UpdateTransactionInput{
		Type:        tx.Type,
		Amount:      tx.Amount,
		Description: tx.Description,
	}

	if r.hasFlags() {
		if err := r.applyFlags(ctx, ownerID, &in); err != nil {
			return err
		}
		return r.save(ctx, ownerID, tx.ID, in)
	}

	symbol := r.svc.Config.Defaults.Currency
	pterm.DefaultSection.Printf("Editing Transaction %s", tx.ID)
	if err := views.RenderTransactionDetail(tx, symbol); err != nil {
		return err
	}

	// Main edit menu
	for {
		choice, err := prompts.PromptSelect("What would you like to edit?", []prompts.Choice{
			{Label: "Basic Info (description, date)", Value: menuBasic},
			{Label: "Change Box", Value: menuBox},
			{Label: "Change Type & Amount", Value: menuAmount},
			{Label: "Save & Exit", Value: menuSave},
			{Label: "Cancel (discard changes)", Value: menuCancel},
		}, menuSave)
		if err != nil {
			return err
		}

		switch choice {
		case menuBasic:
			err = r.editBasicInfo(tx, &in)
		case menuBox:
			err = r.editBox(ctx, ownerID, &in)
		case menuAmount:
			err = r.editAmount(&in)
		case menuSave:
			return r.save(ctx, ownerID, tx.ID, in)
		case menuCancel:
			pterm.Info.Println("Changes discarded")
			return nil
		}
		if err != nil {
			pterm.Error.Printf("Failed to edit: %v\n", err)
		}
	}
}

func (r *EditCommandRunner) hasFlags() bool {
	for _, name := range []string{"box", "type", "amount", "desc", "date"} {
		if r.cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func (r *EditCommandRunner) applyFlags(ctx context.Context, ownerID string, in *service.UpdateTransactionInput) error {
	changed := r.cmd.Flags().Changed

	if changed("box") {
		box, err := r.svc.Box.FindBox(ctx, ownerID, r.flags.Box)
		if err != nil {
			return err
		}
		in.BoxID = box.ID
	}
	if changed("type") {
		t, err := model.ParseTxType(r.flags.Type)
		if err != nil {
			return err
		}
		in.Type = t
	}
	if changed("amount") {
		amount, err := utils.ParseAmount(r.flags.Amount)
		if err != nil {
			return err
		}
		in.Amount = amount
	}
	if changed("desc") {
		in.Description = r.flags.Desc
	}
	if changed("date") {
		date, err := utils.ParseDate(r.flags.Date, in.Date)
		if err != nil {
			return err
		}
		in.Date = date
	}
	return nil
}

func (r *EditCommandRunner) editBasicInfo(tx *model.Transaction, in *service.UpdateTransactionInput) error {
	desc, err := prompts.PromptDescription("Description:", in.Description, validation.DescriptionInput)
	if err != nil {
		return err
	}

	current := tx.Date
	if !in.Date.IsZero() {
		current = in.Date
	}
	date, err := prompts.PromptTransactionDate(current)
	if err != nil {
		return err
	}

	in.Description = desc
	in.Date = date
	return nil
}

func (r *EditCommandRunner) editBox(ctx context.Context, ownerID string, in *service.UpdateTransactionInput) error {
	boxes, err := r.svc.Box.ListBoxes(ctx, ownerID, false)
	if err != nil {
		return err
	}

	boxID, err := prompts.PromptBoxSelection(boxes, "Move to box:", r.svc.Config.Defaults.Currency)
	if err != nil {
		return err
	}
	in.BoxID = boxID
	return nil
}

func (r *EditCommandRunner) editAmount(in *service.UpdateTransactionInput) error {
	t, err := prompts.PromptTransactionType(in.Type)
	if err != nil {
		return err
	}

	amount, err := prompts.PromptAmount(fmt.Sprintf("Amount (current %d):", in.Amount), in.Amount, validation.AmountInput)
	if err != nil {
		return err
	}

	in.Type = t
	in.Amount = amount
	return nil
}

func (r *EditCommandRunner) save(ctx context.Context, ownerID, id string, in service.UpdateTransactionInput) error {
	updated, err := r.svc.Transaction.UpdateTransaction(ctx, ownerID, id, in)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction %s updated successfully\n", updated.ID)

	box, err := r.svc.Box.GetBox(ctx, ownerID, updated.BoxID)
	if err != nil {
		box = nil
	}
	return views.RenderTransactionSummary(updated, box, r.svc.Config.Defaults.Currency)
}
