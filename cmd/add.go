package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

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

type addFlags struct {
	Box            string
	Type           string
	Desc           string
	Amount         string
	Date           string
	Template       string
	SaveAsTemplate string
}

type addRunner struct {
	svc   *service.Service
	owner auth.Resolver
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(svc *service.Service, owner auth.Resolver) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record income or an expense in a box",
		Long: `Record a transaction in one of your boxes. The box balance moves with it.

You can use flags for quick entry or interactive mode for guided input.

Examples:
  # Interactive mode
  caja add

  # Quick mode with flags
  caja add --box Wallet --type expense --amount 150 --desc "Coffee"

  # Reuse a saved template, overriding the amount
  caja add --template <template-id> --amount 950

  # Record and keep the shape for next time
  caja add --box Bank --type expense --amount 900 --desc Rent --save-as-template "Monthly rent"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				owner: owner,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&flags.Box, "box", "b", "", "Box name or id")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "income or expense")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Whole amount (e.g. 150 or 1,500)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD), default is today")
	cmd.Flags().StringVar(&flags.Template, "template", "", "Create from a saved template id")
	cmd.Flags().StringVar(&flags.SaveAsTemplate, "save-as-template", "", "Also save this transaction as a template with the given name")

	return cmd
}

func (r *addRunner) Run(ctx context.Context) error {
	ownerID, err := r.owner.Owner()
	if err != nil {
		return err
	}

	var tx *model.Transaction

	switch {
	case r.flags.Template != "":
		tx, err = r.templateMode(ctx, ownerID)
	case r.hasFlags():
		tx, err = r.flagsMode(ctx, ownerID)
	default:
		tx, err = r.interactiveMode(ctx, ownerID)
	}
	if err != nil {
		return err
	}

	pterm.Success.Println("Transaction recorded successfully!")

	box, err := r.svc.Box.GetBox(ctx, ownerID, tx.BoxID)
	if err != nil {
		box = nil
	}
	return views.RenderTransactionSummary(tx, box, r.svc.Config.Defaults.Currency)
}

func (r *addRunner) hasFlags() bool {
	for _, name := range []string{"box", "type", "desc", "amount"} {
		if r.cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func (r *addRunner) flagsMode(ctx context.Context, ownerID string) (*model.Transaction, error) {
	if r.flags.Box == "" || r.flags.Type == "" || r.flags.Amount == "" {
		return nil, fmt.Errorf("when using flags, --box, --type and --amount are all required")
	}

	box, err := r.svc.Box.FindBox(ctx, ownerID, r.flags.Box)
	if err != nil {
		return nil, err
	}

	txType, err := model.ParseTxType(r.flags.Type)
	if err != nil {
		return nil, err
	}

	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(r.flags.Date, time.Now())
	if err != nil {
		return nil, err
	}

	desc := r.flags.Desc
	if strings.TrimSpace(desc) == "" {
		desc = txType.Label()
	}

	return r.svc.Transaction.CreateTransaction(ctx, ownerID, service.CreateTransactionInput{
		BoxID:          box.ID,
		Type:           txType,
		Amount:         amount,
		Description:    desc,
		Date:           date,
		SaveAsTemplate: r.cmd.Flags().Changed("save-as-template"),
		TemplateName:   r.flags.SaveAsTemplate,
	})
}

func (r *addRunner) templateMode(ctx context.Context, ownerID string) (*model.Transaction, error) {
	use := service.TemplateUse{Description: r.flags.Desc}

	if r.flags.Amount != "" {
		amount, err := utils.ParseAmount(r.flags.Amount)
		if err != nil {
			return nil, err
		}
		use.Amount = amount
	}

	date, err := utils.ParseDate(r.flags.Date, time.Now())
	if err != nil {
		return nil, err
	}
	use.Date = date

	return r.svc.Transaction.CreateFromTemplate(ctx, ownerID, r.flags.Template, use)
}

func (r *addRunner) interactiveMode(ctx context.Context, ownerID string) (*model.Transaction, error) {
	symbol := r.svc.Config.Defaults.Currency

	templates, err := r.svc.Template.ListTemplates(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(templates) > 0 {
		useTemplate, err := prompts.PromptConfirm("Start from a saved template?", false)
		if err != nil {
			return nil, err
		}
		if useTemplate {
			id, err := prompts.PromptTemplateSelection(templates, symbol)
			if err != nil {
				return nil, err
			}
			date, err := prompts.PromptTransactionDate(time.Now())
			if err != nil {
				return nil, err
			}
			return r.svc.Transaction.CreateFromTemplate(ctx, ownerID, id, service.TemplateUse{Date: date})
		}
	}

	boxes, err := r.svc.Box.ListBoxes(ctx, ownerID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load boxes: %w", err)
	}

	// Step 1: Select box
	boxID, err := prompts.PromptBoxSelection(boxes, "Which box?", symbol)
	if err != nil {
		return nil, err
	}

	// Step 2: Select transaction type
	txType, err := prompts.PromptTransactionType("")
	if err != nil {
		return nil, err
	}

	// Step 3: Get amount
	amount, err := prompts.PromptAmount("Amount:", 0, validation.AmountInput)
	if err != nil {
		return nil, err
	}

	// Step 4: Get description
	desc, err := prompts.PromptDescription("Description:", "", validation.DescriptionInput)
	if err != nil {
		return nil, err
	}

	// Step 5: Transaction date
	date, err := prompts.PromptTransactionDate(time.Now())
	if err != nil {
		return nil, err
	}

	// Step 6: Optionally keep as template
	input := service.CreateTransactionInput{
		BoxID:       boxID,
		Type:        txType,
		Amount:      amount,
		Description: desc,
		Date:        date,
	}

	input.SaveAsTemplate, err = prompts.PromptConfirm("Save as a template for next time?", false)
	if err != nil {
		return nil, err
	}
	if input.SaveAsTemplate {
		input.TemplateName, err = prompts.PromptInput("Template name:", desc, validation.ValidateTemplateName)
		if err != nil {
			return nil, err
		}
	}

	return r.svc.Transaction.CreateTransaction(ctx, ownerID, input)
}
