package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/caja/internal/constants"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/utils"
	"github.com/hance08/caja/internal/validation"
)

// BoxForm is the raw answer set of the create/edit box form.
type BoxForm struct {
	Name           string
	Icon           string
	Color          string
	OpeningBalance string
	IsGoal         bool
	Target         string
	IsThirdParty   bool
}

// PromptBoxSelection asks for one of boxes and returns its id.
func PromptBoxSelection(boxes []*model.Box, message, symbol string) (string, error) {
	if len(boxes) == 0 {
		return "", fmt.Errorf("no boxes yet: create one with 'caja box create'")
	}

	choices := make([]Choice, 0, len(boxes))
	for _, b := range boxes {
		label := fmt.Sprintf("%s (Balance: %s)", b.Name, utils.FormatMoney(symbol, b.Balance))
		if b.Icon != nil {
			label = *b.Icon + " " + label
		}
		choices = append(choices, Choice{Label: label, Value: b.ID})
	}

	return PromptSelect(message, choices, boxes[0].ID)
}

// PromptBox runs the box form. withBalance adds the opening balance field,
// which only exists on create.
func PromptBox(form *BoxForm, withBalance bool) error {
	swatches := []huh.Option[string]{huh.NewOption("None", "")}
	for _, sw := range constants.Swatches {
		swatches = append(swatches, huh.NewOption(sw.Label+" "+sw.Hex, sw.Hex))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Box name:").
			Value(&form.Name).
			Validate(validation.BoxNameInput),
		huh.NewInput().
			Title("Icon (optional):").
			Description("A single emoji works best").
			Value(&form.Icon),
		huh.NewSelect[string]().
			Title("Color:").
			Options(swatches...).
			Value(&form.Color),
	}
	if withBalance {
		fields = append(fields, huh.NewInput().
			Title("Opening balance (press Enter for 0):").
			Value(&form.OpeningBalance).
			Validate(validation.BalanceInput))
	}
	fields = append(fields,
		huh.NewConfirm().
			Title("Is this box held for someone else?").
			Description("Third-party money is left out of your liquid total").
			Value(&form.IsThirdParty),
		huh.NewConfirm().
			Title("Is this a savings goal?").
			Value(&form.IsGoal),
	)

	goal := huh.NewGroup(
		huh.NewInput().
			Title("Target amount:").
			Value(&form.Target).
			Validate(validation.AmountInput),
	).WithHideFunc(func() bool { return !form.IsGoal })

	return huh.NewForm(huh.NewGroup(fields...), goal).Run()
}
