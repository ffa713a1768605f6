package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInitSetup asks for the owner name and currency symbol on first run.
func PromptInitSetup(defaultOwner, defaultCurrency string) (string, string, error) {
	owner := defaultOwner
	currency := defaultCurrency

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to Caja!").
				Description("This is the first run, let's set up who the boxes belong to."),
			huh.NewInput().
				Title("Your name:").
				Description("Every box and transaction is scoped to this owner").
				Value(&owner).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("owner name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Currency symbol:").
				Description("Display only; amounts are stored as whole numbers").
				Options(
					huh.NewOption("$", "$"),
					huh.NewOption("€", "€"),
					huh.NewOption("£", "£"),
					huh.NewOption("¥", "¥"),
					huh.NewOption("NT$", "NT$"),
					huh.NewOption("Rp", "Rp"),
				).
				Value(&currency),
		),
	).Run()
	if err != nil {
		return "", "", err
	}

	return strings.TrimSpace(owner), currency, nil
}
