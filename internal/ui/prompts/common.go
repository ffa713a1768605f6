package prompts

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/caja/internal/constants"
	"github.com/hance08/caja/internal/utils"
)

// Choice is one entry of a select prompt: Label is shown, Value returned.
type Choice struct {
	Label string
	Value string
}

// PromptDescription prompts for a free-text description
func PromptDescription(message, current string, validator func(string) error) (string, error) {
	desc := current

	input := huh.NewInput().
		Title(message).
		Value(&desc)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return strings.TrimSpace(desc), err
}

// PromptAmount prompts for a whole amount and parses it.
func PromptAmount(message string, current int64, validator func(string) error) (int64, error) {
	var raw string
	if current > 0 {
		raw = fmt.Sprintf("%d", current)
	}

	input := huh.NewInput().
		Title(message).
		Description("Whole amount, no currency symbol (e.g. 1500 or 1,500)").
		Value(&raw)

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return 0, err
	}
	return utils.ParseAmount(raw)
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptDate prompts for a YYYY-MM-DD date; Enter keeps def.
func PromptDate(message string, def time.Time) (time.Time, error) {
	var raw string

	err := huh.NewInput().
		Title(message).
		Description("Press Enter for " + utils.FormatDate(def)).
		Placeholder(utils.FormatDate(def)).
		Value(&raw).
		Validate(func(s string) error {
			_, err := utils.ParseDate(s, def)
			return err
		}).
		Run()
	if err != nil {
		return time.Time{}, err
	}

	return utils.ParseDate(raw, def)
}

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptSelect prompts for one of choices and returns its Value.
func PromptSelect(message string, choices []Choice, defaultValue string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("nothing to choose from")
	}

	selected := defaultValue

	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(c.Label, c.Value))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(min(len(opts)+2, constants.SelectHeight)).
		Run()

	return selected, err
}
