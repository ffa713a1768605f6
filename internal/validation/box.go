package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/caja/internal/constants"
	"github.com/hance08/caja/internal/utils"
)

// ValidateBoxName validates a box display name.
func ValidateBoxName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return invalid("name", "box name can't be empty")
	}

	if len(name) > constants.MaxNameLen {
		return invalid("name", fmt.Sprintf("box name too long (max %d characters)", constants.MaxNameLen))
	}
	return nil
}

// ValidateColor accepts nil or one of the palette swatches.
func ValidateColor(color *string) error {
	if color == nil {
		return nil
	}

	for _, sw := range constants.Swatches {
		if strings.EqualFold(*color, sw.Hex) {
			return nil
		}
	}
	return invalid("color", fmt.Sprintf("color %q is not in the palette", *color))
}

// ValidateGoal enforces isGoal ⇒ target > 0. A non-goal target is ignored by
// callers, which clear it before saving.
func ValidateGoal(isGoal bool, target *int64) error {
	if !isGoal {
		return nil
	}
	if target == nil || *target <= 0 {
		return invalid("targetAmount", "target amount must be greater than 0")
	}
	return nil
}

func ValidateOpeningBalance(balance int64) error {
	if balance < 0 {
		return invalid("balance", "opening balance must be 0 or more")
	}
	return nil
}

// BalanceInput validates raw form input for an opening balance.
func BalanceInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	balance, err := utils.ParseAmount(s)
	if err != nil {
		return invalid("balance", err.Error())
	}
	return ValidateOpeningBalance(balance)
}

// BoxNameInput adapts ValidateBoxName for form fields.
func BoxNameInput(s string) error {
	return ValidateBoxName(s)
}
