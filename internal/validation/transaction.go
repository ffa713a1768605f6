package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/caja/internal/constants"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/utils"
)

// ValidateAmount requires a strictly positive whole amount.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return invalid("amount", "amount must be greater than 0")
	}
	return nil
}

func ValidateType(t model.TxType) error {
	if !t.Valid() {
		return invalid("type", fmt.Sprintf("invalid transaction type %q (must be INCOME or EXPENSE)", t))
	}
	return nil
}

// ValidateDescription requires text after trimming.
func ValidateDescription(desc string) error {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return invalid("description", "description is required")
	}
	if len(desc) > constants.MaxDescriptionLen {
		return invalid("description", fmt.Sprintf("description too long (max %d characters)", constants.MaxDescriptionLen))
	}
	return nil
}

// ValidateTransaction checks the fields shared by transactions and templates,
// reporting the first problem found.
func ValidateTransaction(amount int64, t model.TxType, desc string) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if err := ValidateType(t); err != nil {
		return err
	}
	return ValidateDescription(desc)
}

func ValidateTemplateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("name", "template name is required")
	}
	if len(name) > constants.MaxNameLen {
		return invalid("name", fmt.Sprintf("template name too long (max %d characters)", constants.MaxNameLen))
	}
	return nil
}

// AmountInput validates raw form input for an amount field.
func AmountInput(s string) error {
	amount, err := utils.ParseAmount(s)
	if err != nil {
		return invalid("amount", err.Error())
	}
	return ValidateAmount(amount)
}

// DescriptionInput adapts ValidateDescription for form fields.
func DescriptionInput(s string) error {
	return ValidateDescription(s)
}
