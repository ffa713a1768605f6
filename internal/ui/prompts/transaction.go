package prompts

import (
	"fmt"
	"time"

	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/utils"
)

// PromptTransactionType prompts for income or expense
func PromptTransactionType(current model.TxType) (model.TxType, error) {
	if current == "" {
		current = model.TxExpense
	}

	selected, err := PromptSelect("Choose the transaction type:", []Choice{
		{Label: "Record Expense", Value: string(model.TxExpense)},
		{Label: "Record Income", Value: string(model.TxIncome)},
	}, string(current))
	if err != nil {
		return "", err
	}

	return model.TxType(selected), nil
}

// PromptTransactionDate prompts for transaction date
func PromptTransactionDate(def time.Time) (time.Time, error) {
	return PromptDate("Transaction Date (YYYY-MM-DD):", def)
}

// PromptTemplateSelection asks for one of templates and returns its id.
func PromptTemplateSelection(templates []*model.Template, symbol string) (string, error) {
	if len(templates) == 0 {
		return "", fmt.Errorf("no templates yet: save one with 'caja add --save-as-template'")
	}

	choices := make([]Choice, 0, len(templates))
	for _, tpl := range templates {
		choices = append(choices, Choice{
			Label: fmt.Sprintf("%s - %s %s (%s)",
				tpl.Name, tpl.Type.Label(), utils.FormatMoney(symbol, tpl.Amount), tpl.BoxName),
			Value: tpl.ID,
		})
	}

	return PromptSelect("Choose a template:", choices, templates[0].ID)
}
