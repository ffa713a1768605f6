package views

import (
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/utils"
	"github.com/pterm/pterm"
)

// RenderTransactionSummary confirms a recorded transaction and the balance
// of its box afterwards.
func RenderTransactionSummary(tx *model.Transaction, box *model.Box, symbol string) error {
	pterm.DefaultSection.Println("Transaction Summary")

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"ID", tx.ID},
		{"Date", utils.FormatDate(tx.Date)},
		{"Description", tx.Description},
		{"Amount", signedAmount(tx, symbol)},
	}
	if box != nil {
		tableData = append(tableData,
			[]string{"Box", ui.BoxLabel(box)},
			[]string{"New Balance", utils.FormatMoney(symbol, box.Balance)},
		)
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
