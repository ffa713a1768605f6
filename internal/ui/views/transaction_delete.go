package views

import (
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDeletePreview(tx *model.Transaction, symbol string) error {
	pterm.Warning.Printf("About to delete transaction %s:\n", tx.ID)

	deletionInfo := pterm.TableData{
		{"Date", utils.FormatDate(tx.Date)},
		{"Box", orDash(tx.BoxName)},
		{"Description", tx.Description},
		{"Amount", signedAmount(tx, symbol)},
	}

	if err := pterm.DefaultTable.WithData(deletionInfo).Render(); err != nil {
		return err
	}
	pterm.Warning.Println("The box balance will be restored. This action cannot be undone!")
	return nil
}

func RenderTransactionDeleteSuccess(id string) {
	pterm.Success.Printf("Transaction %s deleted successfully\n", id)
	ui.Separator()
}
