package views

import (
	"github.com/dustin/go-humanize"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(tx *model.Transaction, symbol string) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", tx.ID},
		{"Date", utils.FormatDate(tx.Date)},
		{"Type", ui.TypeColor(tx.Type, tx.Type.Label())},
		{"Box", orDash(tx.BoxName)},
		{"Description", tx.Description},
		{"Amount", signedAmount(tx, symbol)},
		{"Recorded", humanize.Time(tx.CreatedAt)},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
