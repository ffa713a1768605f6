package views

import (
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	Symbol string
}

func NewTransactionListView(symbol string) *TransactionListView {
	return &TransactionListView{Symbol: symbol}
}

func (v *TransactionListView) Render(txs []*model.Transaction, limit, skip int) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	if skip > 0 {
		pterm.DefaultSection.Printf("Transactions %d-%d", skip+1, skip+len(txs))
	} else {
		pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Box", "Description", "Amount"},
	}

	for _, tx := range txs {
		tableData = append(tableData, []string{
			tx.ID,
			utils.FormatDate(tx.Date),
			ui.TypeColor(tx.Type, tx.Type.Label()),
			orDash(tx.BoxName),
			tx.Description,
			signedAmount(tx, v.Symbol),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}
