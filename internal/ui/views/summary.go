package views

import (
	"github.com/dustin/go-humanize"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/utils"
	"github.com/pterm/pterm"
)

func RenderOverview(ov *service.Overview, symbol string) error {
	ui.PrintL1Title("%s", ov.From.Format("January 2006"))
	pterm.Println()

	net := utils.FormatSigned(symbol, ov.MonthNet())
	if ov.MonthNet() < 0 {
		net = pterm.Red(net)
	} else {
		net = pterm.Green(net)
	}

	tableData := pterm.TableData{
		{pterm.Blue("Liquid balance"), utils.FormatMoney(symbol, ov.LiquidBalance)},
		{pterm.Blue("Income this month"), pterm.Green(utils.FormatMoney(symbol, ov.MonthIncome))},
		{pterm.Blue("Expenses this month"), pterm.Red(utils.FormatMoney(symbol, ov.MonthExpense))},
		{pterm.Blue("Net"), net},
		{pterm.Blue("Transactions recorded"), humanize.Comma(int64(ov.TotalTransactions))},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Println()
	return NewTransactionListView(symbol).Render(ov.Recent, len(ov.Recent), 0)
}
