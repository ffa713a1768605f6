package views

import (
	"github.com/dustin/go-humanize"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/utils"
	"github.com/pterm/pterm"
)

func RenderBoxDetail(box *model.Box, symbol string) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("ID"), box.ID},
		{pterm.Blue("Name"), ui.BoxLabel(box)},
		{pterm.Blue("Kind"), boxKind(box)},
		{pterm.Blue("Balance"), utils.FormatMoney(symbol, box.Balance)},
	}
	if box.IsGoal {
		tableData = append(tableData, []string{pterm.Blue("Target"), utils.FormatMoney(symbol, box.Target())})
	}
	tableData = append(tableData, []string{pterm.Blue("Created"), humanize.Time(box.CreatedAt)})

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderBoxSuccess(box *model.Box, action string) {
	pterm.Success.Printf("Box %s %s successfully! (ID: %s)\n", box.Name, action, box.ID)
}

// RenderReconciliation reports the outcome of a balance check.
func RenderReconciliation(rec *service.Reconciliation, symbol string) error {
	tableData := pterm.TableData{
		{"Box", ui.BoxLabel(rec.Box)},
		{"Stored balance", utils.FormatMoney(symbol, rec.Stored)},
		{"From history", utils.FormatMoney(symbol, rec.Computed)},
		{"Drift", utils.FormatSigned(symbol, rec.Drift())},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	switch {
	case rec.Drift() == 0:
		pterm.Success.Println("Balance matches the transaction history")
	case rec.Fixed:
		pterm.Success.Printf("Balance corrected to %s\n", utils.FormatMoney(symbol, rec.Computed))
	default:
		pterm.Warning.Printf("Balance is off by %s, run again with --fix to correct it\n",
			utils.FormatSigned(symbol, rec.Drift()))
	}
	return nil
}
