package views

import (
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/utils"
	"github.com/pterm/pterm"
)

type BoxListView struct {
	Symbol string
}

func NewBoxListView(symbol string) *BoxListView {
	return &BoxListView{Symbol: symbol}
}

func (v *BoxListView) Render(boxes []*model.Box) error {
	if len(boxes) == 0 {
		pterm.Warning.Println("No boxes yet, create one with 'caja box create'")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Box", "Kind", "Balance", "Target"}}

	var liquid int64
	for _, box := range boxes {
		if box.Liquid() {
			liquid += box.Balance
		}

		balance := utils.FormatMoney(v.Symbol, box.Balance)
		if box.Balance < 0 {
			balance = pterm.Red(balance)
		}

		target := "-"
		if box.IsGoal {
			target = utils.FormatMoney(v.Symbol, box.Target())
		}

		tableData = append(tableData, []string{
			ShortID(box.ID),
			ui.BoxLabel(box),
			boxKind(box),
			balance,
			target,
		})
	}

	pterm.DefaultSection.Printf("Box List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d boxes, liquid balance %s\n", len(boxes), utils.FormatMoney(v.Symbol, liquid))
	return nil
}

func boxKind(box *model.Box) string {
	var kind string
	switch {
	case box.IsGoal:
		kind = pterm.Cyan("Goal")
	case box.IsThirdParty:
		kind = pterm.Gray("Third-party")
	default:
		kind = "Cash"
	}

	if box.IsArchived {
		kind += pterm.Gray(" (archived)")
	}
	return kind
}
