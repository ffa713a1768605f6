package views

import (
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTemplateList(templates []*model.Template, symbol string) error {
	if len(templates) == 0 {
		pterm.Warning.Println("No templates saved")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Type", "Box", "Description", "Amount"}}
	for _, tpl := range templates {
		tableData = append(tableData, []string{
			tpl.ID,
			tpl.Name,
			ui.TypeColor(tpl.Type, tpl.Type.Label()),
			tpl.BoxName,
			tpl.Description,
			utils.FormatMoney(symbol, tpl.Amount),
		})
	}

	pterm.DefaultSection.Printf("Templates")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
