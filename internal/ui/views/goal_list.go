package views

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/hance08/caja/internal/logic/projection"
	"github.com/hance08/caja/internal/service"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/utils"
	"github.com/pterm/pterm"
)

func RenderGoalList(reports []*service.GoalReport, overview *service.GoalOverview, symbol string) error {
	if len(reports) == 0 {
		pterm.Warning.Println("No savings goals yet, create one with 'caja box create --goal --target <amount>'")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Goal", "Saved", "Target", "Progress", "Estimate"}}
	for _, r := range reports {
		tableData = append(tableData, []string{
			ShortID(r.Box.ID),
			ui.BoxLabel(r.Box),
			utils.FormatMoney(symbol, r.Box.Balance),
			utils.FormatMoney(symbol, r.Box.Target()),
			progressCell(r.Progress),
			estimate(r.Projection),
		})
	}

	pterm.DefaultSection.Printf("Savings Goals")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	if overview != nil {
		pterm.Info.Printf("%d active, %d on track, %s saved in total\n",
			overview.Active, overview.OnTrack, utils.FormatMoney(symbol, overview.TotalSaved))
	}
	return nil
}

func RenderGoalDetail(r *service.GoalReport, symbol string) error {
	ui.PrintL2Title("%s", r.Box.Name)

	p := r.Projection
	tableData := pterm.TableData{
		{pterm.Blue("Saved"), utils.FormatMoney(symbol, r.Box.Balance)},
		{pterm.Blue("Target"), utils.FormatMoney(symbol, r.Box.Target())},
		{pterm.Blue("Progress"), progressCell(r.Progress)},
		{pterm.Blue("Status"), p.Status.String()},
	}
	if p.Status != projection.StatusMet {
		tableData = append(tableData, []string{pterm.Blue("Remaining"), utils.FormatMoney(symbol, p.Remaining)})
	}
	if p.ElapsedDays >= projection.MinHistoryDays {
		tableData = append(tableData, []string{
			pterm.Blue("Monthly rate"),
			utils.FormatSigned(symbol, int64(p.MonthlyRate)),
		})
	}
	tableData = append(tableData, []string{pterm.Blue("Estimate"), estimate(p)})

	return pterm.DefaultTable.WithData(tableData).Render()
}

func progressCell(pct float64) string {
	s := fmt.Sprintf("%.0f%%", pct)
	if pct >= projection.OnTrackPercent {
		return pterm.Green(s)
	}
	return s
}

func estimate(p projection.Result) string {
	switch p.Status {
	case projection.StatusMet:
		return pterm.Green("Reached")
	case projection.StatusNoActivity:
		return pterm.Gray("Not enough history")
	case projection.StatusRegressing:
		return pterm.Red("Not at the current pace")
	default:
		if p.Capped {
			return pterm.Yellow("After " + utils.FormatDate(p.Date))
		}
		return fmt.Sprintf("%s (%s)", utils.FormatDate(p.Date), humanize.Time(p.Date))
	}
}
