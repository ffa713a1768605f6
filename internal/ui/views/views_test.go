package views

import (
	"testing"
	"time"

	"github.com/hance08/caja/internal/logic/projection"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/service"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func quiet(t *testing.T) {
	t.Helper()

	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)
}

func TestRenderOverview(t *testing.T) {
	quiet(t)

	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	ov := &service.Overview{
		LiquidBalance:     870,
		MonthIncome:       1_750,
		MonthExpense:      200,
		TotalTransactions: 2,
		From:              from,
		To:                from.AddDate(0, 1, 0).Add(-time.Second),
		Recent: []*model.Transaction{
			{ID: "t1", BoxName: "Wallet", Type: model.TxIncome, Amount: 1_750, Description: "salary", Date: from},
			{ID: "t2", BoxName: "Wallet", Type: model.TxExpense, Amount: 200, Description: "food", Date: from},
		},
	}

	assert.NoError(t, RenderOverview(ov, "$"))
	assert.NoError(t, RenderOverview(&service.Overview{From: from}, "$"))
}

func TestEstimate(t *testing.T) {
	date := time.Date(2126, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.Contains(t, estimate(projection.Result{Status: projection.StatusProjected, Date: date, Capped: true}), "After 2126-03-15")
	assert.Contains(t, estimate(projection.Result{Status: projection.StatusProjected, Date: date}), "2126-03-15")
	assert.NotContains(t, estimate(projection.Result{Status: projection.StatusProjected, Date: date}), "After")
}
