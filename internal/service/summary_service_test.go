package service

import (
	"context"
	"testing"

	"github.com/hance08/caja/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryOverview(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	wallet := mustBox(t, svc, alice, CreateBoxInput{Name: "Wallet", OpeningBalance: 1_000})
	mustBox(t, svc, alice, CreateBoxInput{Name: "Trip", OpeningBalance: 400, IsGoal: true, TargetAmount: ptr(int64(2_000))})
	mustBox(t, svc, alice, CreateBoxInput{Name: "Held for mum", OpeningBalance: 300, IsThirdParty: true})
	old := mustBox(t, svc, alice, CreateBoxInput{Name: "Old", OpeningBalance: 50})
	require.NoError(t, svc.Box.ArchiveBox(ctx, alice, old.ID))
	mustBox(t, svc, bob, CreateBoxInput{Name: "Bob", OpeningBalance: 9_999})

	mustTx(t, svc, alice, wallet.ID, model.TxExpense, 200)

	// last month is outside the window
	_, err := svc.Transaction.CreateTransaction(ctx, alice, CreateTransactionInput{
		BoxID: wallet.ID, Type: model.TxIncome, Amount: 70, Description: "late refund",
		Date: testNow.AddDate(0, -1, 0),
	})
	require.NoError(t, err)

	ov, err := svc.Summary.Overview(ctx, alice, testNow)
	require.NoError(t, err)

	assert.Equal(t, int64(870), ov.LiquidBalance)
	assert.Equal(t, int64(1_750), ov.MonthIncome)
	assert.Equal(t, int64(200), ov.MonthExpense)
	assert.Equal(t, int64(1_550), ov.MonthNet())
	assert.Equal(t, 6, ov.TotalTransactions)
	assert.Len(t, ov.Recent, 6)
	assert.Equal(t, 1, ov.From.Day())
	assert.Equal(t, 31, ov.To.Day())
}
