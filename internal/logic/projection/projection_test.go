package projection

import (
	"testing"
	"time"

	"github.com/hance08/caja/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func txAt(daysAgo int, t model.TxType, amount int64) *model.Transaction {
	return &model.Transaction{
		Type:   t,
		Amount: amount,
		Date:   now.AddDate(0, 0, -daysAgo),
	}
}

func TestProject_Met(t *testing.T) {
	res := Project(nil, 1_000_000, 1_000_000, now)
	assert.Equal(t, StatusMet, res.Status)
	assert.True(t, res.Date.IsZero())
}

func TestProject_MetWinsOverRegressing(t *testing.T) {
	txs := []*model.Transaction{
		txAt(90, model.TxIncome, 100),
		txAt(30, model.TxExpense, 5_000),
	}
	res := Project(txs, 2_000_000, 1_000_000, now)
	assert.Equal(t, StatusMet, res.Status)
}

func TestProject_NoActivity(t *testing.T) {
	tests := []struct {
		name string
		txs  []*model.Transaction
	}{
		{name: "no transactions", txs: nil},
		{name: "single day of history", txs: []*model.Transaction{txAt(0, model.TxIncome, 50_000)}},
		{name: "six days of history", txs: []*model.Transaction{
			txAt(6, model.TxIncome, 50_000),
			txAt(1, model.TxIncome, 50_000),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Project(tt.txs, 0, 500_000, now)
			assert.Equal(t, StatusNoActivity, res.Status)
			assert.Equal(t, int64(500_000), res.Remaining)
			assert.True(t, res.Date.IsZero())
		})
	}
}

func TestProject_SevenDaysIsEnoughHistory(t *testing.T) {
	txs := []*model.Transaction{txAt(7, model.TxIncome, 70_000)}
	res := Project(txs, 70_000, 500_000, now)
	assert.Equal(t, StatusProjected, res.Status)
	assert.InDelta(t, 7.0, res.ElapsedDays, 1e-9)
}

func TestProject_Projected(t *testing.T) {
	txs := []*model.Transaction{
		txAt(60, model.TxIncome, 400_000),
		txAt(40, model.TxExpense, 300_000),
		txAt(10, model.TxIncome, 200_000),
	}

	res := Project(txs, 300_000, 1_000_000, now)
	require.Equal(t, StatusProjected, res.Status)

	assert.Equal(t, int64(700_000), res.Remaining)
	assert.InDelta(t, 152_200, res.MonthlyRate, 0.5)
	// 700k remaining at 300k per 60 days is 140 days away.
	assert.WithinDuration(t, now.AddDate(0, 0, 140), res.Date, time.Second)
}

func TestProject_SlowRateStopsAtHorizon(t *testing.T) {
	txs := []*model.Transaction{txAt(3650, model.TxIncome, 1)}

	res := Project(txs, 1, 9_000_000_000_001, now)
	require.Equal(t, StatusProjected, res.Status)
	assert.True(t, res.Capped)
	assert.True(t, res.Date.After(now))
	assert.WithinDuration(t, addDays(now, MaxHorizonDays), res.Date, time.Minute)
}

func TestProject_NormalRateIsNotCapped(t *testing.T) {
	txs := []*model.Transaction{txAt(30, model.TxIncome, 1_000)}

	res := Project(txs, 1_000, 5_000, now)
	require.Equal(t, StatusProjected, res.Status)
	assert.False(t, res.Capped)
}

func TestProject_Regressing(t *testing.T) {
	tests := []struct {
		name string
		txs  []*model.Transaction
	}{
		{name: "negative net flow", txs: []*model.Transaction{
			txAt(90, model.TxIncome, 100_000),
			txAt(45, model.TxExpense, 250_000),
		}},
		{name: "zero net flow", txs: []*model.Transaction{
			txAt(30, model.TxIncome, 100_000),
			txAt(20, model.TxExpense, 100_000),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Project(tt.txs, 10_000, 1_000_000, now)
			assert.Equal(t, StatusRegressing, res.Status)
			assert.LessOrEqual(t, res.MonthlyRate, 0.0)
			assert.True(t, res.Date.IsZero())
		})
	}
}

func TestProject_UsesEarliestDateRegardlessOfOrder(t *testing.T) {
	txs := []*model.Transaction{
		txAt(3, model.TxIncome, 10_000),
		txAt(30, model.TxIncome, 10_000),
		txAt(1, model.TxIncome, 10_000),
	}

	res := Project(txs, 30_000, 100_000, now)
	assert.Equal(t, StatusProjected, res.Status)
	assert.InDelta(t, 30.0, res.ElapsedDays, 1e-9)

	// input order is preserved
	assert.Equal(t, now.AddDate(0, 0, -3), txs[0].Date)
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		target   int64
		expected float64
	}{
		{"half way", 50, 100, 50},
		{"over target", 150, 100, 100},
		{"negative balance", -20, 100, 0},
		{"no target", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Progress(tt.balance, tt.target), 1e-9)
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "met", StatusMet.String())
	assert.Equal(t, "no activity", StatusNoActivity.String())
	assert.Equal(t, "regressing", StatusRegressing.String())
	assert.Equal(t, "projected", StatusProjected.String())
}
