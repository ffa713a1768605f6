// Package projection forecasts when a savings goal will be reached from the
// net cash-flow rate of its whole transaction history.
package projection

import (
	"math"
	"sort"
	"time"

	"github.com/hance08/caja/internal/model"
)

const (
	// DaysPerMonth is the average Gregorian month length.
	DaysPerMonth = 30.44

	// MinHistoryDays is how much history is needed before a rate is trusted.
	MinHistoryDays = 7.0

	// OnTrackPercent is the progress from which a goal counts as on track.
	OnTrackPercent = 80.0

	// MaxHorizonDays bounds how far ahead a projected date may lie. Slower
	// rates project onto the horizon with Capped set.
	MaxHorizonDays = 100 * 365.25
)

const day = 24 * time.Hour

type Status int

const (
	StatusMet Status = iota
	StatusNoActivity
	StatusRegressing
	StatusProjected
)

func (s Status) String() string {
	switch s {
	case StatusMet:
		return "met"
	case StatusNoActivity:
		return "no activity"
	case StatusRegressing:
		return "regressing"
	case StatusProjected:
		return "projected"
	default:
		return "unknown"
	}
}

// Result is the outcome of Project. Date is set only for StatusProjected;
// MonthlyRate and ElapsedDays are set once enough history exists. Capped
// means the real estimate lies past MaxHorizonDays and Date is the horizon.
type Result struct {
	Status      Status
	Date        time.Time
	Remaining   int64
	MonthlyRate float64
	ElapsedDays float64
	Capped      bool
}

// Project evaluates MET, NO_ACTIVITY, REGRESSING and PROJECTED in that order.
// The input slice is not modified.
func Project(txs []*model.Transaction, balance, target int64, now time.Time) Result {
	if balance >= target {
		return Result{Status: StatusMet}
	}

	res := Result{Remaining: target - balance}

	if len(txs) == 0 {
		res.Status = StatusNoActivity
		return res
	}

	firstDate := earliest(txs)
	res.ElapsedDays = float64(now.Sub(firstDate)) / float64(day)

	if res.ElapsedDays < MinHistoryDays {
		res.Status = StatusNoActivity
		return res
	}

	var totalIncome, totalExpense int64
	for _, tx := range txs {
		switch tx.Type {
		case model.TxIncome:
			totalIncome += tx.Amount
		case model.TxExpense:
			totalExpense += tx.Amount
		}
	}

	netFlow := float64(totalIncome - totalExpense)
	elapsedMonths := res.ElapsedDays / DaysPerMonth
	res.MonthlyRate = netFlow / elapsedMonths

	if res.MonthlyRate <= 0 {
		res.Status = StatusRegressing
		return res
	}

	monthsToGoal := float64(res.Remaining) / res.MonthlyRate
	res.Status = StatusProjected
	days := monthsToGoal * DaysPerMonth
	if days > MaxHorizonDays {
		days = MaxHorizonDays
		res.Capped = true
	}
	res.Date = addDays(now, days)

	return res
}

// Progress is balance as a percentage of target, clamped to [0, 100].
func Progress(balance, target int64) float64 {
	if target <= 0 {
		return 0
	}

	pct := float64(balance) / float64(target) * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

func earliest(txs []*model.Transaction) time.Time {
	sorted := make([]*model.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted[0].Date
}

// addDays adds fractional days. Callers keep days within MaxHorizonDays.
func addDays(t time.Time, days float64) time.Time {
	whole := math.Floor(days)
	frac := time.Duration((days - whole) * float64(day))
	return t.AddDate(0, 0, int(whole)).Add(frac)
}
