package service

import (
	"context"
	"time"

	"github.com/hance08/caja/internal/constants"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/store"
	"github.com/hance08/caja/internal/utils"
)

type SummaryService struct {
	base
}

// Overview is the dashboard for one owner and one calendar month.
type Overview struct {
	LiquidBalance     int64
	MonthIncome       int64
	MonthExpense      int64
	Recent            []*model.Transaction
	TotalTransactions int
	From              time.Time
	To                time.Time
}

func (o *Overview) MonthNet() int64 {
	return o.MonthIncome - o.MonthExpense
}

// Overview totals the owner's liquid boxes and the month containing now.
func (ss *SummaryService) Overview(ctx context.Context, ownerID string, now time.Time) (*Overview, error) {
	from, to := utils.MonthBounds(now)
	ov := &Overview{From: from, To: to}

	err := ss.repo.ExecTx(ctx, func(repo store.Repository) error {
		boxes, err := repo.ListBoxes(ctx, ownerID, store.BoxFilter{})
		if err != nil {
			return storageErr(err)
		}
		for _, box := range boxes {
			if box.Liquid() {
				ov.LiquidBalance += box.Balance
			}
		}

		if ov.MonthIncome, err = repo.SumTransactions(ctx, ownerID, model.TxIncome, from, to); err != nil {
			return storageErr(err)
		}
		if ov.MonthExpense, err = repo.SumTransactions(ctx, ownerID, model.TxExpense, from, to); err != nil {
			return storageErr(err)
		}

		if ov.Recent, err = repo.ListTransactions(ctx, ownerID, store.TransactionFilter{
			Limit: constants.RecentLimit,
		}); err != nil {
			return storageErr(err)
		}

		if ov.TotalTransactions, err = repo.CountTransactions(ctx, ownerID); err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return ov, nil
}
