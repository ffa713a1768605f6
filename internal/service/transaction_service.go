package service

import (
	"context"

	"github.com/hance08/caja/internal/constants"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/store"
)

type TransactionService struct {
	base
}

// GetTransaction returns one of the owner's transactions with its box name.
func (ts *TransactionService) GetTransaction(ctx context.Context, ownerID, id string) (*model.Transaction, error) {
	tx, err := ts.repo.GetTransaction(ctx, ownerID, id)
	if err != nil {
		return nil, notFoundOr(err, ErrTransactionNotFound)
	}
	return tx, nil
}

// ListTransactions pages through the owner's history, newest first.
func (ts *TransactionService) ListTransactions(ctx context.Context, ownerID string, in ListTransactionsInput) ([]*model.Transaction, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}
	if limit > constants.MaxListLimit {
		limit = constants.MaxListLimit
	}

	skip := in.Skip
	if skip < 0 {
		skip = 0
	}

	if in.BoxID != "" {
		if _, err := ts.repo.GetBox(ctx, ownerID, in.BoxID); err != nil {
			return nil, notFoundOr(err, ErrBoxNotFound)
		}
	}

	txs, err := ts.repo.ListTransactions(ctx, ownerID, store.TransactionFilter{
		BoxID: in.BoxID,
		Limit: limit,
		Skip:  skip,
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return txs, nil
}
