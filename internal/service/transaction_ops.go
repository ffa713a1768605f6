package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hance08/caja/internal/logic/ledger"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/store"
	"github.com/hance08/caja/internal/validation"
)

// CreateTransaction persists a new transaction and applies its delta to the
// box balance as one atomic unit.
func (ts *TransactionService) CreateTransaction(ctx context.Context, ownerID string, in CreateTransactionInput) (*model.Transaction, error) {
	if err := validation.ValidateTransaction(in.Amount, in.Type, in.Description); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.BoxID) == "" {
		return nil, invalid("box", "box is required")
	}
	if in.SaveAsTemplate {
		if err := validation.ValidateTemplateName(in.TemplateName); err != nil {
			return nil, err
		}
	}

	now := ts.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	tx := &model.Transaction{
		ID:          uuid.NewString(),
		BoxID:       in.BoxID,
		Amount:      in.Amount,
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		Date:        date,
		CreatedAt:   now,
	}

	err := ts.repo.ExecTx(ctx, func(repo store.Repository) error {
		box, err := activeBox(ctx, repo, ownerID, in.BoxID)
		if err != nil {
			return err
		}

		if err := repo.CreateTransaction(ctx, tx); err != nil {
			return storageErr(err)
		}
		if err := ledger.Apply(ctx, repo, ledger.EntryOf(tx)); err != nil {
			return storageErr(err)
		}
		tx.BoxName = box.Name

		if in.SaveAsTemplate {
			tpl := &model.Template{
				ID:          uuid.NewString(),
				OwnerID:     ownerID,
				BoxID:       tx.BoxID,
				Name:        strings.TrimSpace(in.TemplateName),
				Amount:      tx.Amount,
				Type:        tx.Type,
				Description: tx.Description,
				CreatedAt:   now,
			}
			if err := repo.CreateTemplate(ctx, tpl); err != nil {
				return storageErr(err)
			}
		}
		return nil
	})
	if err != nil {
		ts.logger.Warn("create transaction aborted", ts.logger.Args("box", in.BoxID, "error", err))
		return nil, storageErr(err)
	}

	ts.logger.Debug("transaction created", ts.logger.Args(
		"id", tx.ID, "box", tx.BoxID, "delta", ledger.Delta(tx.Type, tx.Amount),
	))
	return tx, nil
}

// UpdateTransaction reverts the old (box, type, amount) entry, applies the
// new one and saves the new field values, all in one atomic unit. Changing
// BoxID moves the transaction between boxes.
func (ts *TransactionService) UpdateTransaction(ctx context.Context, ownerID, id string, in UpdateTransactionInput) (*model.Transaction, error) {
	if err := validation.ValidateTransaction(in.Amount, in.Type, in.Description); err != nil {
		return nil, err
	}

	var updated *model.Transaction

	err := ts.repo.ExecTx(ctx, func(repo store.Repository) error {
		old, err := repo.GetTransaction(ctx, ownerID, id)
		if err != nil {
			return notFoundOr(err, ErrTransactionNotFound)
		}

		next := *old
		if in.BoxID != "" {
			next.BoxID = in.BoxID
		}
		next.Type = in.Type
		next.Amount = in.Amount
		next.Description = strings.TrimSpace(in.Description)
		if !in.Date.IsZero() {
			next.Date = in.Date
		}

		// only a new destination must be active; the source box is already
		// owner-scoped through the transaction lookup
		if next.BoxID != old.BoxID {
			dest, err := activeBox(ctx, repo, ownerID, next.BoxID)
			if err != nil {
				return err
			}
			next.BoxName = dest.Name
		}

		if err := ledger.Move(ctx, repo, ledger.EntryOf(old), ledger.EntryOf(&next)); err != nil {
			return storageErr(err)
		}
		if err := repo.UpdateTransaction(ctx, &next); err != nil {
			return storageErr(err)
		}

		updated = &next
		return nil
	})
	if err != nil {
		ts.logger.Warn("update transaction aborted", ts.logger.Args("id", id, "error", err))
		return nil, storageErr(err)
	}

	ts.logger.Debug("transaction updated", ts.logger.Args("id", id, "box", updated.BoxID))
	return updated, nil
}

// DeleteTransaction removes the record and reverts its delta atomically.
func (ts *TransactionService) DeleteTransaction(ctx context.Context, ownerID, id string) error {
	err := ts.repo.ExecTx(ctx, func(repo store.Repository) error {
		tx, err := repo.GetTransaction(ctx, ownerID, id)
		if err != nil {
			return notFoundOr(err, ErrTransactionNotFound)
		}

		if err := repo.DeleteTransaction(ctx, tx.ID); err != nil {
			return notFoundOr(err, ErrTransactionNotFound)
		}
		if err := ledger.Revert(ctx, repo, ledger.EntryOf(tx)); err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		ts.logger.Warn("delete transaction aborted", ts.logger.Args("id", id, "error", err))
		return storageErr(err)
	}

	ts.logger.Debug("transaction deleted", ts.logger.Args("id", id))
	return nil
}

// CreateFromTemplate records a new transaction shaped like a saved template.
func (ts *TransactionService) CreateFromTemplate(ctx context.Context, ownerID, templateID string, in TemplateUse) (*model.Transaction, error) {
	tpl, err := ts.repo.GetTemplate(ctx, ownerID, templateID)
	if err != nil {
		return nil, notFoundOr(err, ErrTemplateNotFound)
	}

	input := CreateTransactionInput{
		BoxID:       tpl.BoxID,
		Type:        tpl.Type,
		Amount:      tpl.Amount,
		Description: tpl.Description,
		Date:        in.Date,
	}
	if in.Amount > 0 {
		input.Amount = in.Amount
	}
	if strings.TrimSpace(in.Description) != "" {
		input.Description = in.Description
	}

	return ts.CreateTransaction(ctx, ownerID, input)
}
