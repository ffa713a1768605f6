// Package ledger maintains the stored balance of a box as transactions are
// applied, reverted and re-applied. Every call must run inside the same
// atomic unit as the transaction write that justifies it.
package ledger

import (
	"context"
	"fmt"

	"github.com/hance08/caja/internal/model"
)

// BalanceWriter is the slice of the store the ledger needs.
type BalanceWriter interface {
	AdjustBalance(ctx context.Context, boxID string, delta int64) error
}

// Entry is the (box, type, amount) triple whose signed effect is applied
// to or reverted from a balance.
type Entry struct {
	BoxID  string
	Type   model.TxType
	Amount int64
}

// EntryOf returns the ledger entry a transaction stands for.
func EntryOf(tx *model.Transaction) Entry {
	return Entry{BoxID: tx.BoxID, Type: tx.Type, Amount: tx.Amount}
}

// Delta is the signed balance change implied by a transaction type and amount.
func Delta(t model.TxType, amount int64) int64 {
	if t == model.TxIncome {
		return amount
	}
	return -amount
}

// Apply persists the entry's delta on its box.
func Apply(ctx context.Context, w BalanceWriter, e Entry) error {
	if err := w.AdjustBalance(ctx, e.BoxID, Delta(e.Type, e.Amount)); err != nil {
		return fmt.Errorf("apply %s %d: %w", e.Type, e.Amount, err)
	}
	return nil
}

// Revert persists the inverse of the entry's delta on its box.
func Revert(ctx context.Context, w BalanceWriter, e Entry) error {
	if err := w.AdjustBalance(ctx, e.BoxID, -Delta(e.Type, e.Amount)); err != nil {
		return fmt.Errorf("revert %s %d: %w", e.Type, e.Amount, err)
	}
	return nil
}

// Move reverts from on its box and applies to on its box. The two entries may
// name different boxes, types and amounts.
func Move(ctx context.Context, w BalanceWriter, from, to Entry) error {
	if err := Revert(ctx, w, from); err != nil {
		return err
	}
	return Apply(ctx, w, to)
}

// Correct moves a drifted balance back onto the ledger sum. It is the write
// half of the reconciliation check and is never part of normal mutation paths.
func Correct(ctx context.Context, w BalanceWriter, boxID string, stored, computed int64) error {
	drift := computed - stored
	if drift == 0 {
		return nil
	}
	if err := w.AdjustBalance(ctx, boxID, drift); err != nil {
		return fmt.Errorf("correct drift %d: %w", drift, err)
	}
	return nil
}
