package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hance08/caja/internal/constants"
	"github.com/hance08/caja/internal/logic/ledger"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/store"
	"github.com/hance08/caja/internal/validation"
)

type BoxService struct {
	base
}

type CreateBoxInput struct {
	Name           string
	Icon           *string
	Color          *string
	OpeningBalance int64
	IsGoal         bool
	TargetAmount   *int64
	IsThirdParty   bool
}

// UpdateBoxInput is a patch: nil fields are left untouched. There is no
// balance field; balances only move through transactions.
type UpdateBoxInput struct {
	Name         *string
	Icon         *string
	Color        *string
	IsGoal       *bool
	TargetAmount *int64
	IsThirdParty *bool
}

// Reconciliation compares a stored balance with its transaction history.
type Reconciliation struct {
	Box      *model.Box
	Stored   int64
	Computed int64
	Fixed    bool
}

func (r *Reconciliation) Drift() int64 {
	return r.Computed - r.Stored
}

// CreateBox creates a box. A positive opening balance is recorded as an
// income transaction in the same atomic unit, so the balance still equals
// the transaction sum.
func (bs *BoxService) CreateBox(ctx context.Context, ownerID string, in CreateBoxInput) (*model.Box, error) {
	if err := validation.ValidateBoxName(in.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateColor(emptyToNil(in.Color)); err != nil {
		return nil, err
	}
	if err := validation.ValidateOpeningBalance(in.OpeningBalance); err != nil {
		return nil, err
	}
	if err := validation.ValidateGoal(in.IsGoal, in.TargetAmount); err != nil {
		return nil, err
	}

	now := bs.now()
	box := &model.Box{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Name:         strings.TrimSpace(in.Name),
		Icon:         emptyToNil(in.Icon),
		Color:        emptyToNil(in.Color),
		IsGoal:       in.IsGoal,
		IsThirdParty: in.IsThirdParty,
		CreatedAt:    now,
	}
	if in.IsGoal {
		box.TargetAmount = in.TargetAmount
	}

	err := bs.repo.ExecTx(ctx, func(repo store.Repository) error {
		if err := repo.CreateBox(ctx, box); err != nil {
			return storageErr(err)
		}

		if in.OpeningBalance == 0 {
			return nil
		}

		opening := &model.Transaction{
			ID:          uuid.NewString(),
			BoxID:       box.ID,
			Amount:      in.OpeningBalance,
			Type:        model.TxIncome,
			Description: constants.OpeningBalanceDescription,
			Date:        now,
			CreatedAt:   now,
		}
		if err := repo.CreateTransaction(ctx, opening); err != nil {
			return storageErr(err)
		}
		if err := ledger.Apply(ctx, repo, ledger.EntryOf(opening)); err != nil {
			return storageErr(err)
		}
		box.Balance = in.OpeningBalance
		return nil
	})
	if err != nil {
		bs.logger.Warn("create box aborted", bs.logger.Args("name", box.Name, "error", err))
		return nil, storageErr(err)
	}

	bs.logger.Debug("box created", bs.logger.Args("id", box.ID, "opening", in.OpeningBalance))
	return box, nil
}

// GetBox returns an active box of the owner.
func (bs *BoxService) GetBox(ctx context.Context, ownerID, id string) (*model.Box, error) {
	return activeBox(ctx, bs.repo, ownerID, id)
}

// FindBox resolves ref against the owner's active boxes: an exact id, a
// unique id prefix, or a case-insensitive name.
func (bs *BoxService) FindBox(ctx context.Context, ownerID, ref string) (*model.Box, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, invalid("box", "box is required")
	}

	boxes, err := bs.ListBoxes(ctx, ownerID, false)
	if err != nil {
		return nil, err
	}

	var matches []*model.Box
	for _, box := range boxes {
		if box.ID == ref {
			return box, nil
		}
		if strings.HasPrefix(box.ID, ref) || strings.EqualFold(box.Name, ref) {
			matches = append(matches, box)
		}
	}

	switch len(matches) {
	case 0:
		return nil, ErrBoxNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, invalid("box", fmt.Sprintf("%q matches %d boxes, use the id instead", ref, len(matches)))
	}
}

func (bs *BoxService) ListBoxes(ctx context.Context, ownerID string, includeArchived bool) ([]*model.Box, error) {
	boxes, err := bs.repo.ListBoxes(ctx, ownerID, store.BoxFilter{IncludeArchived: includeArchived})
	if err != nil {
		return nil, storageErr(err)
	}
	return boxes, nil
}

// UpdateBox applies a patch to an active box. The resolved goal state must
// satisfy the goal invariant; turning a goal off clears its target.
func (bs *BoxService) UpdateBox(ctx context.Context, ownerID, id string, in UpdateBoxInput) (*model.Box, error) {
	if in.Name != nil {
		if err := validation.ValidateBoxName(*in.Name); err != nil {
			return nil, err
		}
	}
	if err := validation.ValidateColor(emptyToNil(in.Color)); err != nil {
		return nil, err
	}

	var updated *model.Box

	err := bs.repo.ExecTx(ctx, func(repo store.Repository) error {
		box, err := activeBox(ctx, repo, ownerID, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			box.Name = strings.TrimSpace(*in.Name)
		}
		if in.Icon != nil {
			box.Icon = emptyToNil(in.Icon)
		}
		if in.Color != nil {
			box.Color = emptyToNil(in.Color)
		}
		if in.IsThirdParty != nil {
			box.IsThirdParty = *in.IsThirdParty
		}
		if in.IsGoal != nil {
			box.IsGoal = *in.IsGoal
		}
		if in.TargetAmount != nil {
			box.TargetAmount = in.TargetAmount
		}

		if err := validation.ValidateGoal(box.IsGoal, box.TargetAmount); err != nil {
			return err
		}
		if !box.IsGoal {
			box.TargetAmount = nil
		}

		if err := repo.UpdateBox(ctx, box); err != nil {
			return notFoundOr(err, ErrBoxNotFound)
		}
		updated = box
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	bs.logger.Debug("box updated", bs.logger.Args("id", id))
	return updated, nil
}

// ArchiveBox hides a box from active listings. Its history and balance stay.
func (bs *BoxService) ArchiveBox(ctx context.Context, ownerID, id string) error {
	if err := bs.repo.ArchiveBox(ctx, ownerID, id); err != nil {
		return notFoundOr(err, ErrBoxNotFound)
	}

	bs.logger.Debug("box archived", bs.logger.Args("id", id))
	return nil
}

// VerifyBox recomputes the balance from history and reports any drift. With
// fix set, the drift is corrected in the same atomic unit as the check.
func (bs *BoxService) VerifyBox(ctx context.Context, ownerID, id string, fix bool) (*Reconciliation, error) {
	var rec *Reconciliation

	err := bs.repo.ExecTx(ctx, func(repo store.Repository) error {
		box, err := repo.GetBox(ctx, ownerID, id)
		if err != nil {
			return notFoundOr(err, ErrBoxNotFound)
		}

		sum, err := repo.LedgerSum(ctx, box.ID)
		if err != nil {
			return storageErr(err)
		}

		rec = &Reconciliation{Box: box, Stored: box.Balance, Computed: sum}
		if !fix || rec.Drift() == 0 {
			return nil
		}

		if err := ledger.Correct(ctx, repo, box.ID, rec.Stored, rec.Computed); err != nil {
			return storageErr(err)
		}
		rec.Fixed = true
		box.Balance = sum
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	if rec.Drift() != 0 {
		bs.logger.Warn("balance drift detected", bs.logger.Args(
			"box", id, "stored", rec.Stored, "computed", rec.Computed, "fixed", rec.Fixed,
		))
	}
	return rec, nil
}

// activeBox loads a box the owner can still record against.
func activeBox(ctx context.Context, repo store.BoxRepository, ownerID, id string) (*model.Box, error) {
	box, err := repo.GetBox(ctx, ownerID, id)
	if err != nil {
		return nil, notFoundOr(err, ErrBoxNotFound)
	}
	if box.IsArchived {
		return nil, ErrBoxNotFound
	}
	return box, nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
