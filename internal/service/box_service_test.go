package service

import (
	"context"
	"testing"

	"github.com/hance08/caja/internal/constants"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBox_OpeningBalanceIsRecorded(t *testing.T) {
	ctx := context.Background()
	svc, s := setup(t)

	box := mustBox(t, svc, alice, CreateBoxInput{Name: "  Wallet ", OpeningBalance: 1_500})
	assert.Equal(t, "Wallet", box.Name)
	assert.Equal(t, int64(1_500), box.Balance)

	txs, err := svc.Transaction.ListTransactions(ctx, alice, ListTransactionsInput{BoxID: box.ID})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, constants.OpeningBalanceDescription, txs[0].Description)
	assert.Equal(t, int64(1_500), txs[0].Amount)

	assertConsistent(t, s, alice, box.ID)
}

func TestCreateBox_ZeroOpeningBalanceHasNoHistory(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	box := mustBox(t, svc, alice, CreateBoxInput{Name: "Empty"})

	txs, err := svc.Transaction.ListTransactions(ctx, alice, ListTransactionsInput{BoxID: box.ID})
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestCreateBox_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    CreateBoxInput
		field string
	}{
		{name: "blank name", in: CreateBoxInput{Name: "   "}, field: "name"},
		{name: "negative opening", in: CreateBoxInput{Name: "x", OpeningBalance: -1}, field: "balance"},
		{name: "goal without target", in: CreateBoxInput{Name: "x", IsGoal: true}, field: "targetAmount"},
		{name: "goal with zero target", in: CreateBoxInput{Name: "x", IsGoal: true, TargetAmount: ptr(int64(0))}, field: "targetAmount"},
		{name: "off-palette color", in: CreateBoxInput{Name: "x", Color: ptr("#000000")}, field: "color"},
	}

	svc, _ := setup(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Box.CreateBox(context.Background(), alice, tt.in)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	boxes, err := svc.Box.ListBoxes(context.Background(), alice, true)
	require.NoError(t, err)
	assert.Empty(t, boxes)
}

func TestCreateBox_NonGoalDropsTarget(t *testing.T) {
	svc, _ := setup(t)

	box := mustBox(t, svc, alice, CreateBoxInput{Name: "Cash", TargetAmount: ptr(int64(100))})
	assert.Nil(t, box.TargetAmount)
}

func TestGetBox_OtherOwnerIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)
	box := mustBox(t, svc, alice, CreateBoxInput{Name: "Private"})

	_, err := svc.Box.GetBox(ctx, bob, box.ID)
	assert.ErrorIs(t, err, ErrBoxNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Box.GetBox(ctx, alice, "does-not-exist")
	assert.ErrorIs(t, err, ErrBoxNotFound)
}

func TestUpdateBox(t *testing.T) {
	ctx := context.Background()
	svc, s := setup(t)
	box := mustBox(t, svc, alice, CreateBoxInput{Name: "Savings", OpeningBalance: 200})

	updated, err := svc.Box.UpdateBox(ctx, alice, box.ID, UpdateBoxInput{
		Name:         ptr("Trip"),
		Color:        ptr("#36D399"),
		IsGoal:       ptr(true),
		TargetAmount: ptr(int64(10_000)),
	})
	require.NoError(t, err)
	assert.Equal(t, "Trip", updated.Name)
	assert.Equal(t, int64(10_000), updated.Target())
	assert.Equal(t, int64(200), updated.Balance)

	_, err = svc.Box.UpdateBox(ctx, alice, box.ID, UpdateBoxInput{TargetAmount: ptr(int64(-5))})
	assert.ErrorIs(t, err, ErrValidation)

	updated, err = svc.Box.UpdateBox(ctx, alice, box.ID, UpdateBoxInput{IsGoal: ptr(false), Color: ptr("")})
	require.NoError(t, err)
	assert.False(t, updated.IsGoal)
	assert.Nil(t, updated.TargetAmount)
	assert.Nil(t, updated.Color)

	_, err = svc.Box.UpdateBox(ctx, bob, box.ID, UpdateBoxInput{Name: ptr("Mine now")})
	assert.ErrorIs(t, err, ErrBoxNotFound)

	assertConsistent(t, s, alice, box.ID)
}

func TestArchiveBox(t *testing.T) {
	ctx := context.Background()
	svc, s := setup(t)
	box := mustBox(t, svc, alice, CreateBoxInput{Name: "Old", OpeningBalance: 75})

	assert.ErrorIs(t, svc.Box.ArchiveBox(ctx, bob, box.ID), ErrBoxNotFound)
	require.NoError(t, svc.Box.ArchiveBox(ctx, alice, box.ID))
	assert.ErrorIs(t, svc.Box.ArchiveBox(ctx, alice, box.ID), ErrBoxNotFound)

	_, err := svc.Box.GetBox(ctx, alice, box.ID)
	assert.ErrorIs(t, err, ErrBoxNotFound)

	active, err := svc.Box.ListBoxes(ctx, alice, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.Box.ListBoxes(ctx, alice, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(75), all[0].Balance)

	assertConsistent(t, s, alice, box.ID)
}

func TestVerifyBox(t *testing.T) {
	ctx := context.Background()
	svc, s := setup(t)
	box := mustBox(t, svc, alice, CreateBoxInput{Name: "Wallet", OpeningBalance: 100})
	mustTx(t, svc, alice, box.ID, model.TxExpense, 30)

	rec, err := svc.Box.VerifyBox(ctx, alice, box.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.Drift())
	assert.False(t, rec.Fixed)

	// corrupt the stored balance behind the ledger's back
	require.NoError(t, s.AdjustBalance(ctx, box.ID, 9))

	rec, err = svc.Box.VerifyBox(ctx, alice, box.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(79), rec.Stored)
	assert.Equal(t, int64(70), rec.Computed)
	assert.False(t, rec.Fixed)
	assert.Equal(t, int64(79), balanceOf(t, s, alice, box.ID))

	rec, err = svc.Box.VerifyBox(ctx, alice, box.ID, true)
	require.NoError(t, err)
	assert.True(t, rec.Fixed)
	assert.Equal(t, int64(70), rec.Box.Balance)
	assertConsistent(t, s, alice, box.ID)

	_, err = svc.Box.VerifyBox(ctx, bob, box.ID, true)
	assert.ErrorIs(t, err, ErrBoxNotFound)
}

func TestCreateBox_StorageFailureLeavesNothing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := newTestService(t, &faultyRepo{Repository: s, failBox: anyBox})

	_, err := svc.Box.CreateBox(ctx, alice, CreateBoxInput{Name: "Wallet", OpeningBalance: 10})
	require.ErrorIs(t, err, ErrStorage)

	boxes, err := s.ListBoxes(ctx, alice, store.BoxFilter{IncludeArchived: true})
	require.NoError(t, err)
	assert.Empty(t, boxes)
}

func TestFindBox(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)
	wallet := mustBox(t, svc, alice, CreateBoxInput{Name: "Wallet"})
	mustBox(t, svc, alice, CreateBoxInput{Name: "wallet"})
	trip := mustBox(t, svc, alice, CreateBoxInput{Name: "Trip"})

	got, err := svc.Box.FindBox(ctx, alice, wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, got.ID)

	got, err = svc.Box.FindBox(ctx, alice, "trip")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)

	got, err = svc.Box.FindBox(ctx, alice, trip.ID[:13])
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)

	_, err = svc.Box.FindBox(ctx, alice, "WALLET")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Box.FindBox(ctx, bob, "Trip")
	assert.ErrorIs(t, err, ErrBoxNotFound)

	require.NoError(t, svc.Box.ArchiveBox(ctx, alice, trip.ID))
	_, err = svc.Box.FindBox(ctx, alice, trip.ID)
	assert.ErrorIs(t, err, ErrBoxNotFound)
}
