package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "caja.db"), migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedBox(t *testing.T, s *Store, id, owner string) *model.Box {
	t.Helper()

	box := &model.Box{ID: id, OwnerID: owner, Name: "Box " + id, CreatedAt: time.Unix(1_700_000_000, 0)}
	require.NoError(t, s.CreateBox(context.Background(), box))
	return box
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "caja.db")

	s, err := NewStore(path, migrations.FS)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStore(path, migrations.FS)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestBoxes_CreateGetAndOwnerScoping(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	target := int64(5_000)
	color := "#7c3aed"
	box := &model.Box{
		ID: "b1", OwnerID: "alice", Name: "Trip", Color: &color,
		IsGoal: true, TargetAmount: &target, CreatedAt: time.Unix(1_700_000_000, 0),
	}
	require.NoError(t, s.CreateBox(ctx, box))

	got, err := s.GetBox(ctx, "alice", "b1")
	require.NoError(t, err)
	assert.Equal(t, "Trip", got.Name)
	assert.Nil(t, got.Icon)
	require.NotNil(t, got.Color)
	assert.Equal(t, color, *got.Color)
	assert.Equal(t, int64(5_000), got.Target())
	assert.Equal(t, int64(0), got.Balance)

	_, err = s.GetBox(ctx, "mallory", "b1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestBoxes_GoalConstraint(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateBox(context.Background(), &model.Box{
		ID: "g", OwnerID: "alice", Name: "Broken goal", IsGoal: true, CreatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestBoxes_ListAndArchive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	seedBox(t, s, "b", "alice")
	seedBox(t, s, "a", "alice")
	seedBox(t, s, "x", "bob")

	boxes, err := s.ListBoxes(ctx, "alice", BoxFilter{})
	require.NoError(t, err)
	require.Len(t, boxes, 2)
	assert.Equal(t, "a", boxes[0].ID)

	require.NoError(t, s.ArchiveBox(ctx, "alice", "a"))
	assert.ErrorIs(t, s.ArchiveBox(ctx, "alice", "a"), ErrRecordNotFound)

	boxes, err = s.ListBoxes(ctx, "alice", BoxFilter{})
	require.NoError(t, err)
	assert.Len(t, boxes, 1)

	boxes, err = s.ListBoxes(ctx, "alice", BoxFilter{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, boxes, 2)
}

func TestAdjustBalanceAndLedgerSum(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedBox(t, s, "b", "alice")

	for i, tx := range []*model.Transaction{
		{ID: "t1", BoxID: "b", Amount: 300, Type: model.TxIncome, Description: "pay"},
		{ID: "t2", BoxID: "b", Amount: 120, Type: model.TxExpense, Description: "food"},
	} {
		tx.Date = time.Unix(int64(1_700_000_000+i*86_400), 0)
		tx.CreatedAt = tx.Date
		require.NoError(t, s.CreateTransaction(ctx, tx))
	}

	sum, err := s.LedgerSum(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(180), sum)

	require.NoError(t, s.AdjustBalance(ctx, "b", 180))
	box, err := s.GetBox(ctx, "alice", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(180), box.Balance)

	assert.ErrorIs(t, s.AdjustBalance(ctx, "missing", 1), ErrRecordNotFound)
}

func TestTransactions_ListFiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedBox(t, s, "b1", "alice")
	seedBox(t, s, "b2", "alice")
	seedBox(t, s, "x", "bob")

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	add := func(id, box string, days int, typ model.TxType, amount int64) {
		tx := &model.Transaction{
			ID: id, BoxID: box, Amount: amount, Type: typ, Description: id,
			Date: base.AddDate(0, 0, days), CreatedAt: base,
		}
		require.NoError(t, s.CreateTransaction(ctx, tx))
	}
	add("t1", "b1", 0, model.TxIncome, 1_000)
	add("t2", "b1", 5, model.TxExpense, 200)
	add("t3", "b2", 10, model.TxIncome, 50)
	add("t4", "x", 3, model.TxIncome, 9_999)

	txs, err := s.ListTransactions(ctx, "alice", TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, []string{"t3", "t2", "t1"}, []string{txs[0].ID, txs[1].ID, txs[2].ID})
	assert.Equal(t, "Box b2", txs[0].BoxName)

	txs, err = s.ListTransactions(ctx, "alice", TransactionFilter{BoxID: "b1", Ascending: true})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "t1", txs[0].ID)

	txs, err = s.ListTransactions(ctx, "alice", TransactionFilter{Limit: 1, Skip: 1})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "t2", txs[0].ID)

	count, err := s.CountTransactions(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	income, err := s.SumTransactions(ctx, "alice", model.TxIncome, base, base.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, int64(1_000), income)

	_, err = s.GetTransaction(ctx, "bob", "t1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestTransactions_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedBox(t, s, "b1", "alice")
	seedBox(t, s, "b2", "alice")

	tx := &model.Transaction{
		ID: "t", BoxID: "b1", Amount: 10, Type: model.TxIncome, Description: "x",
		Date: time.Unix(1_700_000_000, 0), CreatedAt: time.Unix(1_700_000_000, 0),
	}
	require.NoError(t, s.CreateTransaction(ctx, tx))

	tx.BoxID = "b2"
	tx.Amount = 25
	tx.Type = model.TxExpense
	require.NoError(t, s.UpdateTransaction(ctx, tx))

	got, err := s.GetTransaction(ctx, "alice", "t")
	require.NoError(t, err)
	assert.Equal(t, "b2", got.BoxID)
	assert.Equal(t, int64(25), got.Amount)
	assert.Equal(t, model.TxExpense, got.Type)

	require.NoError(t, s.DeleteTransaction(ctx, "t"))
	assert.ErrorIs(t, s.DeleteTransaction(ctx, "t"), ErrRecordNotFound)
}

func TestTemplates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedBox(t, s, "b", "alice")

	tpl := &model.Template{
		ID: "p", OwnerID: "alice", BoxID: "b", Name: "Rent", Amount: 900,
		Type: model.TxExpense, Description: "Monthly rent", CreatedAt: time.Unix(1_700_000_000, 0),
	}
	require.NoError(t, s.CreateTemplate(ctx, tpl))

	got, err := s.GetTemplate(ctx, "alice", "p")
	require.NoError(t, err)
	assert.Equal(t, "Box b", got.BoxName)

	list, err := s.ListTemplates(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, s.DeleteTemplate(ctx, "bob", "p"), ErrRecordNotFound)
	require.NoError(t, s.DeleteTemplate(ctx, "alice", "p"))
}

func TestExecTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedBox(t, s, "b", "alice")

	boom := errors.New("boom")
	err := s.ExecTx(ctx, func(repo Repository) error {
		require.NoError(t, repo.AdjustBalance(ctx, "b", 500))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	box, err := s.GetBox(ctx, "alice", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(0), box.Balance)
}

func TestExecTx_CommitsAndRejectsNesting(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedBox(t, s, "b", "alice")

	err := s.ExecTx(ctx, func(repo Repository) error {
		if err := repo.AdjustBalance(ctx, "b", 42); err != nil {
			return err
		}
		return repo.ExecTx(ctx, func(Repository) error { return nil })
	})
	assert.ErrorIs(t, err, ErrTxInProgress)

	err = s.ExecTx(ctx, func(repo Repository) error {
		return repo.AdjustBalance(ctx, "b", 42)
	})
	require.NoError(t, err)

	box, err := s.GetBox(ctx, "alice", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(42), box.Balance)
}
