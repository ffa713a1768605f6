package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/caja/internal/config"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/store"
	"github.com/hance08/caja/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "alice"
	bob   = "bob"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "caja.db"), migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestService(t *testing.T, repo store.Repository) *Service {
	t.Helper()

	svc := NewService(repo, config.NewDefault(), nil)
	svc.SetClock(func() time.Time { return testNow })
	return svc
}

func setup(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	s := newTestStore(t)
	return newTestService(t, s), s
}

func mustBox(t *testing.T, svc *Service, owner string, in CreateBoxInput) *model.Box {
	t.Helper()

	box, err := svc.Box.CreateBox(context.Background(), owner, in)
	require.NoError(t, err)
	return box
}

func mustTx(t *testing.T, svc *Service, owner, boxID string, typ model.TxType, amount int64) *model.Transaction {
	t.Helper()

	tx, err := svc.Transaction.CreateTransaction(context.Background(), owner, CreateTransactionInput{
		BoxID: boxID, Type: typ, Amount: amount, Description: "test " + string(typ),
	})
	require.NoError(t, err)
	return tx
}

func balanceOf(t *testing.T, repo store.Repository, owner, boxID string) int64 {
	t.Helper()

	box, err := repo.GetBox(context.Background(), owner, boxID)
	require.NoError(t, err)
	return box.Balance
}

// assertConsistent checks stored balance against the transaction history.
func assertConsistent(t *testing.T, repo store.Repository, owner, boxID string) {
	t.Helper()

	sum, err := repo.LedgerSum(context.Background(), boxID)
	require.NoError(t, err)
	assert.Equal(t, sum, balanceOf(t, repo, owner, boxID), "balance drifted from history of %s", boxID)
}

// anyBox makes faultyRepo fail balance writes on every box.
const anyBox = "*"

// faultyRepo fails balance writes on failBox, inside or outside an atomic
// unit.
type faultyRepo struct {
	store.Repository
	failBox string
}

func (f *faultyRepo) AdjustBalance(ctx context.Context, boxID string, delta int64) error {
	if f.failBox == anyBox || boxID == f.failBox {
		return errors.New("disk I/O error")
	}
	return f.Repository.AdjustBalance(ctx, boxID, delta)
}

func (f *faultyRepo) ExecTx(ctx context.Context, fn func(store.Repository) error) error {
	return f.Repository.ExecTx(ctx, func(repo store.Repository) error {
		return fn(&faultyRepo{Repository: repo, failBox: f.failBox})
	})
}

// cancellingRepo cancels the caller's context right after the record write
// of a create or delete, before the matching balance write runs.
type cancellingRepo struct {
	store.Repository
	cancel context.CancelFunc
}

func (c *cancellingRepo) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	err := c.Repository.CreateTransaction(ctx, tx)
	c.cancel()
	return err
}

func (c *cancellingRepo) DeleteTransaction(ctx context.Context, id string) error {
	err := c.Repository.DeleteTransaction(ctx, id)
	c.cancel()
	return err
}

func (c *cancellingRepo) ExecTx(ctx context.Context, fn func(store.Repository) error) error {
	return c.Repository.ExecTx(ctx, func(repo store.Repository) error {
		return fn(&cancellingRepo{Repository: repo, cancel: c.cancel})
	})
}

func ptr[T any](v T) *T {
	return &v
}
