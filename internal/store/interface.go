package store

import (
	"context"
	"time"

	"github.com/hance08/caja/internal/model"
)

type BoxFilter struct {
	IncludeArchived bool
	GoalsOnly       bool
}

// TransactionFilter narrows ListTransactions. Zero values mean "no bound".
type TransactionFilter struct {
	BoxID     string
	From      time.Time
	To        time.Time
	Limit     int
	Skip      int
	Ascending bool
}

type BoxRepository interface {
	CreateBox(ctx context.Context, box *model.Box) error
	GetBox(ctx context.Context, ownerID, id string) (*model.Box, error)
	ListBoxes(ctx context.Context, ownerID string, filter BoxFilter) ([]*model.Box, error)
	UpdateBox(ctx context.Context, box *model.Box) error
	ArchiveBox(ctx context.Context, ownerID, id string) error

	// AdjustBalance increments the stored balance by delta. It is the only
	// write path to boxes.balance.
	AdjustBalance(ctx context.Context, boxID string, delta int64) error
	LedgerSum(ctx context.Context, boxID string) (int64, error)
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *model.Transaction) error
	GetTransaction(ctx context.Context, ownerID, id string) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *model.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactions(ctx context.Context, ownerID string, filter TransactionFilter) ([]*model.Transaction, error)
	CountTransactions(ctx context.Context, ownerID string) (int, error)
	SumTransactions(ctx context.Context, ownerID string, txType model.TxType, from, to time.Time) (int64, error)
}

type TemplateRepository interface {
	CreateTemplate(ctx context.Context, tpl *model.Template) error
	GetTemplate(ctx context.Context, ownerID, id string) (*model.Template, error)
	ListTemplates(ctx context.Context, ownerID string) ([]*model.Template, error)
	DeleteTemplate(ctx context.Context, ownerID, id string) error
}

type Repository interface {
	BoxRepository
	TransactionRepository
	TemplateRepository

	// ExecTx runs fn inside one atomic unit. The Repository handed to fn is
	// bound to the unit; returning an error rolls everything back.
	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}
