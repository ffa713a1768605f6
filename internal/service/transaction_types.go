package service

import (
	"time"

	"github.com/hance08/caja/internal/model"
)

// CreateTransactionInput is a new transaction as submitted by the caller.
type CreateTransactionInput struct {
	BoxID       string
	Type        model.TxType
	Amount      int64
	Description string
	Date        time.Time // zero means now

	// SaveAsTemplate stores the same shape as a template in the same atomic unit.
	SaveAsTemplate bool
	TemplateName   string
}

// UpdateTransactionInput replaces every editable field of a transaction.
type UpdateTransactionInput struct {
	Type        model.TxType
	Amount      int64
	Description string
	Date        time.Time // zero keeps the current date
	BoxID       string    // empty keeps the current box
}

type ListTransactionsInput struct {
	BoxID string
	Limit int
	Skip  int
}

// TemplateUse carries per-use overrides when instantiating a template.
// Zero values keep the template's own fields.
type TemplateUse struct {
	Date        time.Time
	Amount      int64
	Description string
}
