package model

import (
	"fmt"
	"strings"
	"time"
)

type TxType string

const (
	TxIncome  TxType = "INCOME"
	TxExpense TxType = "EXPENSE"
)

func (t TxType) Valid() bool {
	return t == TxIncome || t == TxExpense
}

// Label is the display form used by views and prompts.
func (t TxType) Label() string {
	switch t {
	case TxIncome:
		return "Income"
	case TxExpense:
		return "Expense"
	default:
		return string(t)
	}
}

// ParseTxType accepts "income"/"expense" in any case.
func ParseTxType(s string) (TxType, error) {
	t := TxType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown transaction type %q (must be income or expense)", s)
	}
	return t, nil
}

type Transaction struct {
	ID          string
	BoxID       string
	Amount      int64
	Type        TxType
	Description string
	Date        time.Time
	CreatedAt   time.Time

	// BoxName is filled by listing queries that join the owning box.
	BoxName string
}

// Template is a saved transaction shape ("favorite") reused when recording
// new transactions. It has no balance effect of its own.
type Template struct {
	ID          string
	OwnerID     string
	BoxID       string
	Name        string
	Amount      int64
	Type        TxType
	Description string
	CreatedAt   time.Time

	BoxName string
}
