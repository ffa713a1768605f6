package views

import (
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/ui"
	"github.com/hance08/caja/internal/utils"
)

const shortIDLen = 8

// ShortID is the id prefix shown in tables; commands accept the full id.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// signedAmount renders the balance effect of tx, colored by type.
func signedAmount(tx *model.Transaction, symbol string) string {
	delta := tx.Amount
	if tx.Type == model.TxExpense {
		delta = -delta
	}
	return ui.TypeColor(tx.Type, utils.FormatSigned(symbol, delta))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
