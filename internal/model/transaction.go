package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType classifies a transaction by the sign of its amount.
type TxnType string

const (
	TypeIncome  TxnType = "income"
	TypeExpense TxnType = "expense"
	TypeNeutral TxnType = "neutral"
)

// Transaction represents a single parsed bank CSV row after categorization.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // positive = income, negative = expense
	Category    string
	Type        TxnType
}

// ClassifyAmount returns the TxnType for a signed amount: positive is
// income, negative is expense, zero is neutral.
func ClassifyAmount(amount decimal.Decimal) TxnType {
	switch amount.Sign() {
	case 1:
		return TypeIncome
	case -1:
		return TypeExpense
	default:
		return TypeNeutral
	}
}
