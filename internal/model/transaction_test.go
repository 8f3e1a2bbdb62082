package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   TxnType
	}{
		{"2000.00", TypeIncome},
		{"0.01", TypeIncome},
		{"-50.00", TypeExpense},
		{"-0.01", TypeExpense},
		{"0", TypeNeutral},
		{"0.00", TypeNeutral},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.amount)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, ClassifyAmount(d), "amount %s", tt.amount)
	}
}
