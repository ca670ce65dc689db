package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Warrick-api/pkg/money"
)

func TestSymbol(t *testing.T) {
	assert.Equal(t, "৳", money.Symbol("BDT"))
	assert.Equal(t, "$", money.Symbol("USD"))
	assert.Equal(t, "EUR", money.Symbol("EUR"))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"270", "270.00"},
		{"1234.5", "1,234.50"},
		{"1234567.891", "1,234,567.89"},
		{"-1500", "-1,500.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, money.Format(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "৳ 220.00", money.Amount("BDT", decimal.NewFromInt(220)))
}
