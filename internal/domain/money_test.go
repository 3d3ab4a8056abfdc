package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyAdd(t *testing.T) {
	tests := []struct {
		name     string
		a        Money
		b        Money
		expected float64
		hasError bool
	}{
		{
			name:     "Mesma moeda deve somar normalmente",
			a:        NewMoney(100, CurrencyBRL),
			b:        NewMoney(50, CurrencyBRL),
			expected: 150,
			hasError: false,
		},
		{
			name:     "Moedas diferentes devem ser recusadas",
			a:        NewMoney(100, CurrencyBRL),
			b:        NewMoney(50, CurrencyUSD),
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.a.Add(tt.b)

			if tt.hasError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrCurrencyMismatch)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result.Amount)
				assert.Equal(t, tt.a.Currency, result.Currency)
			}
		})
	}
}

func TestMoneySub(t *testing.T) {
	tests := []struct {
		name     string
		a        Money
		b        Money
		expected float64
		hasError bool
	}{
		{
			name:     "Mesma moeda deve subtrair normalmente",
			a:        NewMoney(100, CurrencyBRL),
			b:        NewMoney(150, CurrencyBRL),
			expected: -50,
			hasError: false,
		},
		{
			name:     "Moedas diferentes devem ser recusadas",
			a:        NewMoney(100, CurrencyEUR),
			b:        NewMoney(50, CurrencyUSD),
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.a.Sub(tt.b)

			if tt.hasError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrCurrencyMismatch)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result.Amount)
				assert.Equal(t, tt.a.Currency, result.Currency)
			}
		})
	}
}

func TestSumMoney(t *testing.T) {
	tests := []struct {
		name     string
		items    []Money
		currency Currency
		expected float64
		hasError bool
	}{
		{
			name:     "Lista vazia soma zero na moeda pedida",
			items:    []Money{},
			currency: CurrencyUSD,
			expected: 0,
		},
		{
			name: "Saldos homogêneos são somados",
			items: []Money{
				NewMoney(1000, CurrencyUSD),
				NewMoney(250, CurrencyUSD),
			},
			currency: CurrencyUSD,
			expected: 1250,
		},
		{
			name: "Qualquer item em moeda diferente recusa a soma",
			items: []Money{
				NewMoney(1000, CurrencyUSD),
				NewMoney(250, CurrencyEUR),
			},
			currency: CurrencyUSD,
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SumMoney(tt.items, tt.currency)

			if tt.hasError {
				assert.ErrorIs(t, err, ErrCurrencyMismatch)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result.Amount)
				assert.Equal(t, tt.currency, result.Currency)
			}
		})
	}
}

func TestDauGrowth(t *testing.T) {
	tests := []struct {
		name     string
		series   []*KpiSnapshot
		expected float64
	}{
		{
			name:     "Menos de dois snapshots não tem crescimento",
			series:   []*KpiSnapshot{{DAU: 100}},
			expected: 0,
		},
		{
			name: "Crescimento entre o mais antigo e o mais recente",
			series: []*KpiSnapshot{
				{DAU: 150}, // mais recente
				{DAU: 120},
				{DAU: 100}, // mais antigo
			},
			expected: 0.5,
		},
		{
			name: "Base zero não divide",
			series: []*KpiSnapshot{
				{DAU: 150},
				{DAU: 0},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DauGrowth(tt.series))
		})
	}
}
