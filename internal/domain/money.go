package domain

import (
	"errors"
	"fmt"
)

// Currency é o código ISO-4217 que acompanha todo valor monetário.
// O motor de projeção nunca converte moedas.
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// ErrCurrencyMismatch indica uma tentativa de operar valores em moedas diferentes
var ErrCurrencyMismatch = errors.New("moedas diferentes não podem ser combinadas")

// IsValid verifica se a moeda tem um código de três letras
func (c Currency) IsValid() bool {
	return len(c) == 3
}

// Money representa um valor monetário com sua moeda explícita
type Money struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// NewMoney cria um valor monetário na moeda informada
func NewMoney(amount float64, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Add soma dois valores, recusando moedas diferentes
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s e %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Sub subtrai dois valores, recusando moedas diferentes
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s e %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// SumMoney soma uma lista de valores na moeda esperada, recusando qualquer
// item em moeda diferente
func SumMoney(items []Money, currency Currency) (Money, error) {
	total := Money{Amount: 0, Currency: currency}
	for _, item := range items {
		var err error
		total, err = total.Add(item)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
