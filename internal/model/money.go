package model

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ConversionFailedCents marks a total that could not be summed across currencies.
const ConversionFailedCents = -1

// Money is the wire form of a monetary amount.
type Money struct {
	Cents            int64  `json:"cents"`
	Currency         string `json:"currency"`
	Amount           string `json:"amount"`
	ConversionFailed bool   `json:"conversion_failed,omitempty"`
}

func NewMoney(m *money.Money) Money {
	c := m.Currency()
	return Money{
		Cents:    m.Amount(),
		Currency: c.Code,
		Amount:   decimal.New(m.Amount(), -int32(c.Fraction)).StringFixed(int32(c.Fraction)),
	}
}

// NewTotalMoney is NewMoney for aggregate totals; it flags the sentinel.
func NewTotalMoney(m *money.Money) Money {
	out := NewMoney(m)
	out.ConversionFailed = m.Amount() == ConversionFailedCents
	return out
}
