package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

var symbolUnits = map[string]currency.Unit{
	"$": currency.USD,
	"€": currency.EUR,
	"£": currency.GBP,
	"¥": currency.JPY,
}

// ParseMoney reads a display price such as "$10.99".
// Unparseable amounts yield zero instead of an error.
func ParseMoney(s string, fallback currency.Unit) Money {
	s = strings.TrimSpace(s)

	unit := fallback
	for symbol, u := range symbolUnits {
		if rest, ok := strings.CutPrefix(s, symbol); ok {
			unit = u
			s = strings.TrimSpace(rest)
			break
		}
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		amount = decimal.Zero
	}

	return Money{Amount: amount, Currency: unit}
}

func (m Money) Mul(quantity int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(quantity))),
		Currency: m.Currency,
	}
}

func (m Money) Symbol() string {
	for symbol, u := range symbolUnits {
		if u == m.Currency {
			return symbol
		}
	}
	return m.Currency.String() + " "
}

// StringFixed renders the amount rounded to two places, without the symbol.
func (m Money) StringFixed() string {
	return m.Amount.StringFixed(2)
}

func (m Money) String() string {
	return m.Symbol() + m.StringFixed()
}
