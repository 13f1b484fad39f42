package view

import (
	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// Subtotal is quantity times unit price, rounded to cents.
func Subtotal(item domain.CartItem) decimal.Decimal {
	return item.Price.Mul(item.Quantity).Amount.Round(2)
}

// GrandTotal sums the unrounded line amounts and rounds once.
func GrandTotal(items []domain.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(item.Quantity).Amount)
	}
	return total.Round(2)
}
