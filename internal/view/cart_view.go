package view

import (
	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"github.com/nikolayk812/cartstate-demo/internal/port"
	"golang.org/x/text/currency"
)

const (
	EmptyMessage   = "Your cart is empty. Add some items to get started!"
	CheckoutNotice = "Functionality to be added for future reference"
)

// View translates user gestures into store intents and derives
// the displayed totals from the current state.
type View struct {
	store      port.CartStore
	notifier   port.Notifier
	onContinue func()
	currency   currency.Unit
}

type Model struct {
	Empty        bool   `json:"empty"`
	EmptyMessage string `json:"empty_message,omitempty"`
	Lines        []Line `json:"lines"`
	Total        string `json:"total"`
	Currency     string `json:"currency"`
	TotalItems   int    `json:"total_items"`
}

type Line struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	Currency    string `json:"currency"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

// New builds a view. The currency symbol of the total falls back to USD
// until the first line item is present.
func New(s port.CartStore, notifier port.Notifier, onContinue func()) *View {
	return &View{
		store:      s,
		notifier:   notifier,
		onContinue: onContinue,
		currency:   currency.USD,
	}
}

// WithCurrency sets the currency displayed for an empty cart total.
func (v *View) WithCurrency(unit currency.Unit) *View {
	v.currency = unit
	return v
}

func (v *View) Model() Model {
	items := v.store.Items()

	total := domain.Money{Amount: GrandTotal(items), Currency: v.currency}
	if len(items) > 0 {
		total.Currency = items[0].Price.Currency
	}

	m := Model{
		Empty:      len(items) == 0,
		Total:      total.StringFixed(),
		Currency:   total.Symbol(),
		TotalItems: domain.Cart{Items: items}.TotalItems(),
	}

	if m.Empty {
		m.EmptyMessage = EmptyMessage
		return m
	}

	for _, item := range items {
		m.Lines = append(m.Lines, Line{
			Name:        item.Name,
			Image:       item.Image,
			Description: item.Description,
			Currency:    item.Price.Symbol(),
			UnitPrice:   item.Price.String(),
			Quantity:    item.Quantity,
			Subtotal:    Subtotal(item).StringFixed(2),
		})
	}

	return m
}

func (v *View) Increment(name string) {
	v.store.DispatchFunc(func(current domain.Cart) domain.Intent {
		item, ok := current.Find(name)
		if !ok {
			return nil
		}

		return domain.UpdateQuantity{Name: name, Quantity: item.Quantity + 1}
	})
}

// Decrement removes the item instead of storing a zero quantity.
func (v *View) Decrement(name string) {
	v.store.DispatchFunc(func(current domain.Cart) domain.Intent {
		item, ok := current.Find(name)
		if !ok {
			return nil
		}

		if item.Quantity > 1 {
			return domain.UpdateQuantity{Name: name, Quantity: item.Quantity - 1}
		}

		return domain.RemoveItem{Name: name}
	})
}

func (v *View) Delete(name string) {
	v.store.Dispatch(domain.RemoveItem{Name: name})
}

func (v *View) ContinueShopping() {
	if v.onContinue != nil {
		v.onContinue()
	}
}

// Checkout is not implemented yet; it only tells the user so.
func (v *View) Checkout() {
	if v.notifier != nil {
		v.notifier.Notify(CheckoutNotice)
	}
}
