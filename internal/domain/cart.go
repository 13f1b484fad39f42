package domain

import (
	"time"
)

type Cart struct {
	Items []CartItem
}

// Product is the payload of an add intent.
type Product struct {
	Name        string
	Image       string
	Description string
	Price       Money
}

type CartItem struct {
	Name        string
	Image       string
	Description string
	Price       Money
	Quantity    int

	AddedAt time.Time
}

func (c Cart) Find(name string) (CartItem, bool) {
	for _, item := range c.Items {
		if item.Name == name {
			return item, true
		}
	}
	return CartItem{}, false
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems sums quantities across all items.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Clone returns a cart whose items slice does not alias c.
func (c Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
