package store

import (
	"time"

	"github.com/nikolayk812/cartstate-demo/internal/domain"
)

// Reduce returns the cart produced by applying intent to cart.
// The input cart is never modified.
func Reduce(cart domain.Cart, intent domain.Intent, now time.Time) domain.Cart {
	switch in := intent.(type) {
	case domain.AddItem:
		return addItem(cart, in, now)
	case domain.RemoveItem:
		return removeItem(cart, in)
	case domain.UpdateQuantity:
		return updateQuantity(cart, in)
	default:
		return cart
	}
}

// Known reports whether Reduce has a transition for intent.
func Known(intent domain.Intent) bool {
	switch intent.(type) {
	case domain.AddItem, domain.RemoveItem, domain.UpdateQuantity:
		return true
	default:
		return false
	}
}

func addItem(cart domain.Cart, in domain.AddItem, now time.Time) domain.Cart {
	next := cart.Clone()

	if i := indexOf(next.Items, in.Product.Name); i >= 0 {
		next.Items[i].Quantity++
		return next
	}

	next.Items = append(next.Items, domain.CartItem{
		Name:        in.Product.Name,
		Image:       in.Product.Image,
		Description: in.Product.Description,
		Price:       in.Product.Price,
		Quantity:    1,
		AddedAt:     now,
	})

	return next
}

func removeItem(cart domain.Cart, in domain.RemoveItem) domain.Cart {
	if indexOf(cart.Items, in.Name) < 0 {
		return cart
	}

	var next domain.Cart
	for _, item := range cart.Items {
		if item.Name != in.Name {
			next.Items = append(next.Items, item)
		}
	}

	return next
}

func updateQuantity(cart domain.Cart, in domain.UpdateQuantity) domain.Cart {
	i := indexOf(cart.Items, in.Name)
	if i < 0 {
		return cart
	}

	next := cart.Clone()
	next.Items[i].Quantity = in.Quantity

	return next
}

func indexOf(items []domain.CartItem, name string) int {
	for i, item := range items {
		if item.Name == name {
			return i
		}
	}
	return -1
}
