package port

import (
	"github.com/nikolayk812/cartstate-demo/internal/domain"
)

type CartStore interface {
	Dispatch(intent domain.Intent) domain.Cart
	// DispatchFunc derives the intent from the state it will be applied to.
	DispatchFunc(fn func(current domain.Cart) domain.Intent) domain.Cart
	Items() []domain.CartItem
	TotalItems() int
}

// Notifier presents a user-visible notice.
type Notifier interface {
	Notify(message string)
}
