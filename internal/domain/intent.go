package domain

// Intent is a named request to transform cart state.
type Intent interface {
	Kind() string
}

type AddItem struct {
	Product Product
}

type RemoveItem struct {
	Name string
}

// UpdateQuantity overwrites the quantity verbatim, including values <= 0.
type UpdateQuantity struct {
	Name     string
	Quantity int
}

func (AddItem) Kind() string        { return "add_item" }
func (RemoveItem) Kind() string     { return "remove_item" }
func (UpdateQuantity) Kind() string { return "update_quantity" }
