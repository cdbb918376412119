package domain

// CartItem es una línea del carrito; el nombre del producto la identifica.
type CartItem struct {
	Product   string  `json:"producto"`
	UnitPrice float64 `json:"precio"`
	Quantity  int     `json:"cantidad"`
}

func (c CartItem) Subtotal() float64 { return c.UnitPrice * float64(c.Quantity) }

func CartTotal(items []CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}
