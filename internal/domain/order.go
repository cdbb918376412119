package domain

import (
	"encoding/json"
	"strings"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDIENTE"
	OrderStatusAttended  OrderStatus = "ATENDIDO"
	OrderStatusCancelled OrderStatus = "CANCELADO"
)

// ParseOrderStatus acepta el estado en cualquier capitalización; vacío equivale a PENDIENTE.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	v := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch v {
	case "":
		return OrderStatusPending, true
	case OrderStatusPending, OrderStatusAttended, OrderStatusCancelled:
		return v, true
	}
	return OrderStatus(strings.TrimSpace(s)), false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusAttended || s == OrderStatusCancelled
}

// CanTransition indica si un pedido en estado s puede pasar a next. Sólo PENDIENTE
// tiene salidas y nada vuelve a PENDIENTE.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s != OrderStatusPending {
		return false
	}
	return next == OrderStatusAttended || next == OrderStatusCancelled
}

// Order es el pedido que envía el cliente en el checkout; los items viajan como string JSON.
type Order struct {
	CustomerName    string
	Phone           string
	Address         string
	SerializedItems string
	Total           float64
}

func NewOrder(name, phone, address string, items []CartItem) (*Order, error) {
	if items == nil {
		items = []CartItem{}
	}
	buf, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return &Order{
		CustomerName:    strings.TrimSpace(name),
		Phone:           strings.TrimSpace(phone),
		Address:         strings.TrimSpace(address),
		SerializedItems: string(buf),
		Total:           CartTotal(items),
	}, nil
}

// OrderLine es un item del pedido en el panel. Las versiones viejas usan nombre en
// lugar de producto.
type OrderLine struct {
	Producto string  `json:"producto,omitempty"`
	Nombre   string  `json:"nombre,omitempty"`
	Precio   float64 `json:"precio"`
	Cantidad int     `json:"cantidad"`
}

func (l OrderLine) Name() string {
	if l.Nombre != "" {
		return l.Nombre
	}
	if l.Producto != "" {
		return l.Producto
	}
	return "Producto"
}

func (l OrderLine) Subtotal() float64 { return l.Precio * float64(l.Cantidad) }

// AdminOrder es un pedido normalizado. Los nombres JSON coinciden con las claves
// crudas, así un AdminOrder serializado se normaliza en sí mismo.
type AdminOrder struct {
	ID        string      `json:"id"`
	Nombre    string      `json:"nombre"`
	Telefono  string      `json:"telefono"`
	Direccion string      `json:"direccion"`
	Items     []OrderLine `json:"items"`
	Fecha     *string     `json:"fecha"`
	Estado    OrderStatus `json:"estado"`
	Total     *float64    `json:"total,omitempty"`
}

// EffectiveTotal usa el total del servidor si viene, si no suma las líneas.
func (o AdminOrder) EffectiveTotal() float64 {
	if o.Total != nil {
		return *o.Total
	}
	sum := 0.0
	for _, it := range o.Items {
		sum += it.Subtotal()
	}
	return sum
}

func (o AdminOrder) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Cantidad
	}
	return n
}

type OrderFilter struct {
	Query  string
	Status OrderStatus
}

type OrderStats struct {
	Total     int
	Pending   int
	Attended  int
	Cancelled int
}
