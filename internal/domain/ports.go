package domain

import (
	"context"
	"encoding/json"
)

// KVStore es el almacenamiento local donde el cliente guarda carrito y sesión.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// KeyLister lo implementan los almacenes que pueden enumerar sus claves.
type KeyLister interface {
	Keys(ctx context.Context) ([]string, error)
}

type Catalog interface {
	Name() string
	Products(ctx context.Context) ([]Product, error)
}

type OrderSubmitter interface {
	CreateOrder(ctx context.Context, o *Order, token string) (string, error)
}

// OrderSource entrega pedidos crudos; el panel de administración los normaliza.
type OrderSource interface {
	Name() string
	FetchOrders(ctx context.Context, token string) ([]json.RawMessage, error)
}

// TokenSource es una OrderSource protegida: un token vencido se informa como
// ErrSessionExpired.
type TokenSource interface {
	OrderSource
	RequiresToken() bool
}

type OrderStatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, id string, status OrderStatus, token string) error
}

type Authenticator interface {
	Login(ctx context.Context, c Credentials) (*Session, error)
	Register(ctx context.Context, c Credentials) error
	// ValidateToken consulta un endpoint protegido; ErrSessionExpired si lo rechaza.
	ValidateToken(ctx context.Context, token string) error
}
