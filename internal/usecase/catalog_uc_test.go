package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanquiga/frontendfinal/internal/adapters/storage/memory"
	"github.com/juanquiga/frontendfinal/internal/domain"
)

func TestCatalogFallbackAndCache(t *testing.T) {
	ctx := context.Background()
	a := &fakeCatalog{name: "/public/menu", err: errors.New("503")}
	b := &fakeCatalog{name: "/productos", list: []domain.Product{{Nombre: "Pizza", Precio: 10}}}
	uc := NewCatalogUC(time.Minute, &CartUC{Store: memory.New()}, a, b)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)

	uc.Invalidate()
	_, _ = uc.List(ctx)
	assert.Equal(t, 2, b.calls)
}

func TestCatalogEmptySourcesNoError(t *testing.T) {
	uc := NewCatalogUC(time.Minute, nil, &fakeCatalog{name: "a"})
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalogAddToCart(t *testing.T) {
	ctx := context.Background()
	cart := &CartUC{Store: memory.New()}
	uc := NewCatalogUC(time.Minute, cart, &fakeCatalog{name: "menu", list: []domain.Product{{Nombre: "Pizza", Precio: 12000}}})

	p, err := uc.AddToCart(ctx, " pizza ")
	require.NoError(t, err)
	assert.Equal(t, "Pizza", p.Nombre)
	_, _ = uc.AddToCart(ctx, "PIZZA")

	items, _ := cart.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, domain.CartItem{Product: "Pizza", UnitPrice: 12000, Quantity: 2}, items[0])

	_, err = uc.AddToCart(ctx, "Sushi")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
