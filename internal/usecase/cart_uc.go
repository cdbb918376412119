package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

// CartUC maneja el carrito guardado en la clave "carrito". Cada cambio reescribe la
// lista completa.
type CartUC struct {
	Store domain.KVStore
}

func (uc *CartUC) Items(ctx context.Context) ([]domain.CartItem, error) {
	raw, found, err := uc.Store.Get(ctx, domain.KeyCart)
	if err != nil {
		return nil, err
	}
	items := []domain.CartItem{}
	if !found || strings.TrimSpace(raw) == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Err(err).Msg("carrito guardado ilegible, se usa vacío")
		return []domain.CartItem{}, nil
	}
	clean := items[:0]
	for _, it := range items {
		if strings.TrimSpace(it.Product) == "" {
			continue
		}
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		clean = append(clean, it)
	}
	return clean, nil
}

func (uc *CartUC) save(ctx context.Context, items []domain.CartItem) error {
	buf, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return uc.Store.Set(ctx, domain.KeyCart, string(buf))
}

// Add suma uno a la línea del mismo producto o agrega una nueva.
func (uc *CartUC) Add(ctx context.Context, product string, price float64) ([]domain.CartItem, error) {
	product = strings.TrimSpace(product)
	if product == "" {
		return nil, domain.ErrMissingField
	}
	items, err := uc.Items(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range items {
		if items[i].Product == product {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.CartItem{Product: product, UnitPrice: price, Quantity: 1})
	}
	return items, uc.save(ctx, items)
}

func (uc *CartUC) mutate(ctx context.Context, index int, fn func(items []domain.CartItem) []domain.CartItem) ([]domain.CartItem, error) {
	items, err := uc.Items(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return items, domain.ErrItemNotFound
	}
	items = fn(items)
	return items, uc.save(ctx, items)
}

func (uc *CartUC) Increment(ctx context.Context, index int) ([]domain.CartItem, error) {
	return uc.mutate(ctx, index, func(items []domain.CartItem) []domain.CartItem {
		items[index].Quantity++
		return items
	})
}

// Decrement quita la línea en vez de dejar la cantidad por debajo de 1.
func (uc *CartUC) Decrement(ctx context.Context, index int) ([]domain.CartItem, error) {
	return uc.mutate(ctx, index, func(items []domain.CartItem) []domain.CartItem {
		if items[index].Quantity > 1 {
			items[index].Quantity--
			return items
		}
		return append(items[:index], items[index+1:]...)
	})
}

// SetQuantity fuerza a 1 una entrada no numérica o menor a 1. Lo que sigue a los
// dígitos iniciales se ignora ("3x" es 3).
func (uc *CartUC) SetQuantity(ctx context.Context, index int, raw string) ([]domain.CartItem, error) {
	q, ok := leadingInt(raw)
	if !ok || q < 1 {
		q = 1
	}
	return uc.mutate(ctx, index, func(items []domain.CartItem) []domain.CartItem {
		items[index].Quantity = q
		return items
	})
}

func (uc *CartUC) Remove(ctx context.Context, index int) ([]domain.CartItem, error) {
	return uc.mutate(ctx, index, func(items []domain.CartItem) []domain.CartItem {
		return append(items[:index], items[index+1:]...)
	})
}

func (uc *CartUC) Clear(ctx context.Context) error {
	return uc.Store.Delete(ctx, domain.KeyCart)
}

func (uc *CartUC) Total(ctx context.Context) (float64, error) {
	items, err := uc.Items(ctx)
	if err != nil {
		return 0, err
	}
	return domain.CartTotal(items), nil
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
