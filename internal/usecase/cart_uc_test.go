package usecase

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanquiga/frontendfinal/internal/adapters/storage/memory"
	"github.com/juanquiga/frontendfinal/internal/domain"
)

func newCart() (*CartUC, *memory.Store) {
	st := memory.New()
	return &CartUC{Store: st}, st
}

func TestCartAddSameNameIncrements(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart()

	_, err := cart.Add(ctx, "Pizza", 10)
	require.NoError(t, err)
	items, err := cart.Add(ctx, "Pizza", 10)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartDecrementRemovesLastUnit(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart()
	_, _ = cart.Add(ctx, "Pizza", 10)
	_, _ = cart.Add(ctx, "Jugo", 3)

	items, err := cart.Decrement(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Jugo", items[0].Product)
}

func TestCartSetQuantityClamps(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart()
	_, _ = cart.Add(ctx, "Pizza", 10)

	for in, want := range map[string]int{"abc": 1, "0": 1, "-4": 1, "": 1, "5": 5, "3x": 3, " 7 ": 7} {
		items, err := cart.SetQuantity(ctx, 0, in)
		require.NoError(t, err)
		assert.Equal(t, want, items[0].Quantity, "input %q", in)
	}
}

func TestCartOutOfRangeIsNoop(t *testing.T) {
	ctx := context.Background()
	cart, st := newCart()
	_, _ = cart.Add(ctx, "Pizza", 10)
	before, _, _ := st.Get(ctx, domain.KeyCart)

	for _, idx := range []int{-1, 1, 9} {
		_, err := cart.Increment(ctx, idx)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		_, err = cart.Decrement(ctx, idx)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	}
	after, _, _ := st.Get(ctx, domain.KeyCart)
	assert.Equal(t, before, after)
}

func TestCartCorruptStorageLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	cart, st := newCart()
	require.NoError(t, st.Set(ctx, domain.KeyCart, "{no es json"))

	items, err := cart.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = cart.Add(ctx, "Pizza", 10)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartPersistsWireFormat(t *testing.T) {
	ctx := context.Background()
	cart, st := newCart()
	_, _ = cart.Add(ctx, "Pizza", 10)

	raw, ok, _ := st.Get(ctx, domain.KeyCart)
	require.True(t, ok)
	assert.JSONEq(t, `[{"producto":"Pizza","precio":10,"cantidad":1}]`, raw)

	require.NoError(t, cart.Clear(ctx))
	_, ok, _ = st.Get(ctx, domain.KeyCart)
	assert.False(t, ok)
}

// Random add/increment/decrement sequences keep the stored total equal to the sum of
// line subtotals, never leave a line under quantity 1 and never duplicate a name.
func TestCartRandomSequencesKeepInvariants(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))
	names := []string{"Pizza", "Jugo", "Arepa", "Empanada"}
	prices := map[string]float64{"Pizza": 12.5, "Jugo": 3, "Arepa": 4.25, "Empanada": 2}

	for run := 0; run < 50; run++ {
		cart, _ := newCart()
		for step := 0; step < 40; step++ {
			items, _ := cart.Items(ctx)
			switch op := rng.Intn(3); {
			case op == 0 || len(items) == 0:
				n := names[rng.Intn(len(names))]
				_, err := cart.Add(ctx, n, prices[n])
				require.NoError(t, err)
			case op == 1:
				_, err := cart.Increment(ctx, rng.Intn(len(items)))
				require.NoError(t, err)
			default:
				idx := rng.Intn(len(items))
				removes := items[idx].Quantity == 1
				after, err := cart.Decrement(ctx, idx)
				require.NoError(t, err)
				if removes {
					assert.Len(t, after, len(items)-1)
				}
			}

			items, err := cart.Items(ctx)
			require.NoError(t, err)
			seen := map[string]bool{}
			want := 0.0
			for _, it := range items {
				assert.GreaterOrEqual(t, it.Quantity, 1)
				assert.False(t, seen[it.Product], "duplicado %s", it.Product)
				seen[it.Product] = true
				want += prices[it.Product] * float64(it.Quantity)
			}
			got, err := cart.Total(ctx)
			require.NoError(t, err)
			assert.True(t, math.Abs(got-want) < 1e-9, "total %v != %v", got, want)
		}
	}
}
