package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanquiga/frontendfinal/internal/adapters/backend"
	"github.com/juanquiga/frontendfinal/internal/adapters/storage/memory"
	"github.com/juanquiga/frontendfinal/internal/domain"
)

func TestPosition(t *testing.T) {
	i, err := position("3")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	for _, bad := range []string{"0", "-1", "dos", ""} {
		_, err := position(bad)
		assert.Error(t, err, bad)
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "El carrito está vacío.", userMessage(domain.ErrEmptyCart))
	assert.Equal(t, "Sesión expirada. Iniciá sesión nuevamente.",
		userMessage(fmt.Errorf("validando: %w", domain.ErrSessionExpired)))
	assert.Equal(t, "Usuario ya existe", userMessage(&backend.APIError{Status: 409, Message: "Usuario ya existe"}))
}

func TestConfirmerAssumeYes(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, confirmer(&buf, true)("¿Seguro?"))
	assert.Empty(t, buf.String())
}

func TestPrintCart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCart(&buf, nil))
	assert.Equal(t, "El carrito está vacío.\n", buf.String())

	buf.Reset()
	require.NoError(t, printCart(&buf, []domain.CartItem{
		{Product: "Pizza", UnitPrice: 12000, Quantity: 2},
		{Product: "Jugo", UnitPrice: 3500, Quantity: 1},
	}))
	out := buf.String()
	assert.Contains(t, out, "Pizza")
	assert.Contains(t, out, "$24.000 COP")
	assert.Contains(t, out, "Total: $27.500 COP")
}

func TestPrintOrders(t *testing.T) {
	total := 5.0
	orders := []domain.AdminOrder{
		{ID: "1", Nombre: "Ana", Estado: domain.OrderStatusPending, Items: []domain.OrderLine{{Producto: "Pizza", Precio: 10, Cantidad: 2}}},
		{ID: "2", Estado: domain.OrderStatusCancelled, Total: &total},
	}
	var buf bytes.Buffer
	require.NoError(t, printOrders(&buf, orders, orders[:1]))
	out := buf.String()
	assert.Contains(t, out, "Total: 2  Pendientes: 1  Atendidos: 0  Cancelados: 1")
	assert.Contains(t, out, "2 items (ver detalles)")
	assert.Contains(t, out, "$20.00")
	assert.NotContains(t, out, "#2")
}

func TestPrintOrderTableShowsUpdatedRow(t *testing.T) {
	var buf bytes.Buffer
	o := domain.AdminOrder{ID: "7", Nombre: "Eva", Estado: domain.OrderStatusAttended,
		Items: []domain.OrderLine{{Producto: "Arepa", Precio: 4, Cantidad: 1}}}
	require.NoError(t, printOrderTable(&buf, []domain.AdminOrder{o}))
	out := buf.String()
	assert.Contains(t, out, "#7")
	assert.Contains(t, out, "1 × Arepa")
	assert.Contains(t, out, "ATENDIDO")
	assert.NotContains(t, out, "Pendientes")
}

func TestPrintKeys(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	var buf bytes.Buffer
	require.NoError(t, printKeys(ctx, &buf, st))
	assert.Equal(t, "Almacenamiento local vacío.\n", buf.String())

	require.NoError(t, st.Set(ctx, domain.KeyToken, "t"))
	require.NoError(t, st.Set(ctx, domain.KeyCart, "[]"))
	buf.Reset()
	require.NoError(t, printKeys(ctx, &buf, st))
	assert.Equal(t, "Claves guardadas: carrito, token\n", buf.String())
}
