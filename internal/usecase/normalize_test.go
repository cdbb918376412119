package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

func TestNormalizeNestedItemsJSON(t *testing.T) {
	orders := NormalizeOrders(raws(`{"nombreCliente":"Ana","itemsJson":"[{\"producto\":\"Pizza\",\"precio\":10,\"cantidad\":2}]"}`))
	require.Len(t, orders, 1)
	o := orders[0]

	assert.Equal(t, "1", o.ID)
	assert.Equal(t, "Ana", o.Nombre)
	assert.Equal(t, []domain.OrderLine{{Producto: "Pizza", Precio: 10, Cantidad: 2}}, o.Items)
	assert.Equal(t, domain.OrderStatusPending, o.Estado)
	assert.Nil(t, o.Total)
	assert.Equal(t, 20.0, o.EffectiveTotal())
}

func TestNormalizeMalformedItems(t *testing.T) {
	orders := NormalizeOrders(raws(
		`{"id":1,"items":"[{\"producto\":"}`,
		`{"id":2,"items":"{\"producto\":\"Pizza\"}"}`,
		`{"id":3,"items":42}`,
		`{"id":4}`,
	))
	require.Len(t, orders, 4)
	for _, o := range orders {
		assert.NotNil(t, o.Items)
		assert.Empty(t, o.Items, "pedido %s", o.ID)
	}
}

func TestNormalizeFieldFallbacks(t *testing.T) {
	orders := NormalizeOrders(raws(
		`{"id":"a","nombre":"Luis","nombreCliente":"otro","telefono":3001234567,"direccion":"Cra 1","Columna 1":"2024-05-01 10:00:00","fechaCreacion":"2020-01-01","estado":"ATENDIDO","total":"35.5"}`,
		`{"nombre":"","nombreCliente":"Eva","fechaCreacion":"2024-01-02","items":[{"nombre":"Jugo","precio":"3","cantidad":"2"}]}`,
		`{"fecha":"2024-06-01","estado":"cancelado","total":null}`,
	))
	require.Len(t, orders, 3)

	assert.Equal(t, "a", orders[0].ID)
	assert.Equal(t, "Luis", orders[0].Nombre)
	assert.Equal(t, "3001234567", orders[0].Telefono)
	require.NotNil(t, orders[0].Fecha)
	assert.Equal(t, "2024-05-01 10:00:00", *orders[0].Fecha)
	assert.Equal(t, domain.OrderStatusAttended, orders[0].Estado)
	require.NotNil(t, orders[0].Total)
	assert.Equal(t, 35.5, *orders[0].Total)

	assert.Equal(t, "2", orders[1].ID)
	assert.Equal(t, "Eva", orders[1].Nombre)
	assert.Equal(t, "2024-01-02", *orders[1].Fecha)
	assert.Equal(t, []domain.OrderLine{{Nombre: "Jugo", Precio: 3, Cantidad: 2}}, orders[1].Items)
	assert.Equal(t, 6.0, orders[1].EffectiveTotal())

	assert.Equal(t, "", orders[2].Nombre)
	assert.Equal(t, domain.OrderStatusCancelled, orders[2].Estado)
	assert.Nil(t, orders[2].Total)
}

func TestNormalizeMissingDateIsNil(t *testing.T) {
	o, ok := NormalizeOrder([]byte(`{"id":9}`), 0)
	require.True(t, ok)
	assert.Nil(t, o.Fecha)
}

func TestNormalizeSkipsNonObjects(t *testing.T) {
	orders := NormalizeOrders(raws(`"texto"`, `{"id":5}`, `[1,2]`))
	require.Len(t, orders, 1)
	assert.Equal(t, "5", orders[0].ID)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := raws(
		`{"nombreCliente":"Ana","itemsJson":"[{\"producto\":\"Pizza\",\"precio\":10,\"cantidad\":2}]"}`,
		`{"id":7,"nombre":"Luis","telefono":300,"items":[{"nombre":"Jugo","precio":3.5,"cantidad":1},{"producto":"Arepa","precio":"4","cantidad":3}],"Columna 1":"2024-05-01","estado":"atendido","total":12}`,
		`{"id":"x","items":"not json","estado":"ENVIADO"}`,
	)
	first := NormalizeOrders(inputs)

	again := make([]json.RawMessage, len(first))
	for i, o := range first {
		b, err := json.Marshal(o)
		require.NoError(t, err)
		again[i] = b
	}
	second := NormalizeOrders(again)
	assert.Equal(t, first, second)
}
