package usecase

import (
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

// SheetDateColumn es el encabezado que la planilla exportada le da a la fecha.
const SheetDateColumn = "Columna 1"

// NormalizeOrders lleva pedidos crudos de cualquier versión del backend a AdminOrder.
// Los registros que no son objetos JSON se descartan con un warning.
func NormalizeOrders(records []json.RawMessage) []domain.AdminOrder {
	out := make([]domain.AdminOrder, 0, len(records))
	for i, raw := range records {
		o, ok := NormalizeOrder(raw, i)
		if !ok {
			log.Warn().Int("posicion", i).Msg("pedido no es un objeto, se omite")
			continue
		}
		out = append(out, o)
	}
	return out
}

// NormalizeOrder resuelve un registro. index es su posición en la respuesta y se
// usa como id cuando falta.
func NormalizeOrder(raw []byte, index int) (domain.AdminOrder, bool) {
	r, ok := domain.ParseRawRecord(raw)
	if !ok {
		return domain.AdminOrder{}, false
	}
	o := domain.AdminOrder{
		ID:        r.String("id"),
		Nombre:    r.String("nombre", "nombreCliente"),
		Telefono:  r.String("telefono"),
		Direccion: r.String("direccion"),
		Items:     normalizeItems(r),
	}
	if o.ID == "" {
		o.ID = strconv.Itoa(index + 1)
	}
	if f := r.String("fecha", SheetDateColumn, "fechaCreacion"); f != "" {
		o.Fecha = &f
	}
	o.Estado, _ = domain.ParseOrderStatus(r.String("estado"))
	if t, ok := r.Float("total"); ok {
		o.Total = &t
	}
	return o, true
}

func normalizeItems(r domain.RawRecord) []domain.OrderLine {
	lines := []domain.OrderLine{}
	raw, found := r.Raw("items", "itemsJson")
	if !found {
		return lines
	}
	// itemsJson viene como string con el JSON adentro
	var s string
	if json.Unmarshal(raw, &s) == nil {
		if err := json.Unmarshal([]byte(s), &raw); err != nil {
			log.Warn().Err(err).Str("id", r.String("id")).Msg("no se pudieron leer los items del pedido")
			return lines
		}
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return lines
	}
	for _, e := range elems {
		it, ok := domain.ParseRawRecord(e)
		if !ok {
			continue
		}
		l := domain.OrderLine{
			Producto: it.String("producto"),
			Nombre:   it.String("nombre"),
		}
		l.Precio, _ = it.Float("precio", "precioUnitario")
		l.Cantidad, _ = it.Int("cantidad")
		lines = append(lines, l)
	}
	return lines
}
