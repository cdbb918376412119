package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

const ordersSheet = "Pedidos"

var exportHeader = []string{"id", "fecha", "nombre", "telefono", "direccion", "items", "estado", "total"}

// WriteOrders exporta los pedidos a una planilla. Los items se escriben como JSON para
// que la planilla pueda leerse de nuevo como fuente.
func WriteOrders(w io.Writer, orders []domain.AdminOrder) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return err
	}
	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &header); err != nil {
		return err
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(ordersSheet, 1, 1, style)
	}
	_ = f.SetColWidth(ordersSheet, "A", "H", 18)

	for i, o := range orders {
		items, err := json.Marshal(o.Items)
		if err != nil {
			return err
		}
		fecha := ""
		if o.Fecha != nil {
			fecha = *o.Fecha
		}
		var total interface{} = ""
		if o.Total != nil {
			total = *o.Total
		}
		row := []interface{}{o.ID, fecha, o.Nombre, o.Telefono, o.Direccion, string(items), string(o.Estado), total}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ordersSheet, cell, &row); err != nil {
			return fmt.Errorf("fila %d: %w", i+2, err)
		}
	}
	return f.Write(w)
}

func SaveOrders(path string, orders []domain.AdminOrder) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOrders(out, orders); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Source lee pedidos de una planilla. La primera fila da los nombres de campo, así
// una columna de fecha llamada "Columna 1" se resuelve igual.
type Source struct {
	Path  string
	Sheet string
}

func NewSource(path string) *Source { return &Source{Path: path} }

func (s *Source) Name() string { return "xlsx:" + s.Path }

func (s *Source) FetchOrders(ctx context.Context, _ string) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	in, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return ReadOrders(in, s.Sheet)
}

// ReadOrders convierte cada fila en un objeto JSON con las claves del encabezado. Las
// celdas vacías se omiten como si el campo faltara.
func ReadOrders(r io.Reader, sheet string) ([]json.RawMessage, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abriendo planilla: %w", err)
	}
	defer f.Close()
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return []json.RawMessage{}, nil
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []json.RawMessage{}, nil
	}
	header := rows[0]
	out := make([]json.RawMessage, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec := map[string]string{}
		for c, val := range row {
			if c >= len(header) {
				break
			}
			key := header[c]
			if strings.TrimSpace(key) == "" || strings.TrimSpace(val) == "" {
				continue
			}
			rec[key] = val
		}
		if len(rec) == 0 {
			continue
		}
		b, err := json.Marshal(rec)
		if err != nil {
			log.Warn().Err(err).Str("fila", strconv.Itoa(i+2)).Msg("fila ilegible")
			continue
		}
		out = append(out, b)
	}
	return out, nil
}
