package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

const (
	PathPublicMenu = "/public/menu"
	PathProducts   = "/productos"
)

// Catalog lee los productos de un endpoint.
type Catalog struct {
	c    *Client
	path string
}

func (c *Client) Catalog(path string) *Catalog { return &Catalog{c: c, path: path} }

func (m *Catalog) Name() string { return m.path }

func (m *Catalog) Products(ctx context.Context) ([]domain.Product, error) {
	status, body, err := m.c.do(ctx, http.MethodGet, m.path, nil, "")
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, apiError(status, body, "")
	}
	env, err := DecodeEnvelope(body, productShapes)
	if err != nil {
		return nil, err
	}
	if env.Shape == ShapeUnknown {
		log.Error().Str("path", m.path).Msg("el campo 'data' no es un array")
		return []domain.Product{}, nil
	}
	return DecodeProducts(env.Records), nil
}

// DecodeProducts mapea filas del catálogo, incluidas las de planilla con espacios al
// final del encabezado. Las filas sin nombre se omiten.
func DecodeProducts(records []json.RawMessage) []domain.Product {
	out := make([]domain.Product, 0, len(records))
	for i, raw := range records {
		r, ok := domain.ParseRawRecord(raw)
		if !ok {
			log.Warn().Int("fila", i).Msg("producto no es un objeto")
			continue
		}
		p := domain.Product{
			ID:          r.String("id"),
			Nombre:      r.String("Nombre ", "Nombre", "nombre"),
			Descripcion: r.String("Descripcion", "descripcion"),
			Imagen:      r.String("imagen", "imagenUrl"),
		}
		if p.Nombre == "" {
			log.Warn().Int("fila", i).Msg("producto sin nombre")
			continue
		}
		p.Precio, _ = r.Float("Precio ", "Precio", "precio")
		if strings.TrimSpace(p.Imagen) == "" {
			p.Imagen = domain.PlaceholderImage
		}
		out = append(out, p)
	}
	return out
}
