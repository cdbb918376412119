package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

const (
	PathOrders       = "/pedidos"
	PathPublicOrders = "/public/pedidos"
)

type legacyOrderPayload struct {
	NombreCliente string  `json:"nombreCliente"`
	Telefono      string  `json:"telefono"`
	Direccion     string  `json:"direccion"`
	ItemsJSON     string  `json:"itemsJson"`
	Total         float64 `json:"total"`
}

type publicOrderPayload struct {
	Nombre    string  `json:"nombre"`
	Telefono  string  `json:"telefono"`
	Direccion string  `json:"direccion"`
	Items     string  `json:"items"`
	Total     float64 `json:"total"`
}

func (c *Client) orderPayload(o *domain.Order) any {
	if c.style == FieldStylePublic {
		return publicOrderPayload{Nombre: o.CustomerName, Telefono: o.Phone, Direccion: o.Address, Items: o.SerializedItems, Total: o.Total}
	}
	return legacyOrderPayload{NombreCliente: o.CustomerName, Telefono: o.Phone, Direccion: o.Address, ItemsJSON: o.SerializedItems, Total: o.Total}
}

// CreateOrder usa el endpoint autenticado si hay token y el público si no. Devuelve
// el id asignado por el servidor, si lo envía.
func (c *Client) CreateOrder(ctx context.Context, o *domain.Order, token string) (string, error) {
	if o == nil {
		return "", errors.New("orden nil")
	}
	path := PathPublicOrders
	if token != "" {
		path = PathOrders
	}
	status, body, err := c.do(ctx, http.MethodPost, path, c.orderPayload(o), token)
	if err != nil {
		return "", err
	}
	if !ok(status) {
		log.Error().Int("status", status).Str("body", string(body)).Msg("error creando pedido")
		return "", apiError(status, body, "Error creando pedido")
	}
	return createdID(body), nil
}

func createdID(body []byte) string {
	r, ok := domain.ParseRawRecord(body)
	if !ok {
		return ""
	}
	if id := r.String("id"); id != "" {
		return id
	}
	if raw, found := r.Raw("data"); found {
		if d, ok := domain.ParseRawRecord(raw); ok {
			return d.String("id")
		}
	}
	return ""
}

// OrderSource lista pedidos de un endpoint.
type OrderSource struct {
	c    *Client
	name string
	path string
	auth bool
}

func (c *Client) AuthenticatedOrders() *OrderSource {
	return &OrderSource{c: c, name: "auth", path: PathOrders, auth: true}
}

func (c *Client) PublicOrders() *OrderSource {
	return &OrderSource{c: c, name: "public", path: PathPublicOrders}
}

func (s *OrderSource) Name() string { return s.name }

func (s *OrderSource) RequiresToken() bool { return s.auth }

func (s *OrderSource) FetchOrders(ctx context.Context, token string) ([]json.RawMessage, error) {
	if !s.auth {
		token = ""
	} else if token == "" {
		return nil, domain.ErrNotLoggedIn
	}
	status, body, err := s.c.do(ctx, http.MethodGet, s.path, nil, token)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, apiError(status, body, "")
	}
	env, err := DecodeEnvelope(body, orderShapes)
	if err != nil {
		return nil, err
	}
	if env.Shape == ShapeUnknown {
		log.Error().Str("source", s.name).Str("body", truncate(string(body), 200)).Msg("formato de respuesta inesperado")
		return []json.RawMessage{}, nil
	}
	log.Debug().Str("source", s.name).Str("shape", env.Describe()).Msg("pedidos recibidos")
	return env.Records, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, st domain.OrderStatus, token string) error {
	if id == "" {
		return errors.New("id de pedido vacío")
	}
	path := PathOrders + "/" + url.PathEscape(id) + "/estado?estado=" + url.QueryEscape(string(st))
	status, body, err := c.do(ctx, http.MethodPut, path, nil, token)
	if err != nil {
		return err
	}
	if !ok(status) {
		return apiError(status, body, "Error "+strconv.Itoa(status)+": "+http.StatusText(status))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
