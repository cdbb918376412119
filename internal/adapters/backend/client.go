package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

const DefaultBaseURL = "https://backendfinal-rkrx.onrender.com/api"

// FieldStyle elige los nombres de campo del pedido: nombreCliente/itemsJson en la
// versión autenticada, nombre/items en la pública.
type FieldStyle string

const (
	FieldStyleLegacy FieldStyle = "legacy"
	FieldStylePublic FieldStyle = "public"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	style      FieldStyle
}

func NewClient(baseURL string, timeout time.Duration, style FieldStyle) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if style == "" {
		style = FieldStyleLegacy
	}
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: timeout}, style: style}
}

// APIError es una respuesta no 2xx del backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend status %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrSessionExpired
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}

// authClient agrega el token Bearer; sin token devuelve el cliente común.
func (c *Client) authClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return c.httpClient
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	hc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
	hc.Timeout = c.httpClient.Timeout
	return hc
}

// do envía la request y devuelve status y body. Los errores de transporte se envuelven;
// el status lo evalúa quien llama.
func (c *Client) do(ctx context.Context, method, path string, body any, token string) (int, []byte, error) {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("error serializando payload: %w", err)
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return 0, nil, err
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.authClient(ctx, token).Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Str("request_id", reqID).Msg("error de conexión con el backend")
		return 0, nil, fmt.Errorf("error de conexión con el backend: %w", err)
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, fmt.Errorf("leyendo respuesta: %w", err)
	}
	log.Debug().Str("method", method).Str("path", path).Int("status", res.StatusCode).Str("request_id", reqID).Msg("backend")
	return res.StatusCode, data, nil
}

func ok(status int) bool { return status >= 200 && status < 300 }

// apiError toma error o message del body; si no hay, usa generic.
func apiError(status int, body []byte, generic string) *APIError {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		if m := strings.TrimSpace(e.Error); m != "" {
			return &APIError{Status: status, Message: m}
		}
		if m := strings.TrimSpace(e.Message); m != "" {
			return &APIError{Status: status, Message: m}
		}
	}
	if generic == "" {
		generic = fmt.Sprintf("Error %d: %s", status, http.StatusText(status))
	}
	return &APIError{Status: status, Message: generic}
}

func IsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
