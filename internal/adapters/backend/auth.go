package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

const (
	PathLogin    = "/auth/login"
	PathRegister = "/auth/register"
)

type sessionData struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// loginResponse cubre {token} y {ok, data:{token, username, role}}.
type loginResponse struct {
	sessionData
	OK      *bool        `json:"ok"`
	Data    *sessionData `json:"data"`
	Error   string       `json:"error"`
	Message string       `json:"message"`
}

func (c *Client) Login(ctx context.Context, cr domain.Credentials) (*domain.Session, error) {
	status, body, err := c.do(ctx, http.MethodPost, PathLogin, cr, "")
	if err != nil {
		return nil, err
	}
	var lr loginResponse
	_ = json.Unmarshal(body, &lr)
	if !ok(status) || (lr.OK != nil && !*lr.OK) {
		msg := strings.TrimSpace(lr.Error)
		if msg == "" {
			msg = strings.TrimSpace(lr.Message)
		}
		if msg == "" {
			msg = "Error en el inicio de sesión"
		}
		return nil, &APIError{Status: status, Message: msg}
	}
	sd := lr.sessionData
	if lr.Data != nil {
		sd = *lr.Data
	}
	if sd.Token == "" {
		return nil, errors.New("respuesta de login sin token")
	}
	if sd.Role == "" || sd.Username == "" {
		user, role := tokenClaims(sd.Token)
		if sd.Username == "" {
			sd.Username = user
		}
		if sd.Role == "" {
			sd.Role = role
		}
	}
	if sd.Username == "" {
		sd.Username = cr.Username
	}
	return &domain.Session{Token: sd.Token, Username: sd.Username, Role: sd.Role, IsLoggedIn: true}, nil
}

// tokenClaims lee usuario y rol de un JWT sin verificarlo; sólo decide qué pantalla
// mostrar.
func tokenClaims(token string) (string, string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		log.Debug().Err(err).Msg("token no es JWT")
		return "", ""
	}
	user, _ := claims["username"].(string)
	if user == "" {
		user, _ = claims.GetSubject()
	}
	role, _ := claims["role"].(string)
	if role == "" {
		if roles, ok := claims["roles"].([]any); ok && len(roles) > 0 {
			role, _ = roles[0].(string)
		}
	}
	return user, role
}

func (c *Client) Register(ctx context.Context, cr domain.Credentials) error {
	status, body, err := c.do(ctx, http.MethodPost, PathRegister, cr, "")
	if err != nil {
		return err
	}
	if !ok(status) {
		return apiError(status, body, fmt.Sprintf("Error al registrar (status %d)", status))
	}
	return nil
}

// ValidateToken vuelve a validar la sesión contra el endpoint protegido de pedidos.
func (c *Client) ValidateToken(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrNotLoggedIn
	}
	status, body, err := c.do(ctx, http.MethodGet, PathOrders, nil, token)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return domain.ErrSessionExpired
	}
	if !ok(status) {
		return apiError(status, body, "")
	}
	return nil
}
