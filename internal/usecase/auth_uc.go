package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

var sessionKeys = []string{domain.KeyToken, domain.KeyUsername, domain.KeyUsuario, domain.KeyRole, domain.KeyIsLoggedIn}

type AuthUC struct {
	Store domain.KVStore
	Auth  domain.Authenticator
}

func (uc *AuthUC) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	cr := domain.Credentials{Username: strings.TrimSpace(username), Password: strings.TrimSpace(password)}
	if cr.Username == "" || cr.Password == "" {
		return nil, domain.ErrMissingField
	}
	s, err := uc.Auth.Login(ctx, cr)
	if err != nil {
		log.Error().Err(err).Str("username", cr.Username).Msg("error en login")
		return nil, err
	}
	if err := uc.save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *AuthUC) save(ctx context.Context, s *domain.Session) error {
	vals := map[string]string{
		domain.KeyToken:      s.Token,
		domain.KeyUsername:   s.Username,
		domain.KeyUsuario:    s.Username,
		domain.KeyRole:       s.Role,
		domain.KeyIsLoggedIn: "true",
	}
	for _, k := range sessionKeys {
		if err := uc.Store.Set(ctx, k, vals[k]); err != nil {
			return err
		}
	}
	return nil
}

// Register no abre sesión; el usuario inicia sesión después.
func (uc *AuthUC) Register(ctx context.Context, username, password string) error {
	cr := domain.Credentials{Username: strings.TrimSpace(username), Password: password}
	if cr.Username == "" || cr.Password == "" {
		return domain.ErrMissingField
	}
	if err := uc.Auth.Register(ctx, cr); err != nil {
		log.Error().Err(err).Str("username", cr.Username).Msg("register error")
		return err
	}
	return nil
}

func (uc *AuthUC) Logout(ctx context.Context) error {
	for _, k := range sessionKeys {
		if err := uc.Store.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll borra todo el almacenamiento local, carrito incluido.
func (uc *AuthUC) ClearAll(ctx context.Context) error {
	return uc.Store.Clear(ctx)
}

func (uc *AuthUC) Current(ctx context.Context) (domain.Session, error) {
	get := func(k string) (string, error) {
		v, _, err := uc.Store.Get(ctx, k)
		return v, err
	}
	var s domain.Session
	var err error
	if s.Token, err = get(domain.KeyToken); err != nil {
		return s, err
	}
	if s.Username, err = get(domain.KeyUsername); err != nil {
		return s, err
	}
	if s.Username == "" {
		if s.Username, err = get(domain.KeyUsuario); err != nil {
			return s, err
		}
	}
	if s.Role, err = get(domain.KeyRole); err != nil {
		return s, err
	}
	flag, err := get(domain.KeyIsLoggedIn)
	if err != nil {
		return s, err
	}
	s.IsLoggedIn = flag == "true" && s.Token != ""
	return s, nil
}

// RequireAdmin valida la sesión guardada sin consultar al backend: sesión iniciada
// y rol de administrador.
func (uc *AuthUC) RequireAdmin(ctx context.Context) (domain.Session, error) {
	s, err := uc.Current(ctx)
	if err != nil {
		return s, err
	}
	if !s.IsLoggedIn {
		return s, domain.ErrNotLoggedIn
	}
	if s.Role != domain.RoleAdmin {
		return s, domain.ErrForbidden
	}
	return s, nil
}

// VerifyAdmin suma a RequireAdmin la validación del token contra el backend.
func (uc *AuthUC) VerifyAdmin(ctx context.Context) (domain.Session, error) {
	s, err := uc.RequireAdmin(ctx)
	if err != nil {
		return s, err
	}
	if err := uc.Auth.ValidateToken(ctx, s.Token); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			log.Warn().Str("username", s.Username).Msg("token rechazado por el backend")
		}
		return s, err
	}
	return s, nil
}
