package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

// AuthPolicy define si el checkout exige sesión.
type AuthPolicy string

const (
	AuthRequired AuthPolicy = "required"
	AuthOptional AuthPolicy = "optional"
	AuthPublic   AuthPolicy = "public"
)

func ParseAuthPolicy(s string) (AuthPolicy, error) {
	switch p := AuthPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return AuthPublic, nil
	case AuthRequired, AuthOptional, AuthPublic:
		return p, nil
	}
	return "", fmt.Errorf("CHECKOUT_AUTH inválido: %q", s)
}

type ContactForm struct {
	Nombre    string
	Telefono  string
	Direccion string
}

type CheckoutUC struct {
	Cart   *CartUC
	Auth   *AuthUC
	Orders domain.OrderSubmitter
	Policy AuthPolicy
}

// Submit envía el carrito como pedido y lo vacía si el backend lo acepta. Si falla,
// el carrito queda intacto.
func (uc *CheckoutUC) Submit(ctx context.Context, f ContactForm) (string, error) {
	token := ""
	if uc.Policy != AuthPublic {
		s, err := uc.Auth.Current(ctx)
		if err != nil {
			return "", err
		}
		if s.IsLoggedIn {
			token = s.Token
		}
		if uc.Policy == AuthRequired && token == "" {
			return "", domain.ErrNotLoggedIn
		}
	}

	items, err := uc.Cart.Items(ctx)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", domain.ErrEmptyCart
	}
	if strings.TrimSpace(f.Nombre) == "" {
		return "", fmt.Errorf("nombre: %w", domain.ErrMissingField)
	}

	order, err := domain.NewOrder(f.Nombre, f.Telefono, f.Direccion, items)
	if err != nil {
		return "", err
	}
	id, err := uc.Orders.CreateOrder(ctx, order, token)
	if err != nil {
		log.Error().Err(err).Msg("error enviando el pedido")
		return "", err
	}
	if err := uc.Cart.Clear(ctx); err != nil {
		log.Warn().Err(err).Msg("pedido enviado pero no se pudo vaciar el carrito")
	}
	log.Info().Str("pedido_id", id).Float64("total", order.Total).Int("items", len(items)).Msg("pedido enviado")
	return id, nil
}
