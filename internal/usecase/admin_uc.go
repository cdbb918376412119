package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

// Confirmer pregunta antes de cambiar un estado; false lo cancela.
type Confirmer func(prompt string) bool

// AdminUC atiende el panel de administración. Las fuentes se prueban en orden: si una
// falla o viene vacía se pasa a la siguiente.
type AdminUC struct {
	Sources []domain.OrderSource
	Updater domain.OrderStatusUpdater
	Auth    *AuthUC
}

// Load devuelve los pedidos normalizados y el nombre de la fuente que respondió.
func (uc *AdminUC) Load(ctx context.Context) ([]domain.AdminOrder, string, error) {
	s, err := uc.Auth.Current(ctx)
	if err != nil {
		return nil, "", err
	}
	return uc.cascade(ctx, s.Token, false)
}

// Open verifica la sesión de administrador y carga los pedidos. Cuando la primera
// fuente exige token, su respuesta sirve de validación y el backend se consulta una
// sola vez.
func (uc *AdminUC) Open(ctx context.Context) ([]domain.AdminOrder, string, error) {
	s, err := uc.Auth.RequireAdmin(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(uc.Sources) > 0 && requiresToken(uc.Sources[0]) {
		return uc.cascade(ctx, s.Token, true)
	}
	if err := uc.Auth.Auth.ValidateToken(ctx, s.Token); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			log.Warn().Str("username", s.Username).Msg("token rechazado por el backend")
		}
		return nil, "", err
	}
	return uc.cascade(ctx, s.Token, false)
}

func requiresToken(src domain.OrderSource) bool {
	ts, ok := src.(domain.TokenSource)
	return ok && ts.RequiresToken()
}

// cascade recorre las fuentes en orden. Con validating, un token rechazado por la
// primera fuente corta la cascada con ErrSessionExpired.
func (uc *AdminUC) cascade(ctx context.Context, token string, validating bool) ([]domain.AdminOrder, string, error) {
	var lastErr error
	for i, src := range uc.Sources {
		recs, err := src.FetchOrders(ctx, token)
		if err != nil {
			if validating && i == 0 && errors.Is(err, domain.ErrSessionExpired) {
				log.Warn().Str("source", src.Name()).Msg("token rechazado por el backend")
				return nil, "", domain.ErrSessionExpired
			}
			log.Warn().Err(err).Str("source", src.Name()).Msg("endpoint falló, probando siguiente")
			lastErr = err
			continue
		}
		if len(recs) == 0 {
			log.Warn().Str("source", src.Name()).Msg("endpoint devolvió vacío, probando siguiente")
			continue
		}
		orders := NormalizeOrders(recs)
		log.Info().Str("source", src.Name()).Int("pedidos", len(orders)).Msg("pedidos cargados")
		return orders, src.Name(), nil
	}
	if lastErr != nil {
		log.Error().Err(lastErr).Msg("no se pudieron cargar los pedidos")
		return nil, "", lastErr
	}
	return []domain.AdminOrder{}, "", nil
}

func Stats(orders []domain.AdminOrder) domain.OrderStats {
	st := domain.OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Estado {
		case domain.OrderStatusPending:
			st.Pending++
		case domain.OrderStatusAttended:
			st.Attended++
		case domain.OrderStatusCancelled:
			st.Cancelled++
		}
	}
	return st
}

// Filter busca el texto sin distinguir mayúsculas en nombre, teléfono, dirección e id,
// y filtra por estado cuando se indica.
func Filter(orders []domain.AdminOrder, f domain.OrderFilter) []domain.AdminOrder {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.AdminOrder, 0, len(orders))
	for _, o := range orders {
		if f.Status != "" && o.Estado != f.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(o.Nombre), q) &&
			!strings.Contains(strings.ToLower(o.Telefono), q) &&
			!strings.Contains(strings.ToLower(o.Direccion), q) &&
			!strings.Contains(strings.ToLower(o.ID), q) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// SortNewestFirst ordena por fecha descendente y luego por id descendente. Los pedidos
// sin fecha legible van al final.
func SortNewestFirst(orders []domain.AdminOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		ti := fechaMillis(orders[i].Fecha)
		tj := fechaMillis(orders[j].Fecha)
		if ti != tj {
			return ti > tj
		}
		return idGreater(orders[i].ID, orders[j].ID)
	})
}

func fechaMillis(f *string) int64 {
	if f == nil {
		return 0
	}
	t, ok := domain.ParseFecha(*f)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

func idGreater(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na > nb
	}
	return a > b
}

func FindOrder(orders []domain.AdminOrder, id string) (*domain.AdminOrder, error) {
	id = strings.TrimPrefix(strings.TrimSpace(id), "#")
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func ConfirmMessage(next domain.OrderStatus) string {
	if next == domain.OrderStatusAttended {
		return "¿Marcar este pedido como ATENDIDO?"
	}
	return "¿Estás seguro de CANCELAR este pedido?"
}

// Transition pasa un pedido PENDIENTE a ATENDIDO o CANCELADO tras la confirmación.
// Una transición inválida no llega al backend.
func (uc *AdminUC) Transition(ctx context.Context, o domain.AdminOrder, next domain.OrderStatus, confirm Confirmer) error {
	if !o.Estado.CanTransition(next) {
		return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, o.Estado, next)
	}
	if confirm != nil && !confirm(ConfirmMessage(next)) {
		return domain.ErrCancelled
	}
	s, err := uc.Auth.Current(ctx)
	if err != nil {
		return err
	}
	if !s.IsLoggedIn {
		return domain.ErrNotLoggedIn
	}
	if err := uc.Updater.UpdateOrderStatus(ctx, o.ID, next, s.Token); err != nil {
		log.Error().Err(err).Str("pedido_id", o.ID).Str("estado", string(next)).Msg("error al cambiar estado")
		return err
	}
	log.Info().Str("pedido_id", o.ID).Str("estado", string(next)).Msg("estado actualizado")
	return nil
}

// Apply cambia el estado y recarga la lista para devolver el pedido tal como quedó
// en el backend. Si la recarga falla el cambio ya está hecho: se registra y el
// pedido devuelto es nil.
func (uc *AdminUC) Apply(ctx context.Context, o domain.AdminOrder, next domain.OrderStatus, confirm Confirmer) (*domain.AdminOrder, error) {
	if err := uc.Transition(ctx, o, next, confirm); err != nil {
		return nil, err
	}
	orders, _, err := uc.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("pedido_id", o.ID).Msg("estado actualizado pero no se pudo recargar")
		return nil, nil
	}
	updated, err := FindOrder(orders, o.ID)
	if err != nil {
		log.Warn().Str("pedido_id", o.ID).Msg("pedido ausente tras recargar")
		return nil, nil
	}
	return updated, nil
}
