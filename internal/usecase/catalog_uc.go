package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

const catalogCacheKey = "menu"

// CatalogUC lista el menú de la primera fuente que responde con productos y agrega
// productos al carrito.
type CatalogUC struct {
	Sources []domain.Catalog
	Cart    *CartUC
	cache   *cache.Cache
}

func NewCatalogUC(ttl time.Duration, cart *CartUC, sources ...domain.Catalog) *CatalogUC {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CatalogUC{Sources: sources, Cart: cart, cache: cache.New(ttl, 2*ttl)}
}

func (uc *CatalogUC) List(ctx context.Context) ([]domain.Product, error) {
	if v, ok := uc.cache.Get(catalogCacheKey); ok {
		return v.([]domain.Product), nil
	}
	var lastErr error
	for _, src := range uc.Sources {
		list, err := src.Products(ctx)
		if err != nil {
			log.Warn().Err(err).Str("source", src.Name()).Msg("catálogo falló, probando siguiente")
			lastErr = err
			continue
		}
		if len(list) == 0 {
			log.Warn().Str("source", src.Name()).Msg("catálogo vacío, probando siguiente")
			continue
		}
		log.Info().Str("source", src.Name()).Int("productos", len(list)).Msg("productos cargados")
		uc.cache.SetDefault(catalogCacheKey, list)
		return list, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return []domain.Product{}, nil
}

func (uc *CatalogUC) Invalidate() { uc.cache.Delete(catalogCacheKey) }

func (uc *CatalogUC) Find(ctx context.Context, name string) (*domain.Product, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, errors.New("nombre vacío")
	}
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if strings.EqualFold(strings.TrimSpace(list[i].Nombre), n) {
			return &list[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// AddToCart busca el producto por nombre y lo agrega al precio del catálogo.
func (uc *CatalogUC) AddToCart(ctx context.Context, name string) (*domain.Product, error) {
	p, err := uc.Find(ctx, name)
	if err != nil {
		return nil, err
	}
	if _, err := uc.Cart.Add(ctx, p.Nombre, p.Precio); err != nil {
		return nil, err
	}
	return p, nil
}
