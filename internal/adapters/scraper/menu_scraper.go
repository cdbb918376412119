package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

// MenuScraper lee los productos de una página de menú ya renderizada. Entiende las
// tarjetas ".card" con botón add-to-cart y el formato ".producto-card".
type MenuScraper struct {
	client *http.Client
	source string
}

func NewMenuScraper(source string, timeout time.Duration) *MenuScraper {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &MenuScraper{
		client: &http.Client{Timeout: timeout},
		source: source,
	}
}

func (s *MenuScraper) Name() string { return "html:" + s.source }

func (s *MenuScraper) Products(ctx context.Context) ([]domain.Product, error) {
	body, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("html inválido: %w", err)
	}
	products := ParseMenu(doc)
	log.Debug().Str("source", s.source).Int("found", len(products)).Msg("Productos leídos del menú")
	return products, nil
}

func (s *MenuScraper) open(ctx context.Context) (io.ReadCloser, error) {
	if !strings.HasPrefix(s.source, "http://") && !strings.HasPrefix(s.source, "https://") {
		return os.Open(s.source)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9,en;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// ParseMenu extrae los productos del documento; las tarjetas sin nombre se omiten.
func ParseMenu(doc *goquery.Document) []domain.Product {
	out := []domain.Product{}
	seen := map[string]bool{}
	add := func(p domain.Product) {
		if p.Nombre == "" || seen[strings.ToLower(p.Nombre)] {
			return
		}
		seen[strings.ToLower(p.Nombre)] = true
		if p.Imagen == "" {
			p.Imagen = domain.PlaceholderImage
		}
		out = append(out, p)
	}

	doc.Find(".add-to-cart[data-product]").Each(func(_ int, btn *goquery.Selection) {
		card := btn.Closest(".card")
		name := strings.TrimSpace(btn.AttrOr("data-product", ""))
		if name == "" {
			name = strings.TrimSpace(card.Find("h3").First().Text())
		}
		price, _ := strconv.ParseFloat(strings.TrimSpace(btn.AttrOr("data-price", "")), 64)
		add(domain.Product{
			Nombre:      name,
			Descripcion: strings.TrimSpace(card.Find("p").First().Text()),
			Precio:      price,
			Imagen:      strings.TrimSpace(card.Find("img").First().AttrOr("src", "")),
		})
	})

	doc.Find(".producto-card").Each(func(_ int, card *goquery.Selection) {
		add(domain.Product{
			Nombre:      strings.TrimSpace(card.Find("h3").First().Text()),
			Descripcion: strings.TrimSpace(card.Find("p").Not(".precio").First().Text()),
			Precio:      parseCOP(card.Find(".precio").First().Text()),
			Imagen:      strings.TrimSpace(card.Find("img").First().AttrOr("src", "")),
		})
	})
	return out
}

// parseCOP lee precios en formato es-CO, "$12.000,50".
func parseCOP(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "COP")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
