package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

const menuPage = `<html><body><div id="productos">
<div class="card">
  <h3>Pizza</h3>
  <img src="pizza.jpg" alt="Pizza">
  <p>Queso y tomate</p>
  <p><strong>$12000 COP</strong></p>
  <button class="add-to-cart" data-product="Pizza" data-price="12000">Agregar al Carrito</button>
</div>
<div class="card">
  <h3>Jugo</h3>
  <p>Natural</p>
  <button class="add-to-cart" data-product="Jugo" data-price="3500.5">Agregar al Carrito</button>
</div>
<div class="producto-card">
  <img src="https://cdn/arepa.png" alt="Arepa">
  <h3>Arepa</h3>
  <p>Con queso</p>
  <p class="precio">$4.500</p>
</div>
<div class="producto-card"><h3>pizza</h3><p class="precio">$1</p></div>
<div class="producto-card"><p>sin nombre</p></div>
</div></body></html>`

func TestParseMenu(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(menuPage))
	require.NoError(t, err)

	got := ParseMenu(doc)
	assert.Equal(t, []domain.Product{
		{Nombre: "Pizza", Descripcion: "Queso y tomate", Precio: 12000, Imagen: "pizza.jpg"},
		{Nombre: "Jugo", Descripcion: "Natural", Precio: 3500.5, Imagen: domain.PlaceholderImage},
		{Nombre: "Arepa", Descripcion: "Con queso", Precio: 4500, Imagen: "https://cdn/arepa.png"},
	}, got)
}

func TestMenuScraperFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.html")
	require.NoError(t, os.WriteFile(path, []byte(menuPage), 0o644))

	s := NewMenuScraper(path, 0)
	assert.Equal(t, "html:"+path, s.Name())
	got, err := s.Products(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestMenuScraperFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/menu.html" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(menuPage))
	}))
	defer srv.Close()

	got, err := NewMenuScraper(srv.URL+"/menu.html", time.Second).Products(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = NewMenuScraper(srv.URL+"/otro", time.Second).Products(context.Background())
	assert.ErrorContains(t, err, "404")
}
