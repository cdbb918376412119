package app

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/juanquiga/frontendfinal/internal/adapters/backend"
	"github.com/juanquiga/frontendfinal/internal/adapters/scraper"
	"github.com/juanquiga/frontendfinal/internal/adapters/sheets"
	"github.com/juanquiga/frontendfinal/internal/adapters/storage/localdb"
	"github.com/juanquiga/frontendfinal/internal/adapters/storage/memory"
	"github.com/juanquiga/frontendfinal/internal/domain"
	"github.com/juanquiga/frontendfinal/internal/usecase"
	"github.com/juanquiga/frontendfinal/internal/views"
)

type App struct {
	Config     Config
	DB         *gorm.DB
	Store      domain.KVStore
	Backend    *backend.Client
	Tmpl       *template.Template
	DetailTmpl *texttemplate.Template
	CartUC     *usecase.CartUC
	CatalogUC  *usecase.CatalogUC
	AuthUC     *usecase.AuthUC
	CheckoutUC *usecase.CheckoutUC
	AdminUC    *usecase.AdminUC
}

// NewApp abre el almacenamiento local indicado en cfg y arma los casos de uso.
// STORAGE_DRIVER=memory no persiste nada entre ejecuciones.
func NewApp(cfg Config) (*App, error) {
	if cfg.StorageDriver == "memory" {
		return NewAppWithStore(cfg, memory.New())
	}
	db, err := localdb.Open(cfg.StorageDriver, cfg.StorageDSN)
	if err != nil {
		return nil, err
	}
	repo := localdb.NewKVRepo(db)
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("migrando almacenamiento local: %w", err)
	}
	a, err := NewAppWithStore(cfg, repo)
	if err != nil {
		return nil, err
	}
	a.DB = db
	return a, nil
}

// NewAppWithStore arma los casos de uso sobre un almacenamiento ya abierto.
func NewAppWithStore(cfg Config, store domain.KVStore) (*App, error) {
	client := backend.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, cfg.OrderFieldStyle)

	sources, err := orderSources(client, cfg.OrderSources)
	if err != nil {
		return nil, err
	}

	catalogs := []domain.Catalog{
		client.Catalog(backend.PathPublicMenu),
		client.Catalog(backend.PathProducts),
	}
	if cfg.MenuHTMLSource != "" {
		catalogs = append(catalogs, scraper.NewMenuScraper(cfg.MenuHTMLSource, cfg.HTTPTimeout))
	}

	a := &App{Config: cfg, Store: store, Backend: client}
	a.CartUC = &usecase.CartUC{Store: store}
	a.AuthUC = &usecase.AuthUC{Store: store, Auth: client}
	a.CatalogUC = usecase.NewCatalogUC(cfg.MenuCacheTTL, a.CartUC, catalogs...)
	a.CheckoutUC = &usecase.CheckoutUC{Cart: a.CartUC, Auth: a.AuthUC, Orders: client, Policy: cfg.CheckoutAuth}
	a.AdminUC = &usecase.AdminUC{Sources: sources, Updater: client, Auth: a.AuthUC}

	if a.Tmpl, err = template.New("layout").Funcs(funcMap).ParseFS(views.FS, "*.html"); err != nil {
		return nil, err
	}
	if a.DetailTmpl, err = texttemplate.New("detail").Funcs(texttemplate.FuncMap(funcMap)).ParseFS(views.FS, "*.tmpl"); err != nil {
		return nil, err
	}
	return a, nil
}

func orderSources(client *backend.Client, names []string) ([]domain.OrderSource, error) {
	out := make([]domain.OrderSource, 0, len(names))
	for _, n := range names {
		switch {
		case n == "auth":
			out = append(out, client.AuthenticatedOrders())
		case n == "public":
			out = append(out, client.PublicOrders())
		case strings.HasPrefix(n, "xlsx:"):
			out = append(out, sheets.NewSource(strings.TrimPrefix(n, "xlsx:")))
		default:
			return nil, fmt.Errorf("ORDER_SOURCES: fuente desconocida %q", n)
		}
	}
	return out, nil
}

// CatalogWith devuelve el catálogo con una página HTML extra al final de la cascada.
// Sin fuente, o con la misma que ya está configurada, devuelve el catálogo compartido.
func (a *App) CatalogWith(htmlSource string) *usecase.CatalogUC {
	htmlSource = strings.TrimSpace(htmlSource)
	if htmlSource == "" || htmlSource == a.Config.MenuHTMLSource {
		return a.CatalogUC
	}
	sources := make([]domain.Catalog, 0, len(a.CatalogUC.Sources)+1)
	sources = append(sources, a.CatalogUC.Sources...)
	sources = append(sources, scraper.NewMenuScraper(htmlSource, a.Config.HTTPTimeout))
	return usecase.NewCatalogUC(a.Config.MenuCacheTTL, a.CartUC, sources...)
}

var funcMap = template.FuncMap{
	"money":       views.Money,
	"cop":         views.COP,
	"fecha":       views.FormatFecha,
	"preview":     views.ItemsPreview,
	"estadoClass": views.StatusClass,
	"dash":        views.OrDash,
}

// Close libera la conexión cuando el almacenamiento es SQL.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type OrdersReport struct {
	Source    string
	Generated string
	Stats     domain.OrderStats
	Orders    []domain.AdminOrder
}

// RenderOrders escribe el reporte HTML. Las estadísticas cubren todos los pedidos y
// la tabla sólo los filtrados.
func (a *App) RenderOrders(w io.Writer, source string, all, shown []domain.AdminOrder) error {
	data := OrdersReport{
		Source:    source,
		Generated: time.Now().Format("2006-01-02 15:04"),
		Stats:     usecase.Stats(all),
		Orders:    shown,
	}
	if err := a.Tmpl.ExecuteTemplate(w, "admin_orders.html", data); err != nil {
		log.Error().Err(err).Msg("error renderizando reporte")
		return err
	}
	return nil
}

func (a *App) RenderOrder(w io.Writer, o domain.AdminOrder) error {
	return a.DetailTmpl.ExecuteTemplate(w, "order_detail.tmpl", o)
}
