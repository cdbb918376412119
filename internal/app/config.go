package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/juanquiga/frontendfinal/internal/adapters/backend"
	"github.com/juanquiga/frontendfinal/internal/usecase"
)

type Config struct {
	APIBaseURL      string
	StorageDriver   string
	StorageDSN      string
	CheckoutAuth    usecase.AuthPolicy
	OrderSources    []string
	OrderFieldStyle backend.FieldStyle
	HTTPTimeout     time.Duration
	MenuCacheTTL    time.Duration
	MenuHTMLSource  string
	AppEnv          string
}

// LoadConfig lee la configuración del entorno; el .env ya fue cargado por godotenv.
func LoadConfig() (Config, error) {
	cfg := Config{
		APIBaseURL:     os.Getenv("API_BASE_URL"),
		StorageDriver:  strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER"))),
		StorageDSN:     os.Getenv("STORAGE_DSN"),
		MenuHTMLSource: strings.TrimSpace(os.Getenv("MENU_HTML_SOURCE")),
		AppEnv:         strings.ToLower(os.Getenv("APP_ENV")),
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = backend.DefaultBaseURL
	}
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = "sqlite"
	}

	policy, err := usecase.ParseAuthPolicy(os.Getenv("CHECKOUT_AUTH"))
	if err != nil {
		return cfg, err
	}
	cfg.CheckoutAuth = policy

	switch style := backend.FieldStyle(strings.ToLower(strings.TrimSpace(os.Getenv("ORDER_FIELD_STYLE")))); style {
	case "":
		cfg.OrderFieldStyle = backend.FieldStyleLegacy
	case backend.FieldStyleLegacy, backend.FieldStylePublic:
		cfg.OrderFieldStyle = style
	default:
		return cfg, fmt.Errorf("ORDER_FIELD_STYLE inválido: %q", style)
	}

	cfg.OrderSources = splitList(os.Getenv("ORDER_SOURCES"))
	if len(cfg.OrderSources) == 0 {
		cfg.OrderSources = []string{"auth", "public"}
	}

	if cfg.HTTPTimeout, err = durationEnv("HTTP_TIMEOUT", 15*time.Second); err != nil {
		return cfg, err
	}
	if cfg.MenuCacheTTL, err = durationEnv("MENU_CACHE_TTL", 5*time.Minute); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return d, nil
}
