package localdb

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open conecta con el driver configurado: sqlite guarda en un archivo local, postgres
// permite compartir el almacenamiento entre terminales.
func Open(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite":
		if dsn == "" {
			dsn = "pedidos.db"
		}
		return gorm.Open(sqlite.Open(dsn), cfg)
	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("STORAGE_DSN requerido para postgres")
		}
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", driver)
}
