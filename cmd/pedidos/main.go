package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/juanquiga/frontendfinal/internal/app"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = rootCmd.ExecuteContext(ctx)
	if application != nil {
		_ = application.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", userMessage(err))
		os.Exit(1)
	}
}

var application *app.App

var rootCmd = &cobra.Command{
	Use:           "pedidos",
	Short:         "Cliente de la tienda: menú, carrito, pedidos y panel de administración",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// bootApp carga la configuración y abre el almacenamiento una vez por ejecución.
func bootApp() (*app.App, error) {
	if application != nil {
		return application, nil
	}
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, err
	}
	a, err := app.NewApp(cfg)
	if err != nil {
		return nil, err
	}
	application = a
	return a, nil
}

func init() {
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(checkoutCmd)

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	rootCmd.AddCommand(adminCmd)
}
