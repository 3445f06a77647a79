package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/server"
	"github.com/jcarrillo/cpgo/internal/storage/postgres"
	appcfg "github.com/jcarrillo/cpgo/pkg/config"
	"github.com/jcarrillo/cpgo/pkg/logger"
)

var servirCmd = &cobra.Command{
	Use:   "servir",
	Short: "Levanta el API HTTP de costo patronal",
	Long: `Lee la configuracion de variables CPGO_* (o cpgo.yaml) y sirve el API.
Con CPGO_DATABASE_URL definida tambien habilita el registro de empresas y
trabajadores en PostgreSQL; sin ella solo responden los calculos directos.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func serve() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		lg.Fatal().Err(err).Msg("cargar catalogo")
	}

	deps := server.Deps{
		AppName: cfg.App.Name,
		Catalog: cat,
		Log:     lg,
	}

	if cfg.DB.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		pool, err := postgres.NewPool(ctx, cfg.DB.DatabaseURL)
		if err != nil {
			lg.Fatal().Err(err).Msg("conectar a la base de datos")
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			lg.Fatal().Err(err).Msg("migrar esquema")
		}

		deps.Companies = postgres.NewCompanyRepository(pool)
		deps.Workers = postgres.NewWorkerRepository(pool)
		lg.Info().Msg("persistencia PostgreSQL habilitada")
	} else {
		lg.Warn().Msg("sin CPGO_DATABASE_URL, el API corre sin persistencia")
	}

	srv, err := server.New(deps)
	if err != nil {
		lg.Fatal().Err(err).Msg("construir servidor")
	}

	go func() {
		lg.Info().Str("addr", cfg.HTTP.Addr()).Int("catalogo", cat.Year).Msg("escuchando")
		if err := srv.Listen(cfg.HTTP.Addr()); err != nil {
			lg.Fatal().Err(err).Msg("servidor detenido")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info().Msg("apagando")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("apagado con errores")
	}
}
