package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/mini-erp/internal/application/catalog"
	"github.com/tu-usuario/mini-erp/internal/application/inventory"
	"github.com/tu-usuario/mini-erp/internal/application/reports"
	"github.com/tu-usuario/mini-erp/internal/infrastructure/export"
	"github.com/tu-usuario/mini-erp/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/mini-erp/internal/interfaces/http"
	"github.com/tu-usuario/mini-erp/pkg/config"
	"github.com/tu-usuario/mini-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de la base")
	}

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := catalog.NewUseCase(txRunner, productRepo)
	movementUC := inventory.NewApplyMovementUseCase(txRunner, productRepo)
	reportsUC := reports.NewUseCase(productRepo, movementRepo)

	// Barrido inicial de alertas de stock bajo al arrancar.
	if alerts, err := catalogUC.Alerts(ctx); err != nil {
		log.Error().Err(err).Msg("alertas de arranque")
	} else {
		for _, a := range alerts {
			log.Warn().
				Str("product_id", a.ProductID).
				Str("name", a.Name).
				Int64("quantity", a.Quantity).
				Msg("stock bajo")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:  catalogUC,
		MovementUC: movementUC,
		ReportsUC:  reportsUC,
		Exporter:   export.NewXLSXExporter(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
