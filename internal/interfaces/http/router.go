package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mini-erp/internal/application/catalog"
	"github.com/tu-usuario/mini-erp/internal/application/inventory"
	"github.com/tu-usuario/mini-erp/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC  *catalog.UseCase
	MovementUC *inventory.ApplyMovementUseCase
	ReportsUC  *reports.UseCase
	Exporter   Exporter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	products := api.Group("/products")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products.Post("/", catalogHandler.Register)
	products.Get("/", catalogHandler.List)
	products.Get("/:id", catalogHandler.GetByID)
	products.Delete("/:id", catalogHandler.Delete)

	// Alertas de stock bajo
	api.Get("/alerts", catalogHandler.Alerts)

	// Movimientos
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	api.Post("/movements", inventoryHandler.RegisterMovement)

	// Reportes (series para el cliente de gráficos)
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/stock", reportHandler.StockSnapshot)
	reportsGroup.Get("/evolution", reportHandler.StockEvolution)
	reportsGroup.Get("/abc", reportHandler.ABCCurve)

	// Exportación de planilla
	exportHandler := NewExportHandler(deps.CatalogUC, deps.Exporter)
	api.Get("/export/xlsx", exportHandler.Download)
}
