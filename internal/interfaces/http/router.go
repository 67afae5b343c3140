package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *catalog.ProductUseCase
	RegisterMovement *ledger.RegisterMovementUseCase
	ReportUC         *report.ReportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:sku", productHandler.GetBySKU)
	products.Put("/:sku", productHandler.Update)
	products.Delete("/:sku", productHandler.Delete)

	// Stock movements (protegido)
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	protected.Post("/movements", movementHandler.Register)

	// Reports (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	products.Get("/:sku/movements", reportHandler.MovementsBySKU)
	reports := protected.Group("/reports")
	reports.Get("/stock-value", reportHandler.StockValue)
	reports.Get("/expiring-soon", reportHandler.ExpiringSoon)
	reports.Get("/expired", reportHandler.Expired)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/low-stock/pdf", reportHandler.LowStockPDF)
}
