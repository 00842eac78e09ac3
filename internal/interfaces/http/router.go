package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-api/internal/infrastructure/uploads"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	SaleUC    *usecase.SaleUseCase
	ReportUC  *usecase.ReportUseCase
	Uploads   *uploads.Storage
	ReportPDF *pdf.ReportGenerator
	AppName   string
}

// Router registra las rutas de la API. Operador único y confiado: sin
// autenticación por diseño.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Uploads)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Record)
	sales.Get("/", saleHandler.List)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDF, deps.AppName)
	reports.Get("/", reportHandler.Build)
	reports.Get("/pdf", reportHandler.PDF)
}
