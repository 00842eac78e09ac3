package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/infrastructure/pdf"
)

// ReportHandler expone el reporte de ventas en JSON y PDF.
type ReportHandler struct {
	uc      *usecase.ReportUseCase
	pdfGen  *pdf.ReportGenerator
	appName string
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, gen *pdf.ReportGenerator, appName string) *ReportHandler {
	return &ReportHandler{uc: uc, pdfGen: gen, appName: appName}
}

// Build devuelve el reporte por producto, recalculado en esta consulta.
func (h *ReportHandler) Build(c *fiber.Ctx) error {
	rows, err := h.uc.Build(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// PDF devuelve el reporte como documento imprimible.
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	rows, err := h.uc.Build(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	data, err := h.pdfGen.Generate(c.Context(), h.appName, rows)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-ventas.pdf"`)
	return c.Send(data)
}
