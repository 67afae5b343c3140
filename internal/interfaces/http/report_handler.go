package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ReportHandler maneja las consultas de reportes derivados.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockValue godoc
// @Summary      Valor total del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockValueResponse
// @Router       /api/reports/stock-value [get]
func (h *ReportHandler) StockValue(c *fiber.Ctx) error {
	total, err := h.uc.TotalStockValue()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockValueResponse{TotalStockValue: total})
}

// ExpiringSoon godoc
// @Summary      Perecederos por vencer dentro de la ventana configurada
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportProductsResponse
// @Router       /api/reports/expiring-soon [get]
func (h *ReportHandler) ExpiringSoon(c *fiber.Ctx) error {
	products, err := h.uc.ProductsExpiringSoon(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toReportResponse(products))
}

// Expired godoc
// @Summary      Perecederos ya vencidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportProductsResponse
// @Router       /api/reports/expired [get]
func (h *ReportHandler) Expired(c *fiber.Ctx) error {
	products, err := h.uc.ProductsExpired(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toReportResponse(products))
}

// LowStock godoc
// @Summary      Productos bajo stock mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportProductsResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.uc.ProductsBelowMinimumStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toReportResponse(products))
}

// LowStockPDF godoc
// @Summary      Reporte de bajo stock en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/low-stock/pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	data, err := h.uc.LowStockPDF(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-minimo.pdf"`)
	return c.Send(data)
}

// MovementsBySKU godoc
// @Summary      Historial de movimientos de un producto
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        sku     path   int  true   "SKU"
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{sku}/movements [get]
func (h *ReportHandler) MovementsBySKU(c *fiber.Ctx) error {
	sku, ok := parseSKU(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "SKU inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.MovementsBySKU(sku, page.Limit, page.Offset)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func toReportResponse(products []*entity.Product) dto.ReportProductsResponse {
	items := dto.ToProductList(products)
	return dto.ReportProductsResponse{Total: len(items), Items: items}
}
