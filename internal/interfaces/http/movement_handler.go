package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// MovementHandler maneja el registro de movimientos de stock.
type MovementHandler struct {
	uc *ledger.RegisterMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica un movimiento INBOUND/OUTBOUND sobre el producto. La
//               fecha la fija el servidor; cualquier fecha del caller se ignora.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "sku, type, quantity; batch y expiration_date para productos PERISHABLE"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	applied, err := h.uc.RegisterMovement(c.Context(), ledger.MovementInputDTO{
		SKU:            in.SKU,
		Type:           in.Type,
		Quantity:       in.Quantity,
		Batch:          in.Batch,
		ExpirationDate: in.ExpirationDate,
		CreatedBy:      GetUserID(c),
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidInput, domain.ErrInvalidQuantity, domain.ErrMissingExpiration, domain.ErrMissingBatch:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(applied))
}
