package dto

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RegisterMovementRequest body para POST /api/movements.
// La fecha del movimiento la fija el ledger; no se acepta del caller.
type RegisterMovementRequest struct {
	SKU            int64      `json:"sku"`
	Type           string     `json:"type"` // INBOUND | OUTBOUND
	Quantity       int64      `json:"quantity"`
	Batch          string     `json:"batch,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}

// MovementResponse representación HTTP de un movimiento aplicado.
type MovementResponse struct {
	ID             string     `json:"id"`
	SKU            int64      `json:"sku"`
	Type           string     `json:"type"`
	Quantity       int64      `json:"quantity"`
	Date           time.Time  `json:"date"`
	Batch          string     `json:"batch,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}

// MovementListResponse respuesta del historial de movimientos de un SKU.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ToMovementResponse convierte la entidad a su representación HTTP.
func ToMovementResponse(m *entity.StockMovement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:             m.ID,
		SKU:            m.SKU,
		Type:           m.Type,
		Quantity:       m.Quantity,
		Date:           m.Date,
		Batch:          m.Batch,
		ExpirationDate: m.ExpirationDate,
	}
}
