// Package inventory contiene las reglas puras de validación del motor de
// stock. Sin efectos secundarios: deciden, no mutan.
package inventory

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/category"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ValidateProduct verifica que el producto cumpla los campos obligatorios de
// su categoría en el instante de referencia.
func ValidateProduct(p *entity.Product, now time.Time) bool {
	if p == nil {
		return false
	}
	return category.For(p.Category).RequiredProductFields(p, now) == nil
}

// ValidateMovement verifica el movimiento contra el producto destino.
// Se evalúa siempre antes de cualquier mutación.
func ValidateMovement(p *entity.Product, m *entity.StockMovement, now time.Time) error {
	if m.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return category.For(p.Category).RequiredMovementFields(m, now)
}
