// Package category concentra las reglas por categoría de producto. Toda la
// lógica condicionada a STANDARD/PERISHABLE vive aquí: agregar una categoría
// nueva no toca el ledger ni los reportes.
package category

import (
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Policy define los campos obligatorios de una categoría, tanto para el
// producto como para los movimientos que lo afectan. Las implementaciones son
// puras: mismo input y mismo instante de referencia, mismo resultado.
type Policy interface {
	// RequiredProductFields valida los campos propios de la categoría en el producto.
	RequiredProductFields(p *entity.Product, now time.Time) error
	// RequiredMovementFields valida los campos propios de la categoría en el movimiento.
	RequiredMovementFields(m *entity.StockMovement, now time.Time) error
}

// For devuelve la política de la categoría. Categorías desconocidas se tratan
// como STANDARD (sin requisitos adicionales).
func For(c entity.Category) Policy {
	if c == entity.CategoryPERISHABLE {
		return perishablePolicy{}
	}
	return standardPolicy{}
}

type standardPolicy struct{}

func (standardPolicy) RequiredProductFields(*entity.Product, time.Time) error { return nil }

func (standardPolicy) RequiredMovementFields(*entity.StockMovement, time.Time) error { return nil }

type perishablePolicy struct{}

// RequiredProductFields exige lote no vacío y vencimiento estrictamente futuro.
func (perishablePolicy) RequiredProductFields(p *entity.Product, now time.Time) error {
	if isBlank(p.LotNumber) {
		return domain.ErrInvalidProductFields
	}
	if p.ExpirationDate == nil || !p.ExpirationDate.After(now) {
		return domain.ErrInvalidProductFields
	}
	return nil
}

// RequiredMovementFields exige vencimiento futuro y lote en cada movimiento.
func (perishablePolicy) RequiredMovementFields(m *entity.StockMovement, now time.Time) error {
	if m.ExpirationDate == nil || !m.ExpirationDate.After(now) {
		return domain.ErrMissingExpiration
	}
	if isBlank(m.Batch) {
		return domain.ErrMissingBatch
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
