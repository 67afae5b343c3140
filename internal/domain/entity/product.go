package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category clasifica un producto según sus reglas de validación.
type Category string

const (
	CategorySTANDARD   Category = "STANDARD"   // sin requisitos adicionales
	CategoryPERISHABLE Category = "PERISHABLE" // exige lote y fecha de vencimiento
)

// Product representa un producto del catálogo identificado por su SKU.
// Quantity solo se modifica a través del ledger de movimientos (RegisterMovement);
// ningún otro componente puede mutarla.
type Product struct {
	SKU             int64
	Name            string
	Category        Category
	UnitPrice       decimal.Decimal // precio unitario, no negativo
	Quantity        int64           // existencias actuales, nunca negativo
	MinimumQuantity int64           // umbral de stock mínimo para reportes
	CreatedAt       time.Time

	// Solo para PERISHABLE.
	LotNumber      string
	ExpirationDate *time.Time
}
