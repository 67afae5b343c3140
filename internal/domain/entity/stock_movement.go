package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeINBOUND  = "INBOUND"  // entrada: suma existencias
	MovementTypeOUTBOUND = "OUTBOUND" // salida: resta existencias
)

// StockMovement representa un movimiento aplicado sobre un producto del catálogo.
// Date la asigna siempre el ledger al aplicar el movimiento; cualquier fecha
// enviada por el caller se ignora. Una vez aplicado, el movimiento es inmutable.
type StockMovement struct {
	ID       string
	SKU      int64
	Type     string // INBOUND, OUTBOUND
	Quantity int64  // siempre positivo; el tipo define el signo del efecto
	Date     time.Time

	// Solo para productos PERISHABLE.
	Batch          string
	ExpirationDate *time.Time

	CreatedBy string // UserID
}
