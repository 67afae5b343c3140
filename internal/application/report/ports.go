package report

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// LowStockPDFGenerator genera la representación PDF del reporte de productos
// bajo stock mínimo.
type LowStockPDFGenerator interface {
	Generate(products []*entity.Product, generatedAt time.Time) ([]byte, error)
}
