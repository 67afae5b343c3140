package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

// fakePDF devuelve bytes fijos; los tests del layout real viven en el paquete pdf.
type fakePDF struct{ lastCount int }

func (f *fakePDF) Generate(products []*entity.Product, _ time.Time) ([]byte, error) {
	f.lastCount = len(products)
	return []byte("%PDF-fake"), nil
}

func timePtr(t time.Time) *time.Time { return &t }

func fixture(t *testing.T, products ...*entity.Product) (*report.ReportUseCase, *fakePDF) {
	t.Helper()
	productRepo := memory.NewProductRepository()
	movementRepo := memory.NewStockMovementRepository()
	for _, p := range products {
		require.NoError(t, productRepo.Create(p))
	}
	pdf := &fakePDF{}
	return report.NewReportUseCase(productRepo, movementRepo, pdf, 7), pdf
}

func TestTotalStockValue_CatalogoVacio(t *testing.T) {
	uc, _ := fixture(t)
	total, err := uc.TotalStockValue()
	require.NoError(t, err)
	assert.True(t, total.IsZero(), "catálogo vacío vale 0")
}

func TestTotalStockValue_SumaCantidadPorPrecio(t *testing.T) {
	uc, _ := fixture(t,
		&entity.Product{SKU: 1, Name: "A", Category: entity.CategorySTANDARD, UnitPrice: decimal.NewFromFloat(2.50), Quantity: 10},
		&entity.Product{SKU: 2, Name: "B", Category: entity.CategorySTANDARD, UnitPrice: decimal.NewFromFloat(1.25), Quantity: 4},
	)
	total, err := uc.TotalStockValue()
	require.NoError(t, err)
	// 10*2.50 + 4*1.25 = 30.00
	assert.True(t, total.Equal(decimal.NewFromFloat(30.00)), "total = %s", total)
}

// Solo SKU 3 está bajo su mínimo.
func TestProductsBelowMinimumStock(t *testing.T) {
	uc, _ := fixture(t,
		&entity.Product{SKU: 3, Name: "Bajo", Category: entity.CategorySTANDARD, UnitPrice: decimal.New(1, 0), Quantity: 2, MinimumQuantity: 5},
		&entity.Product{SKU: 4, Name: "OK", Category: entity.CategorySTANDARD, UnitPrice: decimal.New(1, 0), Quantity: 10, MinimumQuantity: 5},
	)
	list, err := uc.ProductsBelowMinimumStock()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), list[0].SKU)
}

func TestProductsExpiringSoon_VentanaDe7Dias(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := fixture(t,
		// Vence en 3 días: dentro de la ventana
		&entity.Product{SKU: 5, Name: "Por vencer", Category: entity.CategoryPERISHABLE,
			UnitPrice: decimal.New(1, 0), LotNumber: "L1", ExpirationDate: timePtr(now.AddDate(0, 0, 3))},
		// Vencido ayer: no es "por vencer"
		&entity.Product{SKU: 6, Name: "Vencido", Category: entity.CategoryPERISHABLE,
			UnitPrice: decimal.New(1, 0), LotNumber: "L2", ExpirationDate: timePtr(now.AddDate(0, 0, -1))},
		// Vence en 30 días: fuera de la ventana
		&entity.Product{SKU: 7, Name: "Lejano", Category: entity.CategoryPERISHABLE,
			UnitPrice: decimal.New(1, 0), LotNumber: "L3", ExpirationDate: timePtr(now.AddDate(0, 0, 30))},
		// STANDARD nunca aparece
		&entity.Product{SKU: 8, Name: "Seco", Category: entity.CategorySTANDARD, UnitPrice: decimal.New(1, 0)},
	)

	list, err := uc.ProductsExpiringSoon(now)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(5), list[0].SKU)
}

func TestProductsExpiringSoon_LimiteExactoIncluido(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := fixture(t,
		&entity.Product{SKU: 9, Name: "Justo", Category: entity.CategoryPERISHABLE,
			UnitPrice: decimal.New(1, 0), LotNumber: "L9", ExpirationDate: timePtr(now.AddDate(0, 0, 7))},
	)
	list, err := uc.ProductsExpiringSoon(now)
	require.NoError(t, err)
	assert.Len(t, list, 1, "vencimiento == now+7d entra en la ventana")
}

func TestProductsExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := fixture(t,
		&entity.Product{SKU: 6, Name: "Vencido", Category: entity.CategoryPERISHABLE,
			UnitPrice: decimal.New(1, 0), LotNumber: "L2", ExpirationDate: timePtr(now.AddDate(0, 0, -1))},
		&entity.Product{SKU: 5, Name: "Vigente", Category: entity.CategoryPERISHABLE,
			UnitPrice: decimal.New(1, 0), LotNumber: "L1", ExpirationDate: timePtr(now.AddDate(0, 0, 3))},
	)
	list, err := uc.ProductsExpired(now)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(6), list[0].SKU)
}

func TestMovementsBySKU_ProductoInexistente(t *testing.T) {
	uc, _ := fixture(t)
	_, err := uc.MovementsBySKU(99, 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLowStockPDF_DelegaConLosProductosBajoMinimo(t *testing.T) {
	uc, pdf := fixture(t,
		&entity.Product{SKU: 3, Name: "Bajo", Category: entity.CategorySTANDARD, UnitPrice: decimal.New(1, 0), Quantity: 2, MinimumQuantity: 5},
		&entity.Product{SKU: 4, Name: "OK", Category: entity.CategorySTANDARD, UnitPrice: decimal.New(1, 0), Quantity: 10, MinimumQuantity: 5},
	)
	data, err := uc.LowStockPDF(time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, 1, pdf.lastCount, "solo los productos bajo mínimo van al PDF")
}
