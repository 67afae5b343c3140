package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

type fakeSignal struct {
	mu    sync.Mutex
	calls int
}

func (s *fakeSignal) OnStateChanged(context.Context) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

func (s *fakeSignal) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func fixture(t *testing.T) (*catalog.ProductUseCase, *memory.ProductRepo, *fakeSignal) {
	t.Helper()
	repo := memory.NewProductRepository()
	signal := &fakeSignal{}
	return catalog.NewProductUseCase(repo, signal), repo, signal
}

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(s string) *string { return &s }

func validStandard() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU: 1, Name: "Tornillo 3mm", Category: "STANDARD",
		UnitPrice: decimal.NewFromFloat(1.50), Quantity: 10, MinimumQuantity: 5,
	}
}

func TestCreate_ProductoEstandar(t *testing.T) {
	uc, repo, signal := fixture(t)

	before := time.Now()
	resp, err := uc.Create(context.Background(), validStandard())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.SKU)
	assert.False(t, resp.CreatedAt.Before(before), "CreatedAt lo fija el servidor")
	assert.Equal(t, 1, signal.count(), "crear dispara la señal de invalidación")

	p, _ := repo.GetBySKU(1)
	require.NotNil(t, p)
	assert.Equal(t, int64(10), p.Quantity)
}

func TestCreate_SKUDuplicado(t *testing.T) {
	uc, _, signal := fixture(t)

	_, err := uc.Create(context.Background(), validStandard())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), validStandard())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, signal.count(), "el duplicado rechazado no señala")
}

// Un PERISHABLE sin lote (o con lote solo-espacios) nunca entra al catálogo.
func TestCreate_PerecederoSinLote(t *testing.T) {
	uc, repo, signal := fixture(t)

	in := dto.CreateProductRequest{
		SKU: 2, Name: "Leche entera 1L", Category: "PERISHABLE",
		UnitPrice: decimal.NewFromFloat(2.20), Quantity: 10, MinimumQuantity: 5,
		LotNumber: "   ", ExpirationDate: timePtr(time.Now().AddDate(0, 0, 30)),
	}
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidProductFields)

	p, _ := repo.GetBySKU(2)
	assert.Nil(t, p, "el producto rechazado no se persiste")
	assert.Equal(t, 0, signal.count())
}

func TestCreate_PerecederoVencimientoPasado(t *testing.T) {
	uc, _, _ := fixture(t)

	in := dto.CreateProductRequest{
		SKU: 2, Name: "Leche entera 1L", Category: "PERISHABLE",
		UnitPrice: decimal.NewFromFloat(2.20), Quantity: 10, MinimumQuantity: 5,
		LotNumber: "L-001", ExpirationDate: timePtr(time.Now().AddDate(0, 0, -1)),
	}
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidProductFields)
}

func TestCreate_EntradaInvalida(t *testing.T) {
	uc, _, _ := fixture(t)

	cases := []dto.CreateProductRequest{
		{SKU: 0, Name: "x", Category: "STANDARD", UnitPrice: decimal.New(1, 0)},
		{SKU: 1, Name: "", Category: "STANDARD", UnitPrice: decimal.New(1, 0)},
		{SKU: 1, Name: "x", Category: "FROZEN", UnitPrice: decimal.New(1, 0)},
		{SKU: 1, Name: "x", Category: "STANDARD", UnitPrice: decimal.New(-1, 0)},
		{SKU: 1, Name: "x", Category: "STANDARD", UnitPrice: decimal.New(1, 0), Quantity: -1},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %+v", in)
	}
}

func TestGetBySKU_NoExiste(t *testing.T) {
	uc, _, _ := fixture(t)
	_, err := uc.GetBySKU(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_DevuelveTodo(t *testing.T) {
	uc, _, _ := fixture(t)
	_, err := uc.Create(context.Background(), validStandard())
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, int64(1), list.Items[0].SKU)
}

func TestUpdate_CambiaCamposYSeñala(t *testing.T) {
	uc, repo, signal := fixture(t)
	_, err := uc.Create(context.Background(), validStandard())
	require.NoError(t, err)

	newPrice := decimal.NewFromFloat(2.00)
	resp, err := uc.Update(context.Background(), 1, dto.UpdateProductRequest{
		Name:      strPtr("Tornillo 4mm"),
		UnitPrice: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tornillo 4mm", resp.Name)
	assert.True(t, resp.UnitPrice.Equal(newPrice))
	assert.Equal(t, 2, signal.count(), "crear + actualizar = dos señales")

	p, _ := repo.GetBySKU(1)
	assert.Equal(t, int64(10), p.Quantity, "la cantidad no cambia vía Update")
}

func TestUpdate_NoExiste(t *testing.T) {
	uc, _, _ := fixture(t)
	_, err := uc.Update(context.Background(), 99, dto.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_EliminaYSeñala(t *testing.T) {
	uc, repo, signal := fixture(t)
	_, err := uc.Create(context.Background(), validStandard())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), 1))
	p, _ := repo.GetBySKU(1)
	assert.Nil(t, p)
	assert.Equal(t, 2, signal.count())
}

func TestDelete_NoExiste(t *testing.T) {
	uc, _, signal := fixture(t)
	err := uc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, signal.count())
}
