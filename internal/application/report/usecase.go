// Package report implementa las agregaciones de solo lectura sobre el
// catálogo y el ledger. Cada consulta se calcula fresca desde los
// repositorios; el motor no guarda estado propio (el cache es externo y se
// invalida vía la señal de cambio de estado).
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ReportUseCase consultas derivadas del estado actual de inventario.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	pdf          LowStockPDFGenerator
	windowDays   int
}

// NewReportUseCase construye el caso de uso. windowDays <= 0 usa 7.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	pdf LowStockPDFGenerator,
	windowDays int,
) *ReportUseCase {
	if windowDays <= 0 {
		windowDays = 7
	}
	return &ReportUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		pdf:          pdf,
		windowDays:   windowDays,
	}
}

// TotalStockValue suma cantidad × precio unitario sobre todo el catálogo.
// Catálogo vacío devuelve 0.
func (uc *ReportUseCase) TotalStockValue() (decimal.Decimal, error) {
	products, err := uc.productRepo.GetAll()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity)))
	}
	return total, nil
}

// ProductsExpiringSoon devuelve los perecederos con vencimiento dentro de la
// ventana: now < vencimiento <= now + windowDays. Lo ya vencido no es
// "por vencer" y queda fuera (ver ProductsExpired).
func (uc *ReportUseCase) ProductsExpiringSoon(now time.Time) ([]*entity.Product, error) {
	products, err := uc.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	limit := now.AddDate(0, 0, uc.windowDays)
	var out []*entity.Product
	for _, p := range products {
		if p.Category != entity.CategoryPERISHABLE || p.ExpirationDate == nil {
			continue
		}
		exp := *p.ExpirationDate
		if exp.After(now) && !exp.After(limit) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ProductsExpired devuelve los perecederos cuyo vencimiento ya pasó
// (vencimiento <= now).
func (uc *ReportUseCase) ProductsExpired(now time.Time) ([]*entity.Product, error) {
	products, err := uc.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	var out []*entity.Product
	for _, p := range products {
		if p.Category != entity.CategoryPERISHABLE || p.ExpirationDate == nil {
			continue
		}
		if !p.ExpirationDate.After(now) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ProductsBelowMinimumStock devuelve los productos con cantidad < stock mínimo.
func (uc *ReportUseCase) ProductsBelowMinimumStock() ([]*entity.Product, error) {
	return uc.productRepo.GetBelowMinimumStock()
}

// MovementsBySKU devuelve el historial de movimientos de un producto.
func (uc *ReportUseCase) MovementsBySKU(sku int64, limit, offset int) (*dto.MovementListResponse, error) {
	product, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movementRepo.ListBySKU(sku, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: len(items)},
	}, nil
}

// LowStockPDF genera el PDF del reporte de bajo stock.
func (uc *ReportUseCase) LowStockPDF(now time.Time) ([]byte, error) {
	products, err := uc.productRepo.GetBelowMinimumStock()
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(products, now)
}
