// Package pdf genera la representación PDF del reporte de productos bajo
// stock mínimo usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Categoría | Stock | Mínimo          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL de productos bajo mínimo                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.LowStockPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.LowStockPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(products []*entity.Product, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock mínimo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Productos bajo stock mínimo", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("SKU", header)),
		col.New(4).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Categoría", header)),
		col.New(2).Add(text.New("Stock", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary})),
		col.New(2).Add(text.New("Mínimo", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary})),
	)
}

func productRow(p *entity.Product) core.Row {
	cell := props.Text{Size: 8}
	num := props.Text{Size: 8, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.SKU), cell)),
		col.New(4).Add(text.New(p.Name, cell)),
		col.New(2).Add(text.New(string(p.Category), cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.Quantity), num)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.MinimumQuantity), num)),
	)
}

func totalRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d producto(s) bajo el mínimo", total), props.Text{
				Size: 9, Style: fontstyle.Bold, Align: align.Right,
			}),
		),
	)
}
