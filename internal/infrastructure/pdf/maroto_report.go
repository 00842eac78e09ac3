// Package pdf genera la versión imprimible del reporte de ventas para el
// operador usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto | Categoría | Precio | Vendidos |      │
//	│         Restante | Ingresos | Utilidad                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: vendidos / restante / ingresos / utilidad         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 70, Blue: 0}
)

// ReportGenerator genera el PDF del reporte de ventas.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// Generate produce el PDF con una fila por producto y la fila de totales, y
// devuelve sus bytes.
func (g *ReportGenerator) Generate(_ context.Context, appName string, rows []dto.ReportRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(appName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for i, r := range rows {
		m.AddRows(reportRow(i+1, r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y fecha de generación (der).
func headerRow(appName string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de ventas e inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Precio", 1, align.Right),
		h("Vend.", 1, align.Right),
		h("Rest.", 1, align.Right),
		h("Ingresos", 2, align.Right),
		h("Utilidad", 1, align.Right),
	)
}

// reportRow: una fila por producto. El restante en stock bajo se resalta.
func reportRow(n int, r dto.ReportRow) core.Row {
	remainingColor := colorGray
	if r.LowStock {
		remainingColor = colorAlert
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		cell(strconv.Itoa(n), 1, align.Center),
		cell(r.Name, 3, align.Left),
		cell(r.Category, 2, align.Left),
		cell("M "+r.Price.StringFixed(2), 1, align.Right),
		cell(strconv.Itoa(r.Sold), 1, align.Right),
		col.New(1).Add(text.New(strconv.Itoa(r.Remaining), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1, Color: remainingColor,
		})),
		cell("M "+r.Revenue.StringFixed(2), 2, align.Right),
		cell("M "+r.Profit.StringFixed(2), 1, align.Right),
	)
}

// totalsRow: agregados de todo el reporte, como la fila de totales de la tabla
// en pantalla.
func totalsRow(rows []dto.ReportRow) core.Row {
	var sold, remaining int
	revenue := decimal.Zero
	profit := decimal.Zero
	for _, r := range rows {
		sold += r.Sold
		remaining += r.Remaining
		revenue = revenue.Add(r.Revenue)
		profit = profit.Add(r.Profit)
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		cell("Totales", 7, align.Right),
		cell(strconv.Itoa(sold), 1, align.Right),
		col.New(1).Add(text.New(strconv.Itoa(remaining), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
		cell("M "+revenue.StringFixed(2), 2, align.Right),
		cell("M "+profit.StringFixed(2), 1, align.Right),
	)
}
