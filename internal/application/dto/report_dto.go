package dto

import "github.com/shopspring/decimal"

// ReportRow fila derivada del reporte de ventas: vendidos, restante, ingresos
// y utilidad por producto. No se almacena; se recalcula en cada consulta.
// LowStock es una conveniencia de presentación (restante <= umbral).
type ReportRow struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"costPrice"`
	Sold      int             `json:"sold"`
	Remaining int             `json:"remaining"`
	Revenue   decimal.Decimal `json:"revenue"`
	Profit    decimal.Decimal `json:"profit"`
	LowStock  bool            `json:"lowStock"`
}
