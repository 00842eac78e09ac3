package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// LowStockThreshold umbral de presentación: restante <= umbral marca la fila
// para atención del operador. No es un invariante del dominio.
const LowStockThreshold = 10

// ReportUseCase lado de lectura: deriva el reporte de ventas desde el catálogo
// y el libro. Función pura del estado actual, sin caché ni incrementales; se
// recalcula completo en cada consulta (el volumen de datos es pequeño por
// diseño).
type ReportUseCase struct {
	store repository.StateStore
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(store repository.StateStore) *ReportUseCase {
	return &ReportUseCase{store: store}
}

// Build produce una fila por producto del catálogo, en orden de inserción.
// sold suma las cantidades de los eventos cuyo productId coincide (cero si no
// hay ventas); las ventas huérfanas (producto borrado) no aportan a ninguna
// fila. revenue = sold*price y profit = sold*(price-costPrice), exactos en
// decimal.
func (uc *ReportUseCase) Build(ctx context.Context) ([]dto.ReportRow, error) {
	var rows []dto.ReportRow
	err := uc.store.View(ctx, func(s *entity.State) error {
		soldByProduct := make(map[int]int, len(s.Products))
		for _, v := range s.Sales {
			soldByProduct[v.ProductID] += v.Quantity
		}
		rows = make([]dto.ReportRow, 0, len(s.Products))
		for i := range s.Products {
			p := &s.Products[i]
			sold := soldByProduct[p.ID]
			soldDec := decimal.NewFromInt(int64(sold))
			rows = append(rows, dto.ReportRow{
				ProductID: p.ID,
				Name:      p.Name,
				Category:  p.Category,
				Price:     p.Price,
				CostPrice: p.CostPrice,
				Sold:      sold,
				Remaining: p.Quantity,
				Revenue:   soldDec.Mul(p.Price),
				Profit:    soldDec.Mul(p.Price.Sub(p.CostPrice)),
				LowStock:  p.Quantity <= LowStockThreshold,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
