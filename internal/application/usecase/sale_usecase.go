package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// SaleUseCase motor de ventas: valida el lote completo contra el stock previo
// a la transacción y lo aplica todo o nada dentro de un solo ciclo Update del
// gateway, de modo que catálogo y libro de ventas se persisten juntos.
type SaleUseCase struct {
	store repository.StateStore
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(store repository.StateStore) *SaleUseCase {
	return &SaleUseCase{store: store}
}

// Record registra un lote de venta.
//
// Pase de validación: toda línea se compara contra el stock previo a la
// transacción, nunca contra descuentos parciales del propio lote; si un mismo
// producto aparece en varias líneas, además se verifica que la suma de sus
// cantidades no exceda el stock, de modo que la cantidad nunca quede negativa.
//
// Pase de aplicación: solo corre si el lote completo validó. Descuenta stock
// y agrega un evento inmutable por línea, en el orden de entrada, con la misma
// fecha de registro para todo el lote.
func (uc *SaleUseCase) Record(ctx context.Context, in dto.RecordSaleRequest) ([]dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: el lote de venta está vacío", domain.ErrInvalidInput)
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity debe ser mayor que cero (producto %d)", domain.ErrInvalidInput, it.ProductID)
		}
	}

	var out []dto.SaleResponse
	err := uc.store.Update(ctx, func(s *entity.State) error {
		requested := make(map[int]int, len(in.Items))
		for _, it := range in.Items {
			p := s.Product(it.ProductID)
			if p == nil {
				return fmt.Errorf("%w: producto %d", domain.ErrNotFound, it.ProductID)
			}
			if p.Quantity < it.Quantity {
				return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, p.Name)
			}
			requested[it.ProductID] += it.Quantity
			if p.Quantity < requested[it.ProductID] {
				return fmt.Errorf("%w: %s (lote combinado)", domain.ErrInsufficientStock, p.Name)
			}
		}

		now := time.Now().UTC()
		out = make([]dto.SaleResponse, 0, len(in.Items))
		for _, it := range in.Items {
			p := s.Product(it.ProductID)
			p.Quantity -= it.Quantity
			sale := s.AppendSale(p.ID, it.Quantity, now)
			out = append(out, toSaleResponse(sale))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve el libro de ventas en orden de registro.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	var out []dto.SaleResponse
	err := uc.store.View(ctx, func(s *entity.State) error {
		out = make([]dto.SaleResponse, 0, len(s.Sales))
		for _, v := range s.Sales {
			out = append(out, toSaleResponse(v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toSaleResponse(v entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		Quantity:  v.Quantity,
		Date:      v.Date,
	}
}
