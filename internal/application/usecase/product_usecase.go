package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo. Junto con SaleUseCase es el
// único escritor del estado; el stock solo se descuenta vía ventas.
type ProductUseCase struct {
	store repository.StateStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.StateStore) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// List devuelve el catálogo completo en orden de inserción.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	err := uc.store.View(ctx, func(s *entity.State) error {
		out = make([]dto.ProductResponse, 0, len(s.Products))
		for i := range s.Products {
			out = append(out, toProductResponse(&s.Products[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.store.View(ctx, func(s *entity.State) error {
		p := s.Product(id)
		if p == nil {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}
		resp := toProductResponse(p)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea un producto con id fresco de la secuencia (nunca se reutiliza
// un id, ni siquiera tras borrar el registro más alto).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, fmt.Errorf("%w: name y category son requeridos", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() || in.CostPrice.IsNegative() || in.Quantity < 0 {
		return nil, fmt.Errorf("%w: price, costPrice y quantity no pueden ser negativos", domain.ErrInvalidInput)
	}
	var out dto.ProductResponse
	err := uc.store.Update(ctx, func(s *entity.State) error {
		created := s.InsertProduct(entity.Product{
			Name:      in.Name,
			Category:  in.Category,
			Price:     in.Price,
			CostPrice: in.CostPrice,
			Quantity:  in.Quantity,
			Image:     in.Image,
		})
		out = toProductResponse(&created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update aplica un merge-patch: solo los campos presentes cambian, los
// ausentes conservan su valor anterior.
func (uc *ProductUseCase) Update(ctx context.Context, id int, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.CostPrice != nil && in.CostPrice.IsNegative() {
		return nil, fmt.Errorf("%w: costPrice no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	var out dto.ProductResponse
	err := uc.store.Update(ctx, func(s *entity.State) error {
		p := s.Product(id)
		if p == nil {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.CostPrice != nil {
			p.CostPrice = *in.CostPrice
		}
		if in.Quantity != nil {
			p.Quantity = *in.Quantity
		}
		if in.Image != nil {
			p.Image = *in.Image
		}
		out = toProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina el producto por id. Las ventas históricas que lo referencian
// quedan huérfanas; el reporte las ignora.
func (uc *ProductUseCase) Delete(ctx context.Context, id int) error {
	return uc.store.Update(ctx, func(s *entity.State) error {
		if !s.RemoveProduct(id) {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}
		return nil
	})
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		CostPrice: p.CostPrice,
		Quantity:  p.Quantity,
		Image:     p.Image,
	}
}
