package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. La capa HTTP ya parseó
// los numéricos del form multipart y almacenó la imagen (Image trae la
// referencia /uploads/... o vacío).
type CreateProductRequest struct {
	Name      string
	Category  string
	Price     decimal.Decimal
	CostPrice decimal.Decimal
	Quantity  int
	Image     string
}

// UpdateProductRequest entrada para actualizar un producto: merge-patch, solo
// los campos no nil se modifican.
type UpdateProductRequest struct {
	Name      *string
	Category  *string
	Price     *decimal.Decimal
	CostPrice *decimal.Decimal
	Quantity  *int
	Image     *string
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	CostPrice decimal.Decimal `json:"costPrice"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}
