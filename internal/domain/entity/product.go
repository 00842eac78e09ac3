package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo con su stock actual.
// Los montos se expresan en la unidad monetaria "M". Image es una referencia
// opcional a un archivo servido bajo /uploads; vacía significa sin imagen.
// Los tags JSON definen la forma del documento persistido.
type Product struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`     // precio de venta
	CostPrice decimal.Decimal `json:"costPrice"` // precio de costo
	Quantity  int             `json:"quantity"`  // stock disponible, nunca negativo
	Image     string          `json:"image,omitempty"`
}
