package dto

import "time"

// SaleItemRequest una línea del lote de venta.
type SaleItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// RecordSaleRequest lote de venta a registrar en una sola transacción.
type RecordSaleRequest struct {
	Items []SaleItemRequest `json:"items"`
}

// SaleResponse evento de venta registrado.
type SaleResponse struct {
	ID        int       `json:"id"`
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
}
