package entity

import "time"

// Sale representa un evento de venta: unidades vendidas de un producto en un
// instante dado. Es inmutable una vez registrado y sobrevive al borrado del
// producto (referencia no propietaria: el reporte ignora las huérfanas).
type Sale struct {
	ID        int       `json:"id"`
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
}
