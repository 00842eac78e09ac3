package entity

import "time"

// State es el documento completo que persiste el gateway de almacenamiento:
// el catálogo de productos, el libro de ventas (append-only) y la secuencia de
// ids de cada colección. Las secuencias se persisten junto a las colecciones
// para que un id nunca se reutilice tras borrar el registro de id más alto.
type State struct {
	Products   []Product `json:"products"`
	Sales      []Sale    `json:"sales"`
	ProductSeq int       `json:"productSeq"`
	SaleSeq    int       `json:"saleSeq"`
}

// NewState devuelve un estado vacío listo para usar.
func NewState() *State {
	return &State{Products: []Product{}, Sales: []Sale{}}
}

// Normalize repara documentos legados sin secuencias: siembra cada contador
// desde el id máximo presente en su colección. También garantiza slices no
// nulos tras deserializar.
func (s *State) Normalize() {
	if s.Products == nil {
		s.Products = []Product{}
	}
	if s.Sales == nil {
		s.Sales = []Sale{}
	}
	for _, p := range s.Products {
		if p.ID > s.ProductSeq {
			s.ProductSeq = p.ID
		}
	}
	for _, v := range s.Sales {
		if v.ID > s.SaleSeq {
			s.SaleSeq = v.ID
		}
	}
}

// Product devuelve un puntero al producto con el id dado, o nil si no existe.
// El puntero apunta dentro del slice: mutarlo muta el estado.
func (s *State) Product(id int) *Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// InsertProduct asigna un id fresco de la secuencia y agrega el producto al
// final del catálogo (el orden de inserción es el orden de listado).
func (s *State) InsertProduct(p Product) Product {
	s.ProductSeq++
	p.ID = s.ProductSeq
	s.Products = append(s.Products, p)
	return p
}

// RemoveProduct elimina el producto por id. Devuelve false si no existe.
// Las ventas que lo referencian no se tocan.
func (s *State) RemoveProduct(id int) bool {
	for i := range s.Products {
		if s.Products[i].ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return true
		}
	}
	return false
}

// AppendSale registra un evento de venta con id fresco al final del libro.
func (s *State) AppendSale(productID, quantity int, date time.Time) Sale {
	s.SaleSeq++
	sale := Sale{ID: s.SaleSeq, ProductID: productID, Quantity: quantity, Date: date}
	s.Sales = append(s.Sales, sale)
	return sale
}

// Clone devuelve una copia profunda del documento. Los valores decimal son
// inmutables, así que copiar los slices alcanza.
func (s *State) Clone() *State {
	c := &State{
		Products:   make([]Product, len(s.Products)),
		Sales:      make([]Sale, len(s.Sales)),
		ProductSeq: s.ProductSeq,
		SaleSeq:    s.SaleSeq,
	}
	copy(c.Products, s.Products)
	copy(c.Sales, s.Sales)
	return c
}
