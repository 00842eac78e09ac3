// seed genera un db.json de ejemplo con un catálogo pequeño de cafetería para
// desarrollo local.
//
// Uso: go run ./cmd/seed [ruta/db.json]
// Por defecto escribe db.json en el directorio actual. No sobreescribe un
// documento existente.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

func main() {
	path := "db.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "%s ya existe, no se sobreescribe\n", path)
		os.Exit(1)
	}

	state := entity.NewState()
	for _, p := range sampleCatalog() {
		state.InsertProduct(p)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "serializar estado: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escribir %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("%s creado con %d productos\n", path, len(state.Products))
}

func sampleCatalog() []entity.Product {
	mk := func(name, category string, cost, price string, qty int) entity.Product {
		return entity.Product{
			Name:      name,
			Category:  category,
			CostPrice: decimal.RequireFromString(cost),
			Price:     decimal.RequireFromString(price),
			Quantity:  qty,
		}
	}
	return []entity.Product{
		mk("Café americano", "Bebidas calientes", "5", "10", 50),
		mk("Capuchino", "Bebidas calientes", "7", "14", 40),
		mk("Té chai", "Bebidas calientes", "4", "9", 30),
		mk("Jugo de naranja", "Bebidas frías", "6", "12", 25),
		mk("Croissant", "Panadería", "3.50", "8", 20),
		mk("Torta de zanahoria", "Panadería", "4.25", "11.50", 12),
		mk("Sándwich de pollo", "Comidas", "9", "18", 15),
	}
}
