package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// TestBuild_EscenarioCafe: stock inicial 20, venta de 5 -> sold 5,
// remaining 15, revenue 50, profit 25.
func TestBuild_EscenarioCafe(t *testing.T) {
	st := newMemStore()
	coffee := st.seedProduct(entity.Product{
		Name: "Coffee", Category: "Bebidas calientes",
		CostPrice: dec("5"), Price: dec("10"), Quantity: 20,
	})
	saleUC := usecase.NewSaleUseCase(st)
	reportUC := usecase.NewReportUseCase(st)
	ctx := context.Background()

	_, err := saleUC.Record(ctx, dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: coffee.ID, Quantity: 5}},
	})
	require.NoError(t, err)

	rows, err := reportUC.Build(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, coffee.ID, r.ProductID)
	assert.Equal(t, 5, r.Sold)
	assert.Equal(t, 15, r.Remaining)
	assert.True(t, r.Revenue.Equal(dec("50")), "revenue = sold*price, obtuvo %s", r.Revenue)
	assert.True(t, r.Profit.Equal(dec("25")), "profit = sold*(price-costPrice), obtuvo %s", r.Profit)
}

// TestBuild_ProductoSinVentasApareceEnCero: los productos sin ventas no se
// omiten, aparecen con sold 0.
func TestBuild_ProductoSinVentasApareceEnCero(t *testing.T) {
	st := newMemStore()
	p := st.seedProduct(entity.Product{
		Name: "Té chai", Category: "Bebidas calientes",
		CostPrice: dec("4"), Price: dec("9"), Quantity: 0,
	})
	uc := usecase.NewReportUseCase(st)

	rows, err := uc.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1, "un producto con stock cero sigue reportándose")

	r := rows[0]
	assert.Equal(t, p.ID, r.ProductID)
	assert.Equal(t, 0, r.Sold)
	assert.Equal(t, 0, r.Remaining)
	assert.True(t, r.Revenue.IsZero())
	assert.True(t, r.Profit.IsZero())
}

// TestBuild_IgnoraVentasHuerfanas: eventos de un producto borrado no aportan
// a ninguna fila ni producen error.
func TestBuild_IgnoraVentasHuerfanas(t *testing.T) {
	st := newMemStore()
	coffee := st.seedProduct(entity.Product{
		Name: "Coffee", Category: "Bebidas calientes",
		CostPrice: dec("5"), Price: dec("10"), Quantity: 20,
	})
	productUC := usecase.NewProductUseCase(st)
	saleUC := usecase.NewSaleUseCase(st)
	reportUC := usecase.NewReportUseCase(st)
	ctx := context.Background()

	_, err := saleUC.Record(ctx, dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: coffee.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.NoError(t, productUC.Delete(ctx, coffee.ID))

	other := st.seedProduct(entity.Product{
		Name: "Croissant", Category: "Panadería",
		CostPrice: dec("3.50"), Price: dec("8"), Quantity: 10,
	})

	rows, err := reportUC.Build(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1, "solo los productos vigentes tienen fila")
	assert.Equal(t, other.ID, rows[0].ProductID)
	assert.Equal(t, 0, rows[0].Sold, "la venta huérfana no se suma a otro producto")
}

// TestBuild_FormulasExactasEnDecimal: los montos con centavos se agregan sin
// error de redondeo.
func TestBuild_FormulasExactasEnDecimal(t *testing.T) {
	st := newMemStore()
	p := st.seedProduct(entity.Product{
		Name: "Torta de zanahoria", Category: "Panadería",
		CostPrice: dec("5.25"), Price: dec("10.50"), Quantity: 10,
	})
	st.mustAppendSales(p.ID, 3)
	uc := usecase.NewReportUseCase(st)

	rows, err := uc.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].Revenue.Equal(dec("31.50")), "3 * 10.50 = 31.50, obtuvo %s", rows[0].Revenue)
	assert.True(t, rows[0].Profit.Equal(dec("15.75")), "3 * (10.50-5.25) = 15.75, obtuvo %s", rows[0].Profit)
}

// TestBuild_OrdenDeInsercion: las filas salen en el orden del catálogo, sin
// reordenar por ventas.
func TestBuild_OrdenDeInsercion(t *testing.T) {
	st := newMemStore()
	a := st.seedProduct(entity.Product{Name: "A", Category: "c", CostPrice: dec("1"), Price: dec("2"), Quantity: 5})
	b := st.seedProduct(entity.Product{Name: "B", Category: "c", CostPrice: dec("1"), Price: dec("2"), Quantity: 5})
	st.mustAppendSales(b.ID, 4) // B vende más, pero no se reordena
	uc := usecase.NewReportUseCase(st)

	rows, err := uc.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, a.ID, rows[0].ProductID)
	assert.Equal(t, b.ID, rows[1].ProductID)
}

// TestBuild_MarcaStockBajo: restante <= 10 marca la fila; 11 no.
func TestBuild_MarcaStockBajo(t *testing.T) {
	st := newMemStore()
	st.seedProduct(entity.Product{Name: "Bajo", Category: "c", CostPrice: dec("1"), Price: dec("2"), Quantity: 10})
	st.seedProduct(entity.Product{Name: "Alto", Category: "c", CostPrice: dec("1"), Price: dec("2"), Quantity: 11})
	uc := usecase.NewReportUseCase(st)

	rows, err := uc.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].LowStock, "restante 10 es stock bajo")
	assert.False(t, rows[1].LowStock, "restante 11 no es stock bajo")
}

// mustAppendSales registra n unidades vendidas directo en el libro, sin pasar
// por el caso de uso (no descuenta stock: solo interesa la agregación).
func (st *memStore) mustAppendSales(productID, units int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.AppendSale(productID, units, time.Now().UTC())
}
