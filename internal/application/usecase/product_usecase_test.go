package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

func createReq(name string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:      name,
		Category:  "Bebidas calientes",
		Price:     dec("10"),
		CostPrice: dec("5"),
		Quantity:  20,
	}
}

// TestCreate_AsignaIdsMonotonicos: 1 con el catálogo vacío, luego máx+1.
func TestCreate_AsignaIdsMonotonicos(t *testing.T) {
	st := newMemStore()
	uc := usecase.NewProductUseCase(st)

	first, err := uc.Create(context.Background(), createReq("Café americano"))
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID, "el primer producto recibe id 1")

	second, err := uc.Create(context.Background(), createReq("Capuchino"))
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

// TestCreate_NoReutilizaIdsTrasBorrarElMayor: la secuencia persiste, así que
// borrar el registro de id más alto no hace que su id se reutilice.
func TestCreate_NoReutilizaIdsTrasBorrarElMayor(t *testing.T) {
	st := newMemStore()
	uc := usecase.NewProductUseCase(st)
	ctx := context.Background()

	_, err := uc.Create(ctx, createReq("Café americano"))
	require.NoError(t, err)
	second, err := uc.Create(ctx, createReq("Capuchino"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, second.ID))

	third, err := uc.Create(ctx, createReq("Té chai"))
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID, "el id del producto borrado no se reutiliza")
}

// TestCreate_RechazaEntradaInvalida: campos vacíos o montos negativos.
func TestCreate_RechazaEntradaInvalida(t *testing.T) {
	st := newMemStore()
	uc := usecase.NewProductUseCase(st)
	ctx := context.Background()

	in := createReq("")
	_, err := uc.Create(ctx, in)
	require.ErrorIs(t, err, domain.ErrInvalidInput, "name vacío debe rechazarse")

	in = createReq("Café americano")
	in.Price = dec("-1")
	_, err = uc.Create(ctx, in)
	require.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo debe rechazarse")

	in = createReq("Café americano")
	in.Quantity = -5
	_, err = uc.Create(ctx, in)
	require.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo debe rechazarse")

	assert.Empty(t, st.snapshot().Products, "nada debe persistirse")
}

// TestGetByID: existente y no existente.
func TestGetByID(t *testing.T) {
	st := newMemStore()
	p := st.seedProduct(entity.Product{
		Name: "Café americano", Category: "Bebidas calientes",
		Price: dec("10"), CostPrice: dec("5"), Quantity: 20,
	})
	uc := usecase.NewProductUseCase(st)

	out, err := uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Café americano", out.Name)

	_, err = uc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestUpdate_MergePatchConservaCamposAusentes: solo cambian los campos
// presentes; el resto conserva su valor.
func TestUpdate_MergePatchConservaCamposAusentes(t *testing.T) {
	st := newMemStore()
	p := st.seedProduct(entity.Product{
		Name: "Café americano", Category: "Bebidas calientes",
		Price: dec("10"), CostPrice: dec("5"), Quantity: 20, Image: "/uploads/cafe.png",
	})
	uc := usecase.NewProductUseCase(st)

	newPrice := dec("12.50")
	out, err := uc.Update(context.Background(), p.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	assert.True(t, out.Price.Equal(dec("12.50")), "price debe actualizarse")
	assert.Equal(t, "Café americano", out.Name, "name conserva su valor")
	assert.Equal(t, "Bebidas calientes", out.Category)
	assert.True(t, out.CostPrice.Equal(dec("5")))
	assert.Equal(t, 20, out.Quantity)
	assert.Equal(t, "/uploads/cafe.png", out.Image, "la imagen no se pierde en el patch")
}

// TestUpdate_ProductoInexistente devuelve ErrNotFound con el id.
func TestUpdate_ProductoInexistente(t *testing.T) {
	st := newMemStore()
	uc := usecase.NewProductUseCase(st)

	name := "Otro"
	_, err := uc.Update(context.Background(), 42, dto.UpdateProductRequest{Name: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "42")
}

// TestDelete_ConservaVentasHistoricas: borrar el producto lo saca del
// catálogo pero deja sus eventos en el libro (referencia no propietaria).
func TestDelete_ConservaVentasHistoricas(t *testing.T) {
	st := newMemStore()
	p := st.seedProduct(entity.Product{
		Name: "Café americano", Category: "Bebidas calientes",
		Price: dec("10"), CostPrice: dec("5"), Quantity: 20,
	})
	productUC := usecase.NewProductUseCase(st)
	saleUC := usecase.NewSaleUseCase(st)
	ctx := context.Background()

	_, err := saleUC.Record(ctx, dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: p.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	require.NoError(t, productUC.Delete(ctx, p.ID))

	list, err := productUC.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "el producto ya no se lista")

	sales, err := saleUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1, "el evento histórico sobrevive al borrado")
	assert.Equal(t, p.ID, sales[0].ProductID)
}

// TestDelete_ProductoInexistente devuelve ErrNotFound.
func TestDelete_ProductoInexistente(t *testing.T) {
	st := newMemStore()
	uc := usecase.NewProductUseCase(st)

	err := uc.Delete(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestList_OrdenDeInsercion: el catálogo se lista en el orden en que se creó.
func TestList_OrdenDeInsercion(t *testing.T) {
	st := newMemStore()
	uc := usecase.NewProductUseCase(st)
	ctx := context.Background()

	names := []string{"Café americano", "Capuchino", "Té chai"}
	for _, n := range names {
		_, err := uc.Create(ctx, createReq(n))
		require.NoError(t, err)
	}

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, n := range names {
		assert.Equal(t, n, list[i].Name)
	}
}
