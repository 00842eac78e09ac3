package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/infrastructure/uploads"
)

// ProductHandler maneja las peticiones HTTP del catálogo. Recibe forms
// multipart (los mismos del cliente original): parsea los numéricos aquí y
// almacena la imagen antes de invocar el caso de uso.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	uploads *uploads.Storage
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, up *uploads.Storage) *ProductHandler {
	return &ProductHandler{uc: uc, uploads: up}
}

// List devuelve el catálogo completo.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create crea un producto desde un form multipart: name, category, price,
// costPrice, quantity y opcionalmente un archivo image.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	price, err := parseAmount("price", c.FormValue("price"))
	if err != nil {
		return writeError(c, err)
	}
	costPrice, err := parseAmount("costPrice", c.FormValue("costPrice"))
	if err != nil {
		return writeError(c, err)
	}
	quantity, err := parseQuantity("quantity", c.FormValue("quantity"))
	if err != nil {
		return writeError(c, err)
	}

	image := ""
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		ref, err := h.uploads.Save(fh)
		if err != nil {
			return writeError(c, err)
		}
		image = ref
	}

	out, err := h.uc.Create(c.Context(), dto.CreateProductRequest{
		Name:      strings.TrimSpace(c.FormValue("name")),
		Category:  strings.TrimSpace(c.FormValue("category")),
		Price:     price,
		CostPrice: costPrice,
		Quantity:  quantity,
		Image:     image,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update aplica un merge-patch desde el form: un campo vacío o ausente
// conserva el valor anterior (misma semántica del cliente original).
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return writeError(c, fmt.Errorf("%w: id inválido", domain.ErrInvalidInput))
	}

	var in dto.UpdateProductRequest
	if v := strings.TrimSpace(c.FormValue("name")); v != "" {
		in.Name = &v
	}
	if v := strings.TrimSpace(c.FormValue("category")); v != "" {
		in.Category = &v
	}
	if v := c.FormValue("price"); v != "" {
		price, err := parseAmount("price", v)
		if err != nil {
			return writeError(c, err)
		}
		in.Price = &price
	}
	if v := c.FormValue("costPrice"); v != "" {
		costPrice, err := parseAmount("costPrice", v)
		if err != nil {
			return writeError(c, err)
		}
		in.CostPrice = &costPrice
	}
	if v := c.FormValue("quantity"); v != "" {
		quantity, err := parseQuantity("quantity", v)
		if err != nil {
			return writeError(c, err)
		}
		in.Quantity = &quantity
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		ref, err := h.uploads.Save(fh)
		if err != nil {
			return writeError(c, err)
		}
		in.Image = &ref
	}

	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un producto; sus ventas históricas quedan en el libro.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return writeError(c, fmt.Errorf("%w: id inválido", domain.ErrInvalidInput))
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto eliminado"})
}

// parseAmount parsea un monto no negativo del form; lo no parseable es error
// de validación, nunca un pánico ni una coerción silenciosa.
func parseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s debe ser numérico", domain.ErrInvalidInput, field)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, field)
	}
	return d, nil
}

func parseQuantity(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s debe ser un entero", domain.ErrInvalidInput, field)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, field)
	}
	return n, nil
}
