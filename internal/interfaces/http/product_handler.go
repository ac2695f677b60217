package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/invorya/ventas-api/internal/application/dto"
	"github.com/invorya/ventas-api/internal/application/usecase"
	"github.com/invorya/ventas-api/internal/domain"
	"github.com/invorya/ventas-api/internal/infrastructure/storage"
	"github.com/invorya/ventas-api/pkg/validator"
)

// ProductHandler maneja las peticiones HTTP para Product. Create y Update
// reciben multipart/form-data porque traen la imagen del producto.
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	store *storage.LocalStore
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, store *storage.LocalStore) *ProductHandler {
	return &ProductHandler{uc: uc, store: store}
}

// Create crea un producto con su imagen. POST /api/products (multipart)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in := dto.CreateProductRequest{
		Code:        strings.TrimSpace(c.FormValue("code")),
		Name:        strings.TrimSpace(c.FormValue("name")),
		Description: strings.TrimSpace(c.FormValue("description")),
	}

	qty, err := strconv.ParseInt(c.FormValue("quantity", "0"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser un entero"})
	}
	in.Quantity = qty

	price, err := decimal.NewFromString(c.FormValue("unit_price", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unit_price debe ser numérico"})
	}
	in.UnitPrice = price

	if fieldErrs := validator.ValidateStruct(in); len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(fieldErrs)})
	}

	// La imagen es obligatoria al crear
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la imagen del producto es requerida"})
	}
	relPath, err := h.saveImage(c, file)
	if err != nil {
		if errors.Is(err, errBadImageExt) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errBadImageExt.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo guardar la imagen"})
	}
	in.ImagePath = relPath

	out, err := h.uc.Create(in)
	if err != nil {
		_ = h.store.Remove(relPath)
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad y precio no pueden ser negativos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un producto con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un producto. GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List lista productos paginados. GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update actualiza un producto; la imagen nueva es opcional y reemplaza a la
// anterior. PUT /api/products/:id (multipart)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest

	if v := c.FormValue("code"); v != "" {
		v = strings.TrimSpace(v)
		in.Code = &v
	}
	if v := c.FormValue("name"); v != "" {
		v = strings.TrimSpace(v)
		in.Name = &v
	}
	if v := c.FormValue("description"); v != "" {
		v = strings.TrimSpace(v)
		in.Description = &v
	}
	if v := c.FormValue("quantity"); v != "" {
		qty, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser un entero"})
		}
		in.Quantity = &qty
	}
	if v := c.FormValue("unit_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unit_price debe ser numérico"})
		}
		in.UnitPrice = &price
	}
	if fieldErrs := validator.ValidateStruct(in); len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(fieldErrs)})
	}

	if file, err := c.FormFile("image"); err == nil {
		relPath, err := h.saveImage(c, file)
		if err != nil {
			if errors.Is(err, errBadImageExt) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errBadImageExt.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo guardar la imagen"})
		}
		in.ImagePath = relPath
	}

	out, err := h.uc.Update(id, in)
	if err != nil {
		_ = h.store.Remove(in.ImagePath)
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad y precio no pueden ser negativos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un producto con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		_ = h.store.Remove(in.ImagePath)
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// AddStock suma unidades al inventario. PUT /api/products/:id/stock
func (h *ProductHandler) AddStock(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddStock(id, in.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad a agregar debe ser mayor que cero"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete elimina un producto y su imagen. DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

var errBadImageExt = errors.New("solo se permiten imágenes jpg, jpeg o png")

// saveImage valida la extensión y guarda la imagen subida en el store local.
// Devuelve la ruta relativa pública.
func (h *ProductHandler) saveImage(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !storage.AllowedImageExt(ext) {
		return "", errBadImageExt
	}
	relPath := h.store.ImageRelPath(h.store.NewImageName(file.Filename))
	if err := c.SaveFile(file, h.store.Abs(relPath)); err != nil {
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	return relPath, nil
}
