package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Llega como multipart
// (los campos los arma el handler desde el form); ImagePath lo asigna el
// handler tras guardar la imagen subida.
type CreateProductRequest struct {
	Code        string          `json:"code" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"required"`
	Quantity    int64           `json:"quantity" validate:"min=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ImagePath   string          `json:"-"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// Quantity aquí reemplaza el valor almacenado (corrección manual); para sumar
// stock está PUT /products/:id/stock.
type UpdateProductRequest struct {
	Code        *string          `json:"code" validate:"omitempty,min=1,max=100"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Quantity    *int64           `json:"quantity" validate:"omitempty,min=0"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	ImagePath   string           `json:"-"`
}

// AddStockRequest entrada para el ajuste manual de stock: suma Quantity
// unidades al inventario. Debe ser positivo.
type AddStockRequest struct {
	Quantity int64 `json:"quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ImagePath   string          `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
