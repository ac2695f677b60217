package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest un renglón (producto, cantidad) de la venta a crear.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest entrada para crear una venta.
type CreateSaleRequest struct {
	ClientID string            `json:"client_id" validate:"required"`
	Items    []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta resuelta (con datos del producto).
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// SaleResponse venta resuelta (cliente y productos poblados).
type SaleResponse struct {
	ID             string             `json:"id"`
	ClientID       string             `json:"client_id"`
	ClientName     string             `json:"client_name"`
	ClientDocument string             `json:"client_document"`
	Items          []SaleItemResponse `json:"items"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	Tax            decimal.Decimal    `json:"tax"`
	Total          decimal.Decimal    `json:"total"`
	InvoicePath    string             `json:"invoice_pdf,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
