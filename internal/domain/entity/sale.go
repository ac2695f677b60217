package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta. Inmutable una vez creada:
// solo InvoicePath se registra después, cuando la factura PDF queda escrita.
// Invariantes: Subtotal = Σ(TotalPrice de los ítems); Tax = Subtotal × 0.19;
// Total = Subtotal + Tax.
type Sale struct {
	ID          string
	ClientID    string
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
	InvoicePath string // ruta relativa de la factura PDF; vacío si aún no se generó
	CreatedAt   time.Time
}

// SaleItem representa una línea de una venta. UnitPrice es el precio del
// producto al momento de la venta (snapshot, no cambia si el producto cambia).
type SaleItem struct {
	ID         string
	SaleID     string
	ProductID  string
	Quantity   int64 // >= 1
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // Quantity × UnitPrice
}
