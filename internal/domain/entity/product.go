package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity solo se modifica por ventas (descuento) o por ajustes manuales de stock;
// nunca queda negativa.
type Product struct {
	ID          string
	Code        string // código único del producto
	Name        string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	ImagePath   string // ruta relativa bajo /uploads
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
