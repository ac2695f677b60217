package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/invorya/ventas-api/internal/domain/entity"
	"github.com/invorya/ventas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos de
// productos y ventas atados a ella. Si fn retorna error el caller hace
// rollback, revirtiendo también los descuentos de stock ya aplicados.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// InvoiceLine línea de venta ya resuelta (con datos del producto) para la factura.
type InvoiceLine struct {
	ProductCode string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// InvoiceRenderer genera la factura PDF de una venta, la escribe en el
// directorio de facturas (creándolo si no existe) y devuelve la ruta relativa.
// La implementación actual (maroto) es síncrona; detrás de esta interfaz se
// puede cambiar por un job asíncrono sin tocar el caso de uso de ventas.
type InvoiceRenderer interface {
	RenderInvoice(ctx context.Context, sale *entity.Sale, client *entity.Client, lines []InvoiceLine) (string, error)
}

// InvoiceStore resuelve rutas relativas de facturas a rutas absolutas en disco.
type InvoiceStore interface {
	Abs(relPath string) string
}
