package repository

import "github.com/invorya/ventas-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Las ventas son inmutables: no hay Update ni Delete; solo se registra la
// ruta de la factura PDF una vez generada.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	List(limit, offset int) ([]*entity.Sale, error)
	UpdateInvoicePath(id, invoicePath string) error
}
