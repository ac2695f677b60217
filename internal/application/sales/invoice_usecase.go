package sales

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invorya/ventas-api/internal/domain"
	"github.com/invorya/ventas-api/internal/domain/repository"
)

// InvoiceUseCase resuelve la descarga de la factura PDF de una venta.
type InvoiceUseCase struct {
	saleRepo repository.SaleRepository
	store    InvoiceStore
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(saleRepo repository.SaleRepository, store InvoiceStore) *InvoiceUseCase {
	return &InvoiceUseCase{saleRepo: saleRepo, store: store}
}

// ResolveInvoice busca la venta, verifica que tenga factura registrada y que
// el archivo exista en disco.
//
// Retorna:
//   - (absPath, filename, nil)     si el PDF está disponible.
//   - domain.ErrNotFound           si la venta no existe.
//   - domain.ErrInvoiceNotFound    si la venta no tiene factura registrada o
//     la ruta registrada ya no existe en el almacenamiento.
func (uc *InvoiceUseCase) ResolveInvoice(ctx context.Context, saleID string) (absPath, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return "", "", fmt.Errorf("factura: obtener venta: %w", err)
	}
	if sale == nil {
		return "", "", domain.ErrNotFound
	}
	if sale.InvoicePath == "" {
		return "", "", domain.ErrInvoiceNotFound
	}

	absPath = uc.store.Abs(sale.InvoicePath)
	if _, statErr := os.Stat(absPath); statErr != nil {
		return "", "", domain.ErrInvoiceNotFound
	}
	return absPath, filepath.Base(absPath), nil
}
