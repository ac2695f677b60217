package sales_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/ventas-api/internal/application/sales"
	"github.com/invorya/ventas-api/internal/domain"
	"github.com/invorya/ventas-api/internal/domain/entity"
)

// dirStore resuelve rutas /uploads/... contra un directorio temporal.
type dirStore struct {
	root string
}

func (s dirStore) Abs(relPath string) string {
	trimmed := strings.TrimPrefix(relPath, "/uploads/")
	return filepath.Join(s.root, filepath.FromSlash(trimmed))
}

func TestResolveInvoice_VentaInexistente(t *testing.T) {
	uc := sales.NewInvoiceUseCase(newFakeSaleRepo(), dirStore{root: t.TempDir()})

	_, _, err := uc.ResolveInvoice(context.Background(), "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Venta sin factura registrada (p. ej. el PDF falló al crearla).
func TestResolveInvoice_SinFacturaRegistrada(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.sales["v1"] = entity.Sale{ID: "v1", ClientID: testClientID}

	uc := sales.NewInvoiceUseCase(repo, dirStore{root: t.TempDir()})

	_, _, err := uc.ResolveInvoice(context.Background(), "v1")
	require.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

// La venta registra una ruta pero el archivo ya no está en disco.
func TestResolveInvoice_ArchivoDesaparecido(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.sales["v1"] = entity.Sale{ID: "v1", InvoicePath: "/uploads/invoices/factura-v1.pdf"}

	uc := sales.NewInvoiceUseCase(repo, dirStore{root: t.TempDir()})

	_, _, err := uc.ResolveInvoice(context.Background(), "v1")
	require.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestResolveInvoice_Disponible(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "invoices"), 0o755))
	pdfPath := filepath.Join(root, "invoices", "factura-v1.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.7"), 0o644))

	repo := newFakeSaleRepo()
	repo.sales["v1"] = entity.Sale{ID: "v1", InvoicePath: "/uploads/invoices/factura-v1.pdf"}

	uc := sales.NewInvoiceUseCase(repo, dirStore{root: root})

	absPath, filename, err := uc.ResolveInvoice(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, pdfPath, absPath)
	assert.Equal(t, "factura-v1.pdf", filename)
}
