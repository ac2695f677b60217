package pdf_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/ventas-api/internal/application/sales"
	"github.com/invorya/ventas-api/internal/domain/entity"
	"github.com/invorya/ventas-api/internal/infrastructure/pdf"
	"github.com/invorya/ventas-api/internal/infrastructure/storage"
)

func testSale() (*entity.Sale, *entity.Client, []sales.InvoiceLine) {
	sale := &entity.Sale{
		ID:        "venta-001",
		ClientID:  "cliente-001",
		Subtotal:  decimal.NewFromInt(300),
		Tax:       decimal.NewFromInt(57),
		Total:     decimal.NewFromInt(357),
		CreatedAt: time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
	}
	client := &entity.Client{
		ID:             "cliente-001",
		DocumentType:   entity.DocumentTypeCC,
		DocumentNumber: "1020304050",
		FullName:       "Ana Pérez",
		ContactNumber:  "3001234567",
		Email:          "ana@example.com",
	}
	lines := []sales.InvoiceLine{
		{
			ProductCode: "TEC-001",
			ProductName: "Teclado mecánico",
			Quantity:    3,
			UnitPrice:   decimal.NewFromInt(100),
			TotalPrice:  decimal.NewFromInt(300),
		},
	}
	return sale, client, lines
}

// La factura se escribe en <uploads>/invoices/ y la ruta devuelta es
// determinística a partir del ID de la venta.
func TestRenderInvoice_EscribeElPDF(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	renderer := pdf.NewMarotoInvoiceRenderer(store)

	sale, client, lines := testSale()
	relPath, err := renderer.RenderInvoice(context.Background(), sale, client, lines)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/invoices/factura-venta-001.pdf", relPath)

	data, err := os.ReadFile(store.Abs(relPath))
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "el archivo debe ser un PDF")
}

// Muchas líneas: maroto debe paginar sin error.
func TestRenderInvoice_VentaConMuchasLineas(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	renderer := pdf.NewMarotoInvoiceRenderer(store)

	sale, client, _ := testSale()
	lines := make([]sales.InvoiceLine, 0, 80)
	for i := 0; i < 80; i++ {
		lines = append(lines, sales.InvoiceLine{
			ProductCode: "PRD-001",
			ProductName: "Producto de prueba",
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(1000),
			TotalPrice:  decimal.NewFromInt(1000),
		})
	}

	relPath, err := renderer.RenderInvoice(context.Background(), sale, client, lines)
	require.NoError(t, err)

	info, err := os.Stat(store.Abs(relPath))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
