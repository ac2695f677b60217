// Package pdf implementa la generación de la factura de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: FACTURA DE VENTA                                   │
//	│  EMISOR: razón social + NIT + dirección + teléfono          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  N° Factura (= ID de la venta) + Fecha/Hora                 │
//	│  CLIENTE: nombre, documento, contacto, email                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Valor Unitario | Valor Total      │
//	│         (salto de página automático)                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA (19%) / TOTAL   (a la derecha)     │
//	│  PIE: Gracias por su compra                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/invorya/ventas-api/internal/application/sales"
	"github.com/invorya/ventas-api/internal/domain/entity"
	"github.com/invorya/ventas-api/internal/infrastructure/storage"
)

// ── Datos del emisor (bloque estático de la factura) ──────────────────────────

const (
	companyName    = "Sistema de Gestión de Ventas"
	companyNIT     = "NIT: 900.123.456-7"
	companyAddress = "Dirección: Calle Principal #123"
	companyPhone   = "Teléfono: (601) 123-4567"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ sales.InvoiceRenderer = (*MarotoInvoiceRenderer)(nil)

// MarotoInvoiceRenderer implementa sales.InvoiceRenderer usando Maroto v2 y
// escribe el PDF en el directorio de facturas del LocalStore.
type MarotoInvoiceRenderer struct {
	store *storage.LocalStore
}

// NewMarotoInvoiceRenderer construye el renderer.
func NewMarotoInvoiceRenderer(store *storage.LocalStore) *MarotoInvoiceRenderer {
	return &MarotoInvoiceRenderer{store: store}
}

// RenderInvoice genera el PDF de la venta, lo escribe en
// <uploads>/invoices/factura-<saleID>.pdf y devuelve la ruta relativa.
func (r *MarotoInvoiceRenderer) RenderInvoice(
	_ context.Context,
	sale *entity.Sale,
	client *entity.Client,
	lines []sales.InvoiceLine,
) (string, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de Venta", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(companyRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(invoiceInfoRow(sale))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de productos; maroto pagina solo cuando se agota el alto de página
	m.AddRows(tableHeaderRow())
	for _, tr := range tableLineRows(lines) {
		m.AddRows(tr)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))

	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New("Gracias por su compra", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 4,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return "", fmt.Errorf("pdf: generar documento: %w", err)
	}

	dir, err := r.store.EnsureInvoicesDir()
	if err != nil {
		return "", err
	}
	relPath := r.store.InvoiceRelPath(sale.ID)
	absPath := filepath.Join(dir, filepath.Base(relPath))
	if err := os.WriteFile(absPath, doc.GetBytes(), 0o644); err != nil {
		return "", fmt.Errorf("pdf: escribir factura: %w", err)
	}
	return relPath, nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow() core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("FACTURA DE VENTA", props.Text{
			Style: fontstyle.Bold, Size: 16, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}),
	))
}

// companyRow: bloque estático del emisor, centrado como en la papelería.
func companyRow() core.Row {
	return row.New(22).Add(col.New(12).Add(
		text.New(companyName, props.Text{Size: 10, Align: align.Center, Top: 1}),
		text.New(companyNIT, props.Text{Size: 8, Align: align.Center, Top: 7, Color: colorGray}),
		text.New(companyAddress, props.Text{Size: 8, Align: align.Center, Top: 12, Color: colorGray}),
		text.New(companyPhone, props.Text{Size: 8, Align: align.Center, Top: 17, Color: colorGray}),
	))
}

// invoiceInfoRow: número de factura (ID de la venta) y fecha/hora de creación.
func invoiceInfoRow(sale *entity.Sale) core.Row {
	return row.New(16).Add(col.New(12).Add(
		text.New("Factura No: "+sale.ID, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
		text.New("Fecha: "+sale.CreatedAt.Format("02/01/2006"), props.Text{Size: 8, Top: 8, Color: colorGray}),
		text.New("Hora: "+sale.CreatedAt.Format("15:04:05"), props.Text{Size: 8, Top: 12, Color: colorGray}),
	))
}

// clientRow: datos del cliente.
func clientRow(client *entity.Client) core.Row {
	name, document, contact, email := "—", "—", "—", "—"
	if client != nil {
		name = client.FullName
		document = client.DocumentType + " " + client.DocumentNumber
		contact = client.ContactNumber
		email = client.Email
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("DATOS DEL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Documento: %s   |   Contacto: %s   |   Email: %s",
				document, contact, email,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Valor Unitario", 2, align.Right),
		h("Valor Total", 3, align.Right),
	)
}

// tableLineRows: una fila por línea de la venta.
func tableLineRows(lines []sales.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := l.ProductName
		if l.ProductCode != "" {
			name = l.ProductName + " (" + l.ProductCode + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(l.UnitPrice.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(l.TotalPrice.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(sale *entity.Sale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3), // espacio izquierdo
		col.New(3).Add(
			label("Subtotal:"),
			label("IVA (19%):"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(sale.Subtotal.StringFixed(2))),
			value("$"+formatMoney(sale.Tax.StringFixed(2))),
			grandValue("$"+formatMoney(sale.Total.StringFixed(2))),
		),
		col.New(3), // espacio derecho
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney agrega puntos de miles a un monto con decimales, en formato
// colombiano. Ej: "25000.00" → "25.000,00", "1000000.50" → "1.000.000,50"
func formatMoney(s string) string {
	intPart, decPart, found := strings.Cut(s, ".")
	n := len(intPart)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i, c := range []byte(intPart) {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, c)
		}
		intPart = string(buf)
	}
	if !found {
		return intPart
	}
	return intPart + "," + decPart
}
