package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/ventas-api/internal/application/dto"
	"github.com/invorya/ventas-api/internal/domain"
	"github.com/invorya/ventas-api/internal/domain/entity"
	"github.com/invorya/ventas-api/internal/domain/repository"
)

// TaxRate IVA aplicado al subtotal de toda venta (19%).
var TaxRate = decimal.NewFromFloat(0.19)

// CreateSaleUseCase crea una venta descontando inventario en una sola
// transacción y genera la factura PDF al confirmar.
type CreateSaleUseCase struct {
	txRunner    TxRunner
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	renderer    InvoiceRenderer
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	renderer InvoiceRenderer,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:    txRunner,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		renderer:    renderer,
	}
}

// CreateSale procesa los renglones en el orden recibido: por cada uno bloquea
// la fila del producto, valida stock, descuenta y toma el snapshot del precio
// unitario; luego calcula subtotal, IVA (19%) y total y persiste cabecera y
// líneas. Todo dentro de una transacción: el primer renglón que falle
// (ErrProductNotFound, ErrInsufficientStock) revierte la venta completa,
// incluidos los descuentos ya aplicados.
//
// Tras el Commit genera la factura PDF y registra su ruta en la venta. Si la
// generación falla la venta ya quedó persistida: se retorna ErrRenderFailed
// sin enmascarar el estado.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Validar cliente (solo lectura, fuera de la tx)
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ClientID:  client.ID,
		CreatedAt: now,
	}
	items := make([]*entity.SaleItem, 0, len(in.Items))
	lines := make([]InvoiceLine, 0, len(in.Items))

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		var subtotal decimal.Decimal

		// Renglones en orden, cada uno con bloqueo de fila (SELECT FOR UPDATE):
		// chequeo y descuento de stock atómicos frente a ventas concurrentes.
		for _, item := range in.Items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrProductNotFound
			}
			if product.Quantity < item.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateQuantity(product.ID, product.Quantity-item.Quantity); err != nil {
				return err
			}

			// Snapshot del precio: la línea conserva el precio vigente al vender
			qty := decimal.NewFromInt(item.Quantity)
			lineTotal := product.UnitPrice.Mul(qty)
			subtotal = subtotal.Add(lineTotal)

			items = append(items, &entity.SaleItem{
				ID:         uuid.New().String(),
				SaleID:     sale.ID,
				ProductID:  product.ID,
				Quantity:   item.Quantity,
				UnitPrice:  product.UnitPrice,
				TotalPrice: lineTotal,
			})
			lines = append(lines, InvoiceLine{
				ProductCode: product.Code,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.UnitPrice,
				TotalPrice:  lineTotal,
			})
		}

		sale.Subtotal = subtotal
		sale.Tax = subtotal.Mul(TaxRate)
		sale.Total = sale.Subtotal.Add(sale.Tax)

		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, it := range items {
			if err := saleRepo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Factura PDF fuera de la tx: la venta ya es definitiva.
	invoicePath, err := uc.renderer.RenderInvoice(ctx, sale, client, lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	if err := uc.saleRepo.UpdateInvoicePath(sale.ID, invoicePath); err != nil {
		return nil, err
	}
	sale.InvoicePath = invoicePath

	return toSaleResponse(sale, client, items, lines), nil
}

// GetSale obtiene una venta por ID con cliente y productos poblados.
func (uc *CreateSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(sale.ClientID)
	if err != nil {
		return nil, err
	}
	lines := uc.resolveLines(items, nil)
	return toSaleResponse(sale, client, items, lines), nil
}

// ListSales lista ventas con paginación, poblando cliente y productos.
func (uc *CreateSaleUseCase) ListSales(ctx context.Context, limit, offset int) (*dto.SaleListResponse, error) {
	salesList, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}

	clients := make(map[string]*entity.Client)
	products := make(map[string]*entity.Product)

	out := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(salesList)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, sale := range salesList {
		client, ok := clients[sale.ClientID]
		if !ok {
			client, err = uc.clientRepo.GetByID(sale.ClientID)
			if err != nil {
				return nil, err
			}
			clients[sale.ClientID] = client
		}
		items, err := uc.saleRepo.GetItemsBySaleID(sale.ID)
		if err != nil {
			return nil, err
		}
		lines := uc.resolveLines(items, products)
		out.Items = append(out.Items, *toSaleResponse(sale, client, items, lines))
	}
	return out, nil
}

// resolveLines enriquece líneas persistidas con nombre y código de producto.
// cache puede ser nil; si no, se reutiliza entre ventas del mismo listado.
func (uc *CreateSaleUseCase) resolveLines(items []*entity.SaleItem, cache map[string]*entity.Product) []InvoiceLine {
	lines := make([]InvoiceLine, 0, len(items))
	for _, it := range items {
		name := "Producto " + it.ProductID // fallback si el producto fue eliminado
		code := ""
		product, ok := cache[it.ProductID]
		if !ok {
			product, _ = uc.productRepo.GetByID(it.ProductID)
			if cache != nil {
				cache[it.ProductID] = product
			}
		}
		if product != nil {
			name = product.Name
			code = product.Code
		}
		lines = append(lines, InvoiceLine{
			ProductCode: code,
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return lines
}

func toSaleResponse(sale *entity.Sale, client *entity.Client, items []*entity.SaleItem, lines []InvoiceLine) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:          sale.ID,
		ClientID:    sale.ClientID,
		Items:       make([]dto.SaleItemResponse, 0, len(items)),
		Subtotal:    sale.Subtotal,
		Tax:         sale.Tax,
		Total:       sale.Total,
		InvoicePath: sale.InvoicePath,
		CreatedAt:   sale.CreatedAt,
	}
	if client != nil {
		resp.ClientName = client.FullName
		resp.ClientDocument = client.DocumentNumber
	}
	for i, it := range items {
		item := dto.SaleItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		}
		if i < len(lines) {
			item.ProductCode = lines[i].ProductCode
			item.ProductName = lines[i].ProductName
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}
