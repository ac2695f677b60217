package http_test

import (
	"context"
	"sort"

	"github.com/invorya/ventas-api/internal/domain"
	"github.com/invorya/ventas-api/internal/domain/entity"
	"github.com/invorya/ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Los handlers se prueban
// end-to-end con app.Test(): usecases reales, repos falsos, storage y PDF
// reales sobre un directorio temporal.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]entity.Client)}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	for _, existing := range r.clients {
		if existing.DocumentNumber == c.DocumentNumber || existing.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	out := c
	return &out, nil
}

func (r *fakeClientRepo) GetByDocumentNumber(documentNumber string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.DocumentNumber == documentNumber {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	all := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out := c
		all = append(all, &out)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	all := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out := p
		all = append(all, &out)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Quantity = quantity
	r.products[id] = p
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeSaleRepo struct {
	sales map[string]entity.Sale
	items []entity.SaleItem
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]entity.Sale)}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.sales[s.ID] = *s
	return nil
}

func (r *fakeSaleRepo) CreateItem(it *entity.SaleItem) error {
	r.items = append(r.items, *it)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	out := s
	return &out, nil
}

func (r *fakeSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for i := range r.items {
		if r.items[i].SaleID == saleID {
			item := r.items[i]
			out = append(out, &item)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	all := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out := s
		all = append(all, &out)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakeSaleRepo) UpdateInvoicePath(id, invoicePath string) error {
	s, ok := r.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.InvoicePath = invoicePath
	r.sales[id] = s
	return nil
}

// fakeTxRunner restaura un snapshot si fn falla, como el rollback de una
// transacción real.
type fakeTxRunner struct {
	products *fakeProductRepo
	sales    *fakeSaleRepo
}

func (tx *fakeTxRunner) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	productsSnap := make(map[string]entity.Product, len(tx.products.products))
	for k, v := range tx.products.products {
		productsSnap[k] = v
	}
	salesSnap := make(map[string]entity.Sale, len(tx.sales.sales))
	for k, v := range tx.sales.sales {
		salesSnap[k] = v
	}
	itemsSnap := append([]entity.SaleItem(nil), tx.sales.items...)

	if err := fn(tx.products, tx.sales); err != nil {
		tx.products.products = productsSnap
		tx.sales.sales = salesSnap
		tx.sales.items = itemsSnap
		return err
	}
	return nil
}
