package usecase_test

import (
	"sort"

	"github.com/invorya/ventas-api/internal/domain"
	"github.com/invorya/ventas-api/internal/domain/entity"
)

// Fakes en memoria de los repos; los getters devuelven copias.

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
	for id, existing := range r.clients {
		if id != c.ID && (existing.DocumentNumber == c.DocumentNumber || existing.Email == c.Email) {
			return domain.ErrDuplicate
		}
	}
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
	for id, existing := range r.products {
		if id != p.ID && existing.Code == p.Code {
			return domain.ErrDuplicate
		}
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

// fakeImageStore registra los archivos eliminados.
type fakeImageStore struct {
	removed []string
}

func (s *fakeImageStore) Remove(relPath string) error {
	if relPath != "" {
		s.removed = append(s.removed, relPath)
	}
	return nil
}
