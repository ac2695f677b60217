package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/ventas-api/internal/application/dto"
	"github.com/invorya/ventas-api/internal/domain"
	"github.com/invorya/ventas-api/internal/domain/entity"
	"github.com/invorya/ventas-api/internal/domain/repository"
)

// ImageStore elimina archivos de imagen del almacenamiento local.
// Lo implementa storage.LocalStore.
type ImageStore interface {
	Remove(relPath string) error
}

// ProductUseCase casos de uso CRUD para productos, más el ajuste manual de stock.
// Quantity también la descuenta la creación de ventas (sales.CreateSaleUseCase).
type ProductUseCase struct {
	repo   repository.ProductRepository
	images ImageStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, images ImageStore) *ProductUseCase {
	return &ProductUseCase{repo: repo, images: images}
}

// Create crea un nuevo producto. Code debe ser único; la imagen ya fue
// guardada por el handler (in.ImagePath).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Quantity < 0 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		ImagePath:   in.ImagePath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un producto. Si in.ImagePath trae una imagen nueva, la
// anterior se elimina del disco tras persistir el cambio.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Code != nil {
		product.Code = *in.Code
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.UnitPrice = *in.UnitPrice
	}
	oldImage := ""
	if in.ImagePath != "" && in.ImagePath != product.ImagePath {
		oldImage = product.ImagePath
		product.ImagePath = in.ImagePath
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	if oldImage != "" {
		_ = uc.images.Remove(oldImage) // la imagen reemplazada ya no se referencia
	}
	return toProductResponse(product), nil
}

// AddStock suma delta unidades al inventario del producto (ajuste manual).
// Delta cero o negativo -> ErrInvalidQuantity.
func (uc *ProductUseCase) AddStock(id string, delta int64) (*dto.ProductResponse, error) {
	if delta <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	product.Quantity += delta
	if err := uc.repo.UpdateQuantity(id, product.Quantity); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID junto con su imagen en disco.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if product.ImagePath != "" {
		_ = uc.images.Remove(product.ImagePath)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		ImagePath:   p.ImagePath,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
