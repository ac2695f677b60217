package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/invorya/ventas-api/internal/application/dto"
	"github.com/invorya/ventas-api/internal/domain"
	"github.com/invorya/ventas-api/internal/domain/entity"
	"github.com/invorya/ventas-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un nuevo cliente. Documento y email deben ser únicos.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if !entity.ValidDocumentType(in.DocumentType) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByDocumentNumber(in.DocumentNumber)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:             uuid.New().String(),
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		FullName:       in.FullName,
		ContactNumber:  in.ContactNumber,
		Email:          in.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	// La unicidad del email la garantiza el constraint (23505 -> ErrDuplicate)
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un cliente. Solo modifica los campos presentes en el request.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if in.DocumentType != nil {
		if !entity.ValidDocumentType(*in.DocumentType) {
			return nil, domain.ErrInvalidInput
		}
		client.DocumentType = *in.DocumentType
	}
	if in.DocumentNumber != nil {
		client.DocumentNumber = *in.DocumentNumber
	}
	if in.FullName != nil {
		client.FullName = *in.FullName
	}
	if in.ContactNumber != nil {
		client.ContactNumber = *in.ContactNumber
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente por ID. Las ventas existentes del cliente no se
// tocan (sin cascada).
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:             c.ID,
		DocumentType:   c.DocumentType,
		DocumentNumber: c.DocumentNumber,
		FullName:       c.FullName,
		ContactNumber:  c.ContactNumber,
		Email:          c.Email,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
