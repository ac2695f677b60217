package dto

import "time"

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	DocumentType   string `json:"document_type" validate:"required"`
	DocumentNumber string `json:"document_number" validate:"required,min=3,max=30"`
	FullName       string `json:"full_name" validate:"required,min=1,max=200"`
	ContactNumber  string `json:"contact_number" validate:"required,min=5,max=30"`
	Email          string `json:"email" validate:"required,email"`
}

// UpdateClientRequest entrada para actualizar un cliente (campos opcionales).
type UpdateClientRequest struct {
	DocumentType   *string `json:"document_type"`
	DocumentNumber *string `json:"document_number" validate:"omitempty,min=3,max=30"`
	FullName       *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	ContactNumber  *string `json:"contact_number" validate:"omitempty,min=5,max=30"`
	Email          *string `json:"email" validate:"omitempty,email"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID             string    `json:"id"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	FullName       string    `json:"full_name"`
	ContactNumber  string    `json:"contact_number"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
