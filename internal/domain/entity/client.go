package entity

import "time"

// Tipos de documento de identidad aceptados (Colombia).
const (
	DocumentTypeCC        = "CC"        // Cédula de ciudadanía
	DocumentTypeCE        = "CE"        // Cédula de extranjería
	DocumentTypeTI        = "TI"        // Tarjeta de identidad
	DocumentTypePasaporte = "Pasaporte"
	DocumentTypeNIT       = "NIT"
)

// ValidDocumentType indica si s es uno de los tipos de documento aceptados.
func ValidDocumentType(s string) bool {
	switch s {
	case DocumentTypeCC, DocumentTypeCE, DocumentTypeTI, DocumentTypePasaporte, DocumentTypeNIT:
		return true
	}
	return false
}

// Client representa un cliente del negocio.
// DocumentNumber y Email son únicos a nivel de base de datos.
type Client struct {
	ID             string
	DocumentType   string
	DocumentNumber string
	FullName       string
	ContactNumber  string
	Email          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
