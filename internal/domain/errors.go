package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrClientNotFound    = errors.New("cliente no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrRenderFailed      = errors.New("no se pudo generar la factura")
	ErrInvoiceNotFound   = errors.New("factura no encontrada")
)
