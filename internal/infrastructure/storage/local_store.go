// Package storage maneja los archivos locales de la aplicación: imágenes de
// productos bajo <root>/ y facturas PDF bajo <root>/invoices/. Los registros
// en base de datos guardan rutas relativas con prefijo /uploads, que es como
// también se sirven por HTTP.
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// URLPrefix prefijo público bajo el que se sirven los archivos.
const URLPrefix = "/uploads"

// Extensiones de imagen aceptadas para productos.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// AllowedImageExt indica si la extensión (con punto, case-insensitive) es una
// imagen aceptada.
func AllowedImageExt(ext string) bool {
	return allowedImageExts[strings.ToLower(ext)]
}

// LocalStore raíz de uploads en disco local.
type LocalStore struct {
	root string
}

// NewLocalStore crea el store y garantiza que la raíz exista.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// NewImageName genera un nombre de archivo único para una imagen subida,
// conservando la extensión original.
func (s *LocalStore) NewImageName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
}

// ImageRelPath devuelve la ruta relativa pública de una imagen.
func (s *LocalStore) ImageRelPath(filename string) string {
	return path.Join(URLPrefix, filename)
}

// InvoiceRelPath devuelve la ruta relativa pública (y determinística) de la
// factura de una venta.
func (s *LocalStore) InvoiceRelPath(saleID string) string {
	return path.Join(URLPrefix, "invoices", "factura-"+saleID+".pdf")
}

// EnsureInvoicesDir crea el directorio de facturas si no existe y devuelve su
// ruta absoluta.
func (s *LocalStore) EnsureInvoicesDir() (string, error) {
	dir := filepath.Join(s.root, "invoices")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de facturas: %w", err)
	}
	return dir, nil
}

// Abs traduce una ruta relativa /uploads/... a la ruta absoluta en disco.
func (s *LocalStore) Abs(relPath string) string {
	trimmed := strings.TrimPrefix(relPath, URLPrefix)
	trimmed = strings.TrimPrefix(trimmed, "/")
	return filepath.Join(s.root, filepath.FromSlash(trimmed))
}

// Root devuelve la raíz de uploads (para servirla estáticamente).
func (s *LocalStore) Root() string {
	return s.root
}

// Remove elimina un archivo dado su ruta relativa. Que no exista no es error:
// la limpieza es best-effort.
func (s *LocalStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	if err := os.Remove(s.Abs(relPath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar archivo: %w", err)
	}
	return nil
}
