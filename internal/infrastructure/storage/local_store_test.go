package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/ventas-api/internal/infrastructure/storage"
)

func TestAllowedImageExt(t *testing.T) {
	for _, ext := range []string{".jpg", ".jpeg", ".png"} {
		assert.True(t, storage.AllowedImageExt(ext), "%s debe aceptarse", ext)
	}
	for _, ext := range []string{".gif", ".pdf", ".exe", ""} {
		assert.False(t, storage.AllowedImageExt(ext), "%s debe rechazarse", ext)
	}
}

func TestNewImageName_ConservaExtension(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	name := store.NewImageName("Foto del Producto.JPG")
	assert.Equal(t, ".jpg", filepath.Ext(name), "la extensión se normaliza a minúsculas")
	assert.NotContains(t, name, " ", "el nombre generado no conserva el nombre original")
}

func TestInvoiceRelPath(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/uploads/invoices/factura-abc123.pdf", store.InvoiceRelPath("abc123"))
}

// Abs traduce la ruta pública /uploads/... al archivo real bajo la raíz.
func TestAbs_RoundTrip(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewLocalStore(root)
	require.NoError(t, err)

	rel := store.ImageRelPath("1717171717000000000.jpg")
	assert.Equal(t, filepath.Join(root, "1717171717000000000.jpg"), store.Abs(rel))

	rel = store.InvoiceRelPath("v1")
	assert.Equal(t, filepath.Join(root, "invoices", "factura-v1.pdf"), store.Abs(rel))
}

func TestRemove(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewLocalStore(root)
	require.NoError(t, err)

	rel := store.ImageRelPath("borrar.png")
	require.NoError(t, os.WriteFile(store.Abs(rel), []byte("png"), 0o644))

	require.NoError(t, store.Remove(rel))
	_, statErr := os.Stat(store.Abs(rel))
	assert.True(t, os.IsNotExist(statErr), "el archivo debe quedar eliminado")

	// Eliminar algo que no existe no es error (limpieza best-effort)
	require.NoError(t, store.Remove(store.ImageRelPath("nunca-existio.jpg")))
	require.NoError(t, store.Remove(""))
}
