package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/ventas-api/internal/application/sales"
	"github.com/invorya/ventas-api/internal/application/usecase"
	"github.com/invorya/ventas-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC   *usecase.ClientUseCase
	ProductUC  *usecase.ProductUseCase
	CreateSale *sales.CreateSaleUseCase
	InvoiceUC  *sales.InvoiceUseCase
	Store      *storage.LocalStore
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Imágenes de productos y facturas PDF se sirven estáticamente
	app.Static("/uploads", deps.Store.Root())

	api := app.Group("/api")

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Products (multipart en Create/Update por la imagen)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Store)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Put("/:id/stock", productHandler.AddStock)
	products.Delete("/:id", productHandler.Delete)

	// Sales (inmutables: sin Update ni Delete)
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.InvoiceUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/invoice", saleHandler.DownloadInvoice)
}
