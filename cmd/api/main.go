package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/invorya/ventas-api/internal/application/sales"
	"github.com/invorya/ventas-api/internal/application/usecase"
	infrapdf "github.com/invorya/ventas-api/internal/infrastructure/pdf"
	"github.com/invorya/ventas-api/internal/infrastructure/postgres"
	"github.com/invorya/ventas-api/internal/infrastructure/storage"
	httpRouter "github.com/invorya/ventas-api/internal/interfaces/http"
	"github.com/invorya/ventas-api/pkg/config"
	"github.com/invorya/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store, err := storage.NewLocalStore(cfg.Storage.UploadsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de uploads")
	}

	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	renderer := infrapdf.NewMarotoInvoiceRenderer(store)

	clientUC := usecase.NewClientUseCase(clientRepo)
	productUC := usecase.NewProductUseCase(productRepo, store)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, clientRepo, productRepo, saleRepo, renderer)
	invoiceUC := sales.NewInvoiceUseCase(saleRepo, store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // imágenes de producto
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:   clientUC,
		ProductUC:  productUC,
		CreateSale: createSaleUC,
		InvoiceUC:  invoiceUC,
		Store:      store,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
