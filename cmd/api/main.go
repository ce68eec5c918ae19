package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/billing"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/events"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/usecase"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/excel"
	infrapdf "github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/pdf"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/postgres"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/storage"
	httpRouter "github.com/niwatnet1979-coder/168InteriorLighting/internal/interfaces/http"
	"github.com/niwatnet1979-coder/168InteriorLighting/pkg/config"
	"github.com/niwatnet1979-coder/168InteriorLighting/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	shipRepo := postgres.NewShippingAddressRepository(pool)
	taxRepo := postgres.NewTaxProfileRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	installationRepo := postgres.NewInstallationRepository(pool)
	teamRepo := postgres.NewTeamRepository(pool)
	qcRepo := postgres.NewQCRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hub := events.NewHub()

	customerUC := usecase.NewCustomerUseCase(customerRepo, shipRepo, taxRepo, hub)
	productUC := usecase.NewProductUseCase(productRepo, hub)
	saleUC := usecase.NewSaleUseCase(saleRepo, hub)
	installationUC := usecase.NewInstallationUseCase(installationRepo, hub)
	teamUC := usecase.NewTeamUseCase(teamRepo, hub)
	qcUC := usecase.NewQCUseCase(qcRepo, hub)
	billingSvc := billing.NewService(txRunner, billRepo, saleRepo, hub, log)

	store, err := storage.NewLocal(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("init blob storage")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 << 20,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:     customerUC,
		ProductUC:      productUC,
		SaleUC:         saleUC,
		InstallationUC: installationUC,
		TeamUC:         teamUC,
		QCUC:           qcUC,
		Billing:        billingSvc,
		CustomerRepo:   customerRepo,
		TaxRepo:        taxRepo,
		SaleRepo:       saleRepo,
		QCRepo:         qcRepo,
		Hub:            hub,
		Store:          store,
		PDF:            infrapdf.NewGenerator(),
		Exporter:       excel.NewExporter(),
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
