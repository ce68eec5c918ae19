package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/billing"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/events"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/usecase"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/excel"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/pdf"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/storage"
	"github.com/niwatnet1979-coder/168InteriorLighting/pkg/logger"
)

// RouterDeps holds everything the routes need.
type RouterDeps struct {
	CustomerUC     *usecase.CustomerUseCase
	ProductUC      *usecase.ProductUseCase
	SaleUC         *usecase.SaleUseCase
	InstallationUC *usecase.InstallationUseCase
	TeamUC         *usecase.TeamUseCase
	QCUC           *usecase.QCUseCase
	Billing        *billing.Service

	CustomerRepo repository.CustomerRepository
	TaxRepo      repository.TaxProfileRepository
	SaleRepo     repository.SaleRepository
	QCRepo       repository.QCRepository

	Hub      *events.Hub
	Store    *storage.Local
	PDF      *pdf.Generator
	Exporter *excel.Exporter
	Log      *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(ActorMiddleware())

	api := app.Group("/api")

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Save)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/addresses", customerHandler.ListAddresses)
	customers.Post("/:id/addresses", customerHandler.SaveAddress)
	customers.Delete("/:id/addresses/:shipId", customerHandler.DeleteAddress)
	customers.Get("/:id/tax-profiles", customerHandler.ListTaxProfiles)
	customers.Post("/:id/tax-profiles", customerHandler.SaveTaxProfile)
	customers.Delete("/:id/tax-profiles/:taxId", customerHandler.DeleteTaxProfile)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Save)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Delete)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Save)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Delete("/:id", saleHandler.Delete)

	bills := api.Group("/bills")
	billHandler := NewBillHandler(deps.Billing, deps.CustomerRepo, deps.TaxRepo, deps.PDF)
	bills.Get("/", billHandler.List)
	bills.Post("/", billHandler.Commit)
	bills.Get("/:id", billHandler.GetByID)
	bills.Delete("/:id", billHandler.Cancel)
	bills.Get("/:id/document", billHandler.Document)

	installations := api.Group("/installations")
	installationHandler := NewInstallationHandler(deps.InstallationUC)
	installations.Get("/", installationHandler.List)
	installations.Post("/", installationHandler.Save)
	installations.Get("/:id", installationHandler.GetByID)
	installations.Delete("/:id", installationHandler.Delete)

	team := api.Group("/team")
	teamHandler := NewTeamHandler(deps.TeamUC)
	team.Get("/", teamHandler.List)
	team.Post("/", teamHandler.Save)
	team.Get("/:id", teamHandler.GetByID)
	team.Delete("/:id", teamHandler.Delete)

	qc := api.Group("/qc")
	qcHandler := NewQCHandler(deps.QCUC, deps.QCRepo, deps.PDF)
	qc.Get("/", qcHandler.List)
	qc.Post("/", qcHandler.Save)
	qc.Get("/:sn", qcHandler.GetBySN)
	qc.Delete("/:sn", qcHandler.Delete)
	qc.Get("/:sn/label", qcHandler.Label)

	exports := api.Group("/exports")
	exportHandler := NewExportHandler(deps.Exporter, deps.SaleRepo, deps.CustomerRepo, deps.QCRepo)
	exports.Get("/sales", exportHandler.Sales)
	exports.Get("/customers", exportHandler.Customers)
	exports.Get("/qc", exportHandler.QC)

	uploadHandler := NewUploadHandler(deps.Store)
	api.Post("/uploads/:bucket", uploadHandler.Upload)

	wsHandler := NewWSHandler(deps.Hub, deps.Log)
	app.Use("/ws/changes", wsHandler.Upgrade)
	app.Get("/ws/changes", wsHandler.Feed())

	app.Static("/files", deps.Store.Dir())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
