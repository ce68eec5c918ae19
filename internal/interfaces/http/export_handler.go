package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/excel"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves xlsx exports of the list views.
type ExportHandler struct {
	exporter  *excel.Exporter
	sales     repository.SaleRepository
	customers repository.CustomerRepository
	qc        repository.QCRepository
}

// NewExportHandler builds the handler.
func NewExportHandler(
	exporter *excel.Exporter,
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
	qc repository.QCRepository,
) *ExportHandler {
	return &ExportHandler{exporter: exporter, sales: sales, customers: customers, qc: qc}
}

// Sales exports the sale list; honors the same ?q= and ?unbilled= filters as
// the list view.
func (h *ExportHandler) Sales(c *fiber.Ctx) error {
	list, err := h.sales.List(repository.SaleFilter{
		Q:            c.Query("q"),
		UnbilledOnly: c.QueryBool("unbilled"),
	})
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.exporter.Sales(list)
	if err != nil {
		return respondError(c, err)
	}
	return sendWorkbook(c, "sales.xlsx", data)
}

// Customers exports the customer list.
func (h *ExportHandler) Customers(c *fiber.Ctx) error {
	list, err := h.customers.List(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.exporter.Customers(list)
	if err != nil {
		return respondError(c, err)
	}
	return sendWorkbook(c, "customers.xlsx", data)
}

// QC exports the inspection list.
func (h *ExportHandler) QC(c *fiber.Ctx) error {
	list, err := h.qc.List(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.exporter.QC(list)
	if err != nil {
		return respondError(c, err)
	}
	return sendWorkbook(c, "qc.xlsx", data)
}

func sendWorkbook(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
