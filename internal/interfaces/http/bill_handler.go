package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/billing"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/dto"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/entity"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/pdf"
)

// BillHandler serves bills: listing, detail with totals, the commit and
// cancel sequences, and the printable document.
type BillHandler struct {
	svc       *billing.Service
	customers repository.CustomerRepository
	taxes     repository.TaxProfileRepository
	pdfGen    *pdf.Generator
}

// NewBillHandler builds the handler.
func NewBillHandler(
	svc *billing.Service,
	customers repository.CustomerRepository,
	taxes repository.TaxProfileRepository,
	pdfGen *pdf.Generator,
) *BillHandler {
	return &BillHandler{svc: svc, customers: customers, taxes: taxes, pdfGen: pdfGen}
}

func (h *BillHandler) List(c *fiber.Ctx) error {
	bills, err := h.svc.List(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, toBillResponse(b))
	}
	return c.JSON(out)
}

func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	detail, err := h.svc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toBillDetailResponse(detail))
}

// Commit saves the bill header and reconciles the sale working set in one
// transaction.
func (h *BillHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitBillRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}

	ws := make([]*entity.Sale, 0, len(in.WorkingSet))
	for _, line := range in.WorkingSet {
		ws = append(ws, saleFromRequest(line))
	}
	detail, err := h.svc.Commit(c.Context(), billing.CommitInput{
		Bill: &entity.Bill{
			BID:      in.BID,
			BillDate: in.BillDate,
			CID:      in.CID,
			Seller:   in.Seller,
			VatRate:  in.VatRate,
		},
		WorkingSet: ws,
		PrevLinked: in.PrevLinked,
		Baseline:   in.Baseline,
		Actor:      GetActor(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if in.BID == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(toBillDetailResponse(detail))
}

// Cancel unlinks all sales and deletes the bill.
func (h *BillHandler) Cancel(c *fiber.Ctx) error {
	if err := h.svc.Cancel(c.Context(), c.Params("id"), GetActor(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Document renders the bill PDF.
func (h *BillHandler) Document(c *fiber.Ctx) error {
	detail, err := h.svc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	customer, err := h.customers.GetByID(detail.Bill.CID)
	if err != nil {
		return respondError(c, err)
	}
	if customer == nil {
		customer = &entity.Customer{CID: detail.Bill.CID, ContractName: detail.Bill.CID}
	}
	var tax *entity.TaxProfile
	if profiles, err := h.taxes.ListByCustomer(detail.Bill.CID); err == nil && len(profiles) > 0 {
		tax = profiles[0]
	}
	doc, err := h.pdfGen.BillDocument(detail.Bill, customer, tax, detail.Sales, detail.Totals)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+detail.Bill.BID+`.pdf"`)
	return c.Send(doc)
}

func saleFromRequest(in dto.SaveSaleRequest) *entity.Sale {
	return &entity.Sale{
		SID:               in.SID,
		PID:               in.PID,
		Dimention:         in.Dimention,
		ItemColor:         in.ItemColor,
		BulbColor:         in.BulbColor,
		Remote:            in.Remote,
		Remark:            in.Remark,
		Action:            in.Action,
		Price:             in.Price,
		Qty:               in.Qty,
		Discount:          in.Discount,
		ShipPrice:         in.ShipPrice,
		InstallationPrice: in.InstallationPrice,
		Pay1Date:          in.Pay1Date,
		Pay1Price:         in.Pay1Price,
		Pay1Ch:            in.Pay1Ch,
		TAX1ShipDate:      in.TAX1ShipDate,
		Pay2Date:          in.Pay2Date,
		Pay2Price:         in.Pay2Price,
		Pay2Ch:            in.Pay2Ch,
		TAX2ShipDate:      in.TAX2ShipDate,
		CommissionID:      in.CommissionID,
		Profit:            in.Profit,
	}
}

func toBillResponse(b *entity.Bill) dto.BillResponse {
	return dto.BillResponse{
		BID:       b.BID,
		Timestamp: b.Timestamp,
		RecBy:     b.RecBy,
		BillDate:  b.BillDate,
		CID:       b.CID,
		Seller:    b.Seller,
		VatRate:   b.VatRate,
	}
}

func toBillDetailResponse(d *billing.Detail) dto.BillDetailResponse {
	sales := make([]dto.SaleResponse, 0, len(d.Sales))
	for _, s := range d.Sales {
		sales = append(sales, toSaleResponseHTTP(s))
	}
	return dto.BillDetailResponse{
		Bill:  toBillResponse(d.Bill),
		Sales: sales,
		Totals: dto.BillTotalsResponse{
			Subtotal:  d.Totals.Subtotal,
			VatAmount: d.Totals.VatAmount,
			Total:     d.Totals.Total,
		},
	}
}

func toSaleResponseHTTP(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		SID:               s.SID,
		Timestamp:         s.Timestamp,
		RecBy:             s.RecBy,
		BID:               s.BID,
		PID:               s.PID,
		Dimention:         s.Dimention,
		ItemColor:         s.ItemColor,
		BulbColor:         s.BulbColor,
		Remote:            s.Remote,
		Remark:            s.Remark,
		Action:            s.Action,
		Price:             s.Price,
		Qty:               s.Qty,
		Discount:          s.Discount,
		ShipPrice:         s.ShipPrice,
		InstallationPrice: s.InstallationPrice,
		SumPrice:          s.SumPrice,
		Pay1Date:          s.Pay1Date,
		Pay1Price:         s.Pay1Price,
		Pay1Ch:            s.Pay1Ch,
		TAX1ShipDate:      s.TAX1ShipDate,
		Pay2Date:          s.Pay2Date,
		Pay2Price:         s.Pay2Price,
		Pay2Ch:            s.Pay2Ch,
		TAX2ShipDate:      s.TAX2ShipDate,
		CommissionID:      s.CommissionID,
		Profit:            s.Profit,
	}
}
