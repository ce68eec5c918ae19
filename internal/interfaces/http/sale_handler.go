package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/dto"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/usecase"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
)

// SaleHandler serves sale line items.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler builds the handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List supports ?q= substring search and ?unbilled=true for sales waiting
// for a bill.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(repository.SaleFilter{
		Q:            c.Query("q"),
		UnbilledOnly: c.QueryBool("unbilled"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sale not found"})
	}
	return c.JSON(out)
}

func (h *SaleHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Save(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if in.Baseline == nil {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
