package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/dto"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/usecase"
)

// CustomerHandler serves customers and their owned shipping addresses and
// tax profiles.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
	}
	return c.JSON(out)
}

func (h *CustomerHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveCustomerRequest
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

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CustomerHandler) ListAddresses(c *fiber.Ctx) error {
	out, err := h.uc.ListAddresses(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CustomerHandler) SaveAddress(c *fiber.Ctx) error {
	var in dto.SaveShippingAddressRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.CID = c.Params("id")
	out, err := h.uc.SaveAddress(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if in.Baseline == nil {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

func (h *CustomerHandler) DeleteAddress(c *fiber.Ctx) error {
	if err := h.uc.DeleteAddress(c.Params("shipId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CustomerHandler) ListTaxProfiles(c *fiber.Ctx) error {
	out, err := h.uc.ListTaxProfiles(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CustomerHandler) SaveTaxProfile(c *fiber.Ctx) error {
	var in dto.SaveTaxProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.CID = c.Params("id")
	out, err := h.uc.SaveTaxProfile(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if in.Baseline == nil {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

func (h *CustomerHandler) DeleteTaxProfile(c *fiber.Ctx) error {
	if err := h.uc.DeleteTaxProfile(c.Params("taxId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
