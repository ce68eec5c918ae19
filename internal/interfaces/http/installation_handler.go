package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/dto"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/usecase"
)

// InstallationHandler serves installation and shipping jobs.
type InstallationHandler struct {
	uc *usecase.InstallationUseCase
}

// NewInstallationHandler builds the handler.
func NewInstallationHandler(uc *usecase.InstallationUseCase) *InstallationHandler {
	return &InstallationHandler{uc: uc}
}

func (h *InstallationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *InstallationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "installation not found"})
	}
	return c.JSON(out)
}

func (h *InstallationHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveInstallationRequest
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

func (h *InstallationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
