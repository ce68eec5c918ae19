package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/dto"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/usecase"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
)

// TeamHandler serves staff records.
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

// NewTeamHandler builds the handler.
func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// List supports ?q= substring search and ?status=active|resigned.
func (h *TeamHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(repository.TeamFilter{
		Q:      c.Query("q"),
		Status: c.Query("status"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *TeamHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "employee not found"})
	}
	return c.JSON(out)
}

func (h *TeamHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveTeamRequest
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

func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
