package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/dto"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/application/usecase"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain/repository"
	"github.com/niwatnet1979-coder/168InteriorLighting/internal/infrastructure/pdf"
)

// QCHandler serves inspections and the printable sticker label.
type QCHandler struct {
	uc     *usecase.QCUseCase
	repo   repository.QCRepository
	pdfGen *pdf.Generator
}

// NewQCHandler builds the handler.
func NewQCHandler(uc *usecase.QCUseCase, repo repository.QCRepository, pdfGen *pdf.Generator) *QCHandler {
	return &QCHandler{uc: uc, repo: repo, pdfGen: pdfGen}
}

func (h *QCHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *QCHandler) GetBySN(c *fiber.Ctx) error {
	out, err := h.uc.GetBySN(c.Params("sn"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inspection not found"})
	}
	return c.JSON(out)
}

func (h *QCHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveQCRequest
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

func (h *QCHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("sn")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Label renders the sticker PDF for one serial number.
func (h *QCHandler) Label(c *fiber.Ctx) error {
	rec, err := h.repo.GetBySN(c.Params("sn"))
	if err != nil {
		return respondError(c, err)
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inspection not found"})
	}
	doc, err := h.pdfGen.QCLabel(rec)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+rec.SN+`.pdf"`)
	return c.Send(doc)
}
