package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/velaparedes/backrrhh-api/internal/application/dto"
	"github.com/velaparedes/backrrhh-api/internal/application/usecase"
	"github.com/velaparedes/backrrhh-api/internal/domain"
)

// DocumentHandler maneja la metadata de documentos de convocatoria (protegido).
type DocumentHandler struct {
	uc       *usecase.DocumentUseCase
	validate *validator.Validate
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc, validate: validator.New()}
}

// Register godoc
// @Summary      Registrar documento de convocatoria
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la convocatoria"
// @Param        body  body  dto.CreateJobDocumentRequest  true  "Metadata del documento"
// @Success      201   {object}  dto.JobDocumentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/documents [post]
func (h *DocumentHandler) Register(c *fiber.Ctx) error {
	jobID := c.Params("id")
	var in dto.CreateJobDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Register(c.Context(), jobID, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "convocatoria no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de documento inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar documentos de una convocatoria
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la convocatoria"
// @Param        public  query  bool    false  "Solo documentos públicos"
// @Success      200     {array}  dto.JobDocumentResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	jobID := c.Params("id")
	onlyPublic := c.QueryBool("public", false)
	out, err := h.uc.ListByJob(c.Context(), jobID, onlyPublic)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "convocatoria no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

type visibilityRequest struct {
	IsPublic bool `json:"is_public"`
}

// SetVisibility godoc
// @Summary      Cambiar visibilidad de un documento
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Param        docId  path  string  true  "ID del documento"
// @Param        body   body  visibilityRequest  true  "is_public"
// @Success      204
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/documents/{docId}/visibility [put]
func (h *DocumentHandler) SetVisibility(c *fiber.Ctx) error {
	docID := c.Params("docId")
	var in visibilityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetVisibility(c.Context(), docID, in.IsPublic); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar metadata de un documento
// @Tags         documents
// @Security     Bearer
// @Param        docId  path  string  true  "ID del documento"
// @Success      204
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/documents/{docId} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	docID := c.Params("docId")
	if err := h.uc.Delete(c.Context(), docID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
