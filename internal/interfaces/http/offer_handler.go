package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/application/usecase"
)

// OfferHandler trata as requisições HTTP de ofertas de fornecedores (protegido).
type OfferHandler struct {
	uc *usecase.OfferUseCase
}

// NewOfferHandler constrói o handler.
func NewOfferHandler(uc *usecase.OfferUseCase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar oferta de fornecedor numa cotação
// @Tags         offers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        quotationId  path  string  true  "ID da cotação"
// @Param        body  body  dto.CreateOfferRequest  true  "Dados da oferta"
// @Success      201   {object}  dto.OfferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/quotations/{quotationId}/offers [post]
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	quotationID := c.Params("quotationId")
	if quotationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "quotationId é requerido"})
	}
	var in dto.CreateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(quotationID, in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter oferta por ID
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        quotationId  path  string  true  "ID da cotação"
// @Param        id           path  string  true  "ID da oferta"
// @Success      200  {object}  dto.OfferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{quotationId}/offers/{id} [get]
func (h *OfferHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "oferta não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ofertas de uma cotação
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        quotationId  path  string  true  "ID da cotação"
// @Success      200  {object}  dto.OfferListResponse
// @Router       /api/quotations/{quotationId}/offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	quotationID := c.Params("quotationId")
	if quotationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "quotationId é requerido"})
	}
	out, err := h.uc.List(quotationID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar oferta
// @Tags         offers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        quotationId  path  string  true  "ID da cotação"
// @Param        id           path  string  true  "ID da oferta"
// @Param        body  body  dto.UpdateOfferRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.OfferResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotations/{quotationId}/offers/{id} [put]
func (h *OfferHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	var in dto.UpdateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover oferta
// @Tags         offers
// @Security     Bearer
// @Param        quotationId  path  string  true  "ID da cotação"
// @Param        id           path  string  true  "ID da oferta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{quotationId}/offers/{id} [delete]
func (h *OfferHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
