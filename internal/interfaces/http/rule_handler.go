package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/application/usecase"
)

// RuleHandler trata as requisições HTTP de regras tributárias (protegido).
type RuleHandler struct {
	uc *usecase.RuleUseCase
}

// NewRuleHandler constrói o handler.
func NewRuleHandler(uc *usecase.RuleUseCase) *RuleHandler {
	return &RuleHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar regra tributária
// @Tags         tax-rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRuleRequest  true  "Dados da regra"
// @Success      201   {object}  dto.RuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax-rules [post]
func (h *RuleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter regra por ID
// @Tags         tax-rules
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da regra"
// @Success      200  {object}  dto.RuleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tax-rules/{id} [get]
func (h *RuleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regra não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar regras tributárias
// @Tags         tax-rules
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.RuleListResponse
// @Router       /api/tax-rules [get]
func (h *RuleHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(page)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar regra tributária
// @Tags         tax-rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da regra"
// @Param        body  body  dto.UpdateRuleRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.RuleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tax-rules/{id} [put]
func (h *RuleHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	var in dto.UpdateRuleRequest
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
// @Summary      Remover regra tributária
// @Tags         tax-rules
// @Security     Bearer
// @Param        id  path  string  true  "ID da regra"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tax-rules/{id} [delete]
func (h *RuleHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
