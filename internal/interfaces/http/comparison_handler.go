package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/application/usecase"
)

// ComparisonHandler trata as requisições de comparação de ofertas (protegido).
type ComparisonHandler struct {
	uc *usecase.ComparisonUseCase
}

// NewComparisonHandler constrói o handler.
func NewComparisonHandler(uc *usecase.ComparisonUseCase) *ComparisonHandler {
	return &ComparisonHandler{uc: uc}
}

// CompareQuotation godoc
// @Summary      Comparar custos efetivos das ofertas de uma cotação
// @Tags         comparison
// @Security     Bearer
// @Produce      json
// @Param        quotationId  path   string  true   "ID da cotação"
// @Param        quantity     query  string  true   "Quantidade requisitada"
// @Param        uf           query  string  true   "UF de destino"
// @Param        scenario     query  string  false  "Chave do cenário tributário"
// @Success      200  {object}  dto.ComparisonResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{quotationId}/comparison [get]
func (h *ComparisonHandler) CompareQuotation(c *fiber.Ctx) error {
	quotationID := c.Params("quotationId")
	if quotationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "quotationId é requerido"})
	}
	quantity, err := decimal.NewFromString(c.Query("quantity"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity inválido"})
	}
	q := dto.QuotationComparisonQuery{
		Quantity:     quantity,
		Jurisdiction: c.Query("uf"),
		ScenarioKey:  c.Query("scenario"),
	}
	if q.Jurisdiction == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "uf é requerido"})
	}
	out, err := h.uc.CompareQuotation(quotationID, q)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// CompareInline godoc
// @Summary      Comparar ofertas informadas no corpo, sem persistência
// @Tags         comparison
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ComparisonRequest  true  "Ofertas e parâmetros"
// @Success      200   {object}  dto.ComparisonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/comparison [post]
func (h *ComparisonHandler) CompareInline(c *fiber.Ctx) error {
	var in dto.ComparisonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.Offers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "offers é requerido"})
	}
	out, err := h.uc.CompareInline(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
