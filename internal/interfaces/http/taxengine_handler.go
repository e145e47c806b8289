package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/application/usecase"
)

// TaxEngineHandler trata as consultas pontuais ao motor tributário (público).
type TaxEngineHandler struct {
	uc *usecase.TaxEngineUseCase
}

// NewTaxEngineHandler constrói o handler.
func NewTaxEngineHandler(uc *usecase.TaxEngineUseCase) *TaxEngineHandler {
	return &TaxEngineHandler{uc: uc}
}

// Compute godoc
// @Summary      Calcular IBS/CBS/IS para um NCM, trajeto e valor
// @Tags         tax-engine
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TaxEngineRequest  true  "NCM, UFs e valor"
// @Success      200   {object}  dto.TaxEngineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax-engine [post]
func (h *TaxEngineHandler) Compute(c *fiber.Ctx) error {
	var in dto.TaxEngineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Compute(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
