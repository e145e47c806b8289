package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/application/usecase"
)

// OptimizerHandler trata as requisições do otimizador de alocação (público).
type OptimizerHandler struct {
	uc *usecase.OptimizerUseCase
}

// NewOptimizerHandler constrói o handler.
func NewOptimizerHandler(uc *usecase.OptimizerUseCase) *OptimizerHandler {
	return &OptimizerHandler{uc: uc}
}

// Optimize godoc
// @Summary      Alocar quantidade entre fornecedores ao menor custo
// @Tags         optimizer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OptimizeRequest  true  "Quantidade e ofertas"
// @Success      200   {object}  dto.OptimizeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/optimizer [post]
func (h *OptimizerHandler) Optimize(c *fiber.Ctx) error {
	var in dto.OptimizeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Optimize(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
