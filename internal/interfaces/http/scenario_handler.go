package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/application/usecase"
)

// ScenarioHandler trata as requisições de cenários tributários (protegido).
type ScenarioHandler struct {
	uc *usecase.ScenarioUseCase
}

// NewScenarioHandler constrói o handler.
func NewScenarioHandler(uc *usecase.ScenarioUseCase) *ScenarioHandler {
	return &ScenarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar cenários da transição tributária
// @Tags         scenarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ScenarioResponse
// @Router       /api/scenarios [get]
func (h *ScenarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Resultado godoc
// @Summary      Calcular custos efetivos de uma cotação sob um cenário
// @Tags         scenarios
// @Security     Bearer
// @Produce      json
// @Param        key        path   string  true  "Chave do cenário"
// @Param        quotation  query  string  true  "ID da cotação"
// @Param        quantity   query  string  true  "Quantidade requisitada"
// @Param        uf         query  string  true  "UF de destino"
// @Success      200  {object}  dto.ResultadoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/scenarios/{key}/resultado [get]
func (h *ScenarioHandler) Resultado(c *fiber.Ctx) error {
	key := c.Params("key")
	quotationID := c.Query("quotation")
	if quotationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quotation é requerido"})
	}
	quantity, err := decimal.NewFromString(c.Query("quantity"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity inválido"})
	}
	out, err := h.uc.ComputeResultado(key, quotationID, quantity, c.Query("uf"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Compare godoc
// @Summary      Comparar dois cenários sobre a mesma cotação
// @Tags         scenarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompareScenariosRequest  true  "Cotação e cenários"
// @Success      200   {object}  dto.CompareScenariosResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scenarios/compare [post]
func (h *ScenarioHandler) Compare(c *fiber.Ctx) error {
	var in dto.CompareScenariosRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Compare(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// CompareReport godoc
// @Summary      Gerar relatório PDF comparativo de dois cenários
// @Tags         scenarios
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.CompareScenariosRequest  true  "Cotação e cenários"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scenarios/compare/report [post]
func (h *ScenarioHandler) CompareReport(c *fiber.Ctx) error {
	var in dto.CompareScenariosRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	pdfBytes, err := h.uc.CompareReport(c.UserContext(), in)
	if err != nil {
		return mapError(c, err)
	}
	filename := fmt.Sprintf("comparativo-cenarios-%s.pdf", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
