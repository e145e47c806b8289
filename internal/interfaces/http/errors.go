package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/domain"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
)

// mapError traduz erros do domínio/aplicação para status HTTP + {code, message}.
func mapError(c *fiber.Ctx, err error) error {
	var limitErr *costing.SupplierLimitError
	if errors.As(err, &limitErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "SUPPLIER_LIMIT", Message: err.Error()})
	}

	var qtyErr *costing.InvalidQuantityError
	var offerErr *costing.InvalidOfferError
	var yieldErr *costing.InvalidYieldError
	var unitErr *costing.UnitMismatchError
	if errors.As(err, &qtyErr) || errors.As(err, &offerErr) ||
		errors.As(err, &yieldErr) || errors.As(err, &unitErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrScenarioUnknown):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_SCENARIO", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
