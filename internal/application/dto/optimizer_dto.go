package dto

import (
	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
)

// OptimizeRequest body para POST /api/optimizer.
type OptimizeRequest struct {
	Quantity decimal.Decimal          `json:"quantity"`
	Offers   []costing.OptimizerOffer `json:"offers"`
}

// OptimizeResponse contrato do endpoint: alocação por id de oferta, custo
// total e violações não fatais.
type OptimizeResponse struct {
	Allocation map[string]decimal.Decimal `json:"allocation"`
	Cost       decimal.Decimal            `json:"cost"`
	Violations []string                   `json:"violations"`
}
