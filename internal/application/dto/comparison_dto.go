package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

// ComparisonRequest body para POST /api/comparison: ofertas inline para
// comparação sem persistência.
type ComparisonRequest struct {
	Quantity     decimal.Decimal        `json:"quantity"`
	Jurisdiction string                 `json:"jurisdiction"`
	ScenarioKey  string                 `json:"scenario,omitempty"`
	Date         *time.Time             `json:"date,omitempty"` // default: agora
	Offers       []entity.SupplierOffer `json:"offers"`
}

// QuotationComparisonQuery query params para GET /api/quotations/{id}/comparison.
type QuotationComparisonQuery struct {
	Quantity     decimal.Decimal `query:"quantity"`
	Jurisdiction string          `query:"uf"`
	ScenarioKey  string          `query:"scenario"`
}

// ComparisonResponse lista ordenada de custos efetivos (rank 1 = mais barato).
type ComparisonResponse struct {
	Quantity     decimal.Decimal               `json:"quantity"`
	Jurisdiction string                        `json:"jurisdiction"`
	ScenarioKey  string                        `json:"scenario,omitempty"`
	Items        []costing.EffectiveCostResult `json:"items"`
}
