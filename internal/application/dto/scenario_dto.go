package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
)

// ScenarioResponse representação de um cenário nas respostas.
type ScenarioResponse struct {
	Key           string           `json:"key"`
	Name          string           `json:"name"`
	RateFactor    decimal.Decimal  `json:"rate_factor"`
	OverrideIBS   *decimal.Decimal `json:"override_ibs,omitempty"`
	OverrideCBS   *decimal.Decimal `json:"override_cbs,omitempty"`
	OverrideIS    *decimal.Decimal `json:"override_is,omitempty"`
	EffectiveFrom time.Time        `json:"effective_from"`
	EffectiveTo   *time.Time       `json:"effective_to,omitempty"`
}

// ResultadoResponse resultado do cálculo de um cenário sobre a cotação.
type ResultadoResponse struct {
	ScenarioKey string                        `json:"scenario"`
	Itens       []costing.EffectiveCostResult `json:"itens"`
	Total       decimal.Decimal               `json:"total"`
}

// CompareScenariosRequest body para POST /api/scenarios/compare.
type CompareScenariosRequest struct {
	QuotationID  string          `json:"quotation_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Jurisdiction string          `json:"uf"`
	BaseKey      string          `json:"base_scenario"`
	TargetKey    string          `json:"target_scenario"`
}

// CompareScenariosResponse deltas item a item entre dois cenários.
type CompareScenariosResponse struct {
	BaseKey    string                     `json:"base_scenario"`
	TargetKey  string                     `json:"target_scenario"`
	Comparison costing.ScenarioComparison `json:"comparison"`
}
