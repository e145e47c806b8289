package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scenario retrato nomeado de um regime tributário: regime atual, anos de
// transição (fator parcial sobre as alíquotas da reforma) ou reforma plena.
// Aplicado sobre a TaxRule resolvida sem mutá-la.
type Scenario struct {
	Key        string          `json:"key"`  // ex.: "atual", "transicao_2029", "reforma_plena"
	Name       string          `json:"name"`
	RateFactor decimal.Decimal `json:"rate_factor"` // multiplicador sobre as alíquotas (1.0 = sem ajuste)

	// Overrides opcionais por componente. Quando presentes, substituem a
	// alíquota do componente antes da aplicação do fator.
	OverrideIBS *decimal.Decimal `json:"override_ibs,omitempty"`
	OverrideCBS *decimal.Decimal `json:"override_cbs,omitempty"`
	OverrideIS  *decimal.Decimal `json:"override_is,omitempty"`

	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
