package costing

import (
	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

// ApplyScenario deriva as alíquotas efetivas de uma regra sob um cenário,
// sem mutar a regra: overrides por componente substituem a alíquota base e o
// fator do cenário (ex.: 0.60 em ano de transição) multiplica o resultado.
// Cenário nil devolve as alíquotas da regra inalteradas.
func ApplyScenario(rates entity.TaxRates, scenario *entity.Scenario) entity.TaxRates {
	if scenario == nil {
		return rates
	}
	out := rates
	if scenario.OverrideIBS != nil {
		out.IBS = *scenario.OverrideIBS
	}
	if scenario.OverrideCBS != nil {
		out.CBS = *scenario.OverrideCBS
	}
	if scenario.OverrideIS != nil {
		out.IS = *scenario.OverrideIS
	}
	if !scenario.RateFactor.IsZero() && !scenario.RateFactor.Equal(decimal.NewFromInt(1)) {
		out.IBS = out.IBS.Mul(scenario.RateFactor)
		out.CBS = out.CBS.Mul(scenario.RateFactor)
		out.IS = out.IS.Mul(scenario.RateFactor)
	}
	return out
}

// ItemDelta variação de um item entre dois cenários, casado por offer id.
type ItemDelta struct {
	OfferID       string          `json:"offer_id"`
	BaseCost      decimal.Decimal `json:"base_cost"`
	TargetCost    decimal.Decimal `json:"target_cost"`
	AbsoluteDelta decimal.Decimal `json:"absolute_delta"`
	PercentDelta  decimal.Decimal `json:"percent_delta"` // 0 quando o custo base é 0
	BaseRank      int             `json:"base_rank"`
	TargetRank    int             `json:"target_rank"`
	OnlyInBase    bool            `json:"only_in_base,omitempty"`
	OnlyInTarget  bool            `json:"only_in_target,omitempty"`
}

// ScenarioComparison comparação item a item entre dois cenários.
type ScenarioComparison struct {
	Items         []ItemDelta     `json:"items"`
	TotalBase     decimal.Decimal `json:"total_base"`
	TotalTarget   decimal.Decimal `json:"total_target"`
	TotalDelta    decimal.Decimal `json:"total_delta"`
	TotalDeltaPct decimal.Decimal `json:"total_delta_pct"`
}

// CompareResults casa os itens de dois resultados pelo offer id e produz os
// deltas absolutos e percentuais do custo normalizado. Itens presentes em um
// único cenário entram marcados, com delta sobre o custo existente.
func CompareResults(base, target []EffectiveCostResult) ScenarioComparison {
	byID := make(map[string]EffectiveCostResult, len(target))
	for _, r := range target {
		byID[r.OfferID] = r
	}

	cmp := ScenarioComparison{}
	seen := make(map[string]bool, len(base))

	for _, b := range base {
		seen[b.OfferID] = true
		d := ItemDelta{
			OfferID:  b.OfferID,
			BaseCost: b.NormalizedCost,
			BaseRank: b.Rank,
		}
		if t, ok := byID[b.OfferID]; ok {
			d.TargetCost = t.NormalizedCost
			d.TargetRank = t.Rank
			d.AbsoluteDelta = t.NormalizedCost.Sub(b.NormalizedCost)
			if !b.NormalizedCost.IsZero() {
				d.PercentDelta = d.AbsoluteDelta.Div(b.NormalizedCost).Mul(decimal.NewFromInt(100))
			}
			cmp.TotalTarget = cmp.TotalTarget.Add(t.NormalizedCost)
		} else {
			d.OnlyInBase = true
			d.AbsoluteDelta = b.NormalizedCost.Neg()
		}
		cmp.TotalBase = cmp.TotalBase.Add(b.NormalizedCost)
		cmp.Items = append(cmp.Items, d)
	}

	for _, t := range target {
		if seen[t.OfferID] {
			continue
		}
		cmp.Items = append(cmp.Items, ItemDelta{
			OfferID:       t.OfferID,
			TargetCost:    t.NormalizedCost,
			TargetRank:    t.Rank,
			AbsoluteDelta: t.NormalizedCost,
			OnlyInTarget:  true,
		})
		cmp.TotalTarget = cmp.TotalTarget.Add(t.NormalizedCost)
	}

	cmp.TotalDelta = cmp.TotalTarget.Sub(cmp.TotalBase)
	if !cmp.TotalBase.IsZero() {
		cmp.TotalDeltaPct = cmp.TotalDelta.Div(cmp.TotalBase).Mul(decimal.NewFromInt(100))
	}
	return cmp
}
