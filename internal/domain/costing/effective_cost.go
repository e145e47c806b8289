package costing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

// Params parâmetros do cálculo de custo efetivo.
type Params struct {
	// Units registro de conversão usado para rendimento/unidade.
	Units *UnitRegistry

	// PresumidoCreditFraction fração do imposto creditável recuperada por
	// fornecedores no lucro presumido. A fração exata ainda depende de
	// confirmação da regra de negócio, por isso é configurável e não uma
	// constante.
	PresumidoCreditFraction decimal.Decimal
}

// DefaultParams registro default e fração de 50% para lucro presumido.
func DefaultParams() Params {
	return Params{
		Units:                   DefaultUnitRegistry(),
		PresumidoCreditFraction: decimal.NewFromFloat(0.5),
	}
}

// EffectiveCostResult visão derivada de uma oferta para uma tupla
// (quantidade, cenário, jurisdição). Nunca persistido: é função pura das
// entradas e sempre recomputável.
type EffectiveCostResult struct {
	OfferID        string          `json:"offer_id"`
	SupplierName   string          `json:"supplier_name,omitempty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	UnitFreight    decimal.Decimal `json:"unit_freight"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	CreditAmount   decimal.Decimal `json:"credit_amount"`
	EffectiveCost  decimal.Decimal `json:"effective_cost"`
	NormalizedCost decimal.Decimal `json:"normalized_cost"` // custo por unidade de saída utilizável
	Rank           int             `json:"rank"`
	Explanation    string          `json:"explanation,omitempty"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// ComputeEffectiveCost calcula o custo efetivo unitário de uma oferta:
// preço + frete, imposto somado, crédito recuperável subtraído, normalizado
// pelo rendimento. Falhas de unidade/quantidade propagam como erro tipado;
// regra não encontrada NÃO é erro (chega aqui como alíquota zero com nota).
func ComputeEffectiveCost(
	offer entity.SupplierOffer,
	requestedQuantity decimal.Decimal,
	rule entity.TaxRule,
	scenario *entity.Scenario,
	p Params,
) (EffectiveCostResult, error) {
	pricing, err := EvaluatePricing(offer, requestedQuantity)
	if err != nil {
		return EffectiveCostResult{}, err
	}

	gross := pricing.UnitPrice.Add(pricing.UnitFreight)

	rates := ApplyScenario(rule.Rates, scenario)
	taxAmount := gross.Mul(rates.Sum()).Div(hundred)

	creditAmount := creditFor(offer, rule, taxAmount, p)

	effective := gross.Add(taxAmount).Sub(creditAmount)

	normalized := effective
	if offer.Yield != nil {
		units := p.Units
		if units == nil {
			units = DefaultUnitRegistry()
		}
		one := decimal.NewFromInt(1)
		inputQty := one
		if offer.NegotiatedUnit != "" && offer.NegotiatedUnit != offer.Yield.InputUnit {
			inputQty, err = units.Convert(one, offer.NegotiatedUnit, offer.Yield.InputUnit)
			if err != nil {
				return EffectiveCostResult{}, err
			}
		}
		outputPerUnit, err := units.ApplyYield(inputQty, *offer.Yield)
		if err != nil {
			return EffectiveCostResult{}, err
		}
		if outputPerUnit.Sign() <= 0 {
			return EffectiveCostResult{}, &InvalidYieldError{Yield: offer.Yield.YieldPercentage.String()}
		}
		normalized = effective.Div(outputPerUnit)
	}

	return EffectiveCostResult{
		OfferID:        offer.ID,
		SupplierName:   offer.SupplierName,
		UnitPrice:      pricing.UnitPrice,
		UnitFreight:    pricing.UnitFreight,
		TaxAmount:      taxAmount,
		CreditAmount:   creditAmount,
		EffectiveCost:  effective,
		NormalizedCost: normalized,
	}, nil
}

// creditFor porção recuperável do imposto. O regime do fornecedor prevalece
// sobre a flag creditable: simples nunca credita; presumido credita a fração
// configurada; normal credita integral. Tanto a oferta quanto a regra
// resolvida precisam permitir crédito.
func creditFor(offer entity.SupplierOffer, rule entity.TaxRule, taxAmount decimal.Decimal, p Params) decimal.Decimal {
	if !offer.Creditable || !rule.Creditable {
		return decimal.Zero
	}
	switch offer.RegimeCategory {
	case entity.RegimeSimples:
		return decimal.Zero
	case entity.RegimePresumido:
		return taxAmount.Mul(p.PresumidoCreditFraction)
	default:
		return taxAmount
	}
}

// RankOffers resolve a regra de cada oferta no snapshot, computa o custo
// efetivo e devolve a lista ordenada ascendente por custo normalizado
// (empates por custo efetivo e depois por id, para determinismo). Rank 1 é a
// mais barata. Oferta cujo NCM não casa com regra alguma usa as alíquotas
// informadas na própria oferta, com a nota do resolvedor.
func RankOffers(
	offers []entity.SupplierOffer,
	requestedQuantity decimal.Decimal,
	rules RuleSet,
	jurisdiction string,
	date time.Time,
	scenario *entity.Scenario,
	p Params,
) ([]EffectiveCostResult, error) {
	results := make([]EffectiveCostResult, 0, len(offers))
	for _, offer := range offers {
		res := rules.Resolve(offer.NCM, jurisdiction, date)
		rule := res.Rule
		if !res.Matched {
			// Sem regra catalogada: vale a postura fiscal da oferta.
			rule.Rates = offer.TaxRates
			rule.Creditable = offer.Creditable
		}
		ecr, err := ComputeEffectiveCost(offer, requestedQuantity, rule, scenario, p)
		if err != nil {
			return nil, err
		}
		ecr.Explanation = res.Explanation
		ecr.Warnings = res.Warnings
		results = append(results, ecr)
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if !a.NormalizedCost.Equal(b.NormalizedCost) {
			return a.NormalizedCost.LessThan(b.NormalizedCost)
		}
		if !a.EffectiveCost.Equal(b.EffectiveCost) {
			return a.EffectiveCost.LessThan(b.EffectiveCost)
		}
		return a.OfferID < b.OfferID
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results, nil
}
