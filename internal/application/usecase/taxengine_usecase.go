package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/domain"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
	"github.com/viafiscal/custoreal-api/internal/domain/repository"
)

var cem = decimal.NewFromInt(100)

// TaxEngineUseCase resolve a regra tributária de um NCM e calcula os valores
// dos componentes sobre um valor de operação. É o miolo do endpoint
// /api/tax-engine.
type TaxEngineUseCase struct {
	rules     repository.TaxRuleRepository
	scenarios repository.ScenarioRepository
	cfg       EngineConfig
}

// NewTaxEngineUseCase constrói o caso de uso.
func NewTaxEngineUseCase(rules repository.TaxRuleRepository, scenarios repository.ScenarioRepository, cfg EngineConfig) *TaxEngineUseCase {
	return &TaxEngineUseCase{rules: rules, scenarios: scenarios, cfg: cfg}
}

// Compute resolve e calcula. IBS segue o princípio do destino: a jurisdição
// de resolução é a UF de destino; a UF de origem fica registrada apenas para
// auditoria do chamador. Regra não encontrada NÃO é erro — volta alíquota
// zero com explicação.
func (uc *TaxEngineUseCase) Compute(in dto.TaxEngineRequest) (*dto.TaxEngineResponse, error) {
	if in.NCM == "" || in.UFDestino == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Valor.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var scenario *entity.Scenario
	if in.Scenario != "" {
		sc, err := uc.scenarios.GetByKey(in.Scenario)
		if err != nil {
			return nil, err
		}
		if sc == nil {
			return nil, domain.ErrScenarioUnknown
		}
		scenario = sc
	}

	rules, err := uc.rules.ListAll()
	if err != nil {
		return nil, err
	}

	res := uc.cfg.RuleSet(rules).Resolve(in.NCM, in.UFDestino, time.Now().UTC())
	rates := costing.ApplyScenario(res.Rule.Rates, scenario)

	values := dto.TaxEngineValues{
		IBS: in.Valor.Mul(rates.IBS).Div(cem),
		CBS: in.Valor.Mul(rates.CBS).Div(cem),
		IS:  in.Valor.Mul(rates.IS).Div(cem),
	}
	values.Total = values.IBS.Add(values.CBS).Add(values.IS)

	credit := decimal.Zero
	if res.Rule.Creditable {
		// IS nunca gera crédito: é imposto seletivo, monofásico.
		credit = values.IBS.Add(values.CBS)
	}

	return &dto.TaxEngineResponse{
		Rates:        dto.TaxEngineRates{IBS: rates.IBS, CBS: rates.CBS, IS: rates.IS},
		Values:       values,
		CreditAmount: credit,
		Explanation:  res.Explanation,
		Warnings:     res.Warnings,
	}, nil
}
