package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/domain"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
	"github.com/viafiscal/custoreal-api/internal/domain/repository"
)

// ComparisonReportGenerator porta para a representação gráfica (PDF) da
// comparação de cenários. Implementada na infraestrutura (Maroto).
type ComparisonReportGenerator interface {
	GenerateComparisonPDF(ctx context.Context, base, target dto.ResultadoResponse, cmp costing.ScenarioComparison) ([]byte, error)
}

// ScenarioUseCase motor de cenários: recalcula a comparação de custo sob as
// alíquotas de um cenário nomeado e produz deltas entre dois cenários.
// Nenhum estado além do conjunto de ofertas e regras carregado do banco.
type ScenarioUseCase struct {
	offers    repository.OfferRepository
	rules     repository.TaxRuleRepository
	scenarios repository.ScenarioRepository
	cfg       EngineConfig
	reports   ComparisonReportGenerator
}

// NewScenarioUseCase constrói o caso de uso. reports pode ser nil quando a
// geração de PDF está desabilitada.
func NewScenarioUseCase(
	offers repository.OfferRepository,
	rules repository.TaxRuleRepository,
	scenarios repository.ScenarioRepository,
	cfg EngineConfig,
	reports ComparisonReportGenerator,
) *ScenarioUseCase {
	return &ScenarioUseCase{offers: offers, rules: rules, scenarios: scenarios, cfg: cfg, reports: reports}
}

// List lista os cenários cadastrados.
func (uc *ScenarioUseCase) List() ([]dto.ScenarioResponse, error) {
	scenarios, err := uc.scenarios.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ScenarioResponse, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, toScenarioResponse(s))
	}
	return out, nil
}

// ComputeResultado recalcula o custo efetivo de todas as ofertas da cotação
// sob o cenário dado. Chave vazia calcula sem ajuste de cenário (regime das
// regras vigentes).
func (uc *ScenarioUseCase) ComputeResultado(scenarioKey, quotationID string, quantity decimal.Decimal, jurisdiction string) (*dto.ResultadoResponse, error) {
	if quotationID == "" || quantity.Sign() <= 0 || jurisdiction == "" {
		return nil, domain.ErrInvalidInput
	}

	var scenario *entity.Scenario
	if scenarioKey != "" {
		sc, err := uc.scenarios.GetByKey(scenarioKey)
		if err != nil {
			return nil, err
		}
		if sc == nil {
			return nil, domain.ErrScenarioUnknown
		}
		scenario = sc
	}

	offers, err := uc.offers.ListByQuotation(quotationID)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, domain.ErrNotFound
	}
	rules, err := uc.rules.ListAll()
	if err != nil {
		return nil, err
	}

	itens, err := costing.RankOffers(offers, quantity, uc.cfg.RuleSet(rules), jurisdiction, time.Now().UTC(), scenario, uc.cfg.Params())
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range itens {
		total = total.Add(item.NormalizedCost)
	}
	return &dto.ResultadoResponse{ScenarioKey: scenarioKey, Itens: itens, Total: total}, nil
}

// Compare recalcula a cotação sob dois cenários e casa os itens por id de
// oferta, produzindo deltas absolutos e percentuais.
func (uc *ScenarioUseCase) Compare(in dto.CompareScenariosRequest) (*dto.CompareScenariosResponse, error) {
	base, err := uc.ComputeResultado(in.BaseKey, in.QuotationID, in.Quantity, in.Jurisdiction)
	if err != nil {
		return nil, err
	}
	target, err := uc.ComputeResultado(in.TargetKey, in.QuotationID, in.Quantity, in.Jurisdiction)
	if err != nil {
		return nil, err
	}
	return &dto.CompareScenariosResponse{
		BaseKey:    in.BaseKey,
		TargetKey:  in.TargetKey,
		Comparison: costing.CompareResults(base.Itens, target.Itens),
	}, nil
}

// CompareReport gera o PDF da comparação de cenários.
func (uc *ScenarioUseCase) CompareReport(ctx context.Context, in dto.CompareScenariosRequest) ([]byte, error) {
	if uc.reports == nil {
		return nil, domain.ErrInvalidInput
	}
	base, err := uc.ComputeResultado(in.BaseKey, in.QuotationID, in.Quantity, in.Jurisdiction)
	if err != nil {
		return nil, err
	}
	target, err := uc.ComputeResultado(in.TargetKey, in.QuotationID, in.Quantity, in.Jurisdiction)
	if err != nil {
		return nil, err
	}
	cmp := costing.CompareResults(base.Itens, target.Itens)
	return uc.reports.GenerateComparisonPDF(ctx, *base, *target, cmp)
}

func toScenarioResponse(s entity.Scenario) dto.ScenarioResponse {
	return dto.ScenarioResponse{
		Key:           s.Key,
		Name:          s.Name,
		RateFactor:    s.RateFactor,
		OverrideIBS:   s.OverrideIBS,
		OverrideCBS:   s.OverrideCBS,
		OverrideIS:    s.OverrideIS,
		EffectiveFrom: s.EffectiveFrom,
		EffectiveTo:   s.EffectiveTo,
	}
}
