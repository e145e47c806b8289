package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/domain"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
	"github.com/viafiscal/custoreal-api/internal/domain/repository"
)

// ComparisonUseCase comparação de custo efetivo entre as ofertas de uma
// cotação. Como o cálculo é função pura das entradas, o resultado é memoizado
// com chave que inclui toda entrada que afeta a saída (cotação, quantidade,
// UF, cenário, data truncada e versão do snapshot).
type ComparisonUseCase struct {
	offers    repository.OfferRepository
	rules     repository.TaxRuleRepository
	scenarios repository.ScenarioRepository
	cfg       EngineConfig
	version   *SnapshotVersion

	mu    sync.RWMutex
	cache map[string]*dto.ComparisonResponse
}

// NewComparisonUseCase constrói o caso de uso.
func NewComparisonUseCase(
	offers repository.OfferRepository,
	rules repository.TaxRuleRepository,
	scenarios repository.ScenarioRepository,
	cfg EngineConfig,
	version *SnapshotVersion,
) *ComparisonUseCase {
	return &ComparisonUseCase{
		offers:    offers,
		rules:     rules,
		scenarios: scenarios,
		cfg:       cfg,
		version:   version,
		cache:     make(map[string]*dto.ComparisonResponse),
	}
}

// CompareQuotation carrega as ofertas da cotação e devolve a lista ordenada
// de custos efetivos para (quantidade, UF, cenário).
func (uc *ComparisonUseCase) CompareQuotation(quotationID string, q dto.QuotationComparisonQuery) (*dto.ComparisonResponse, error) {
	if quotationID == "" || q.Quantity.Sign() <= 0 || q.Jurisdiction == "" {
		return nil, domain.ErrInvalidInput
	}

	// A data entra truncada no dia: vigência de regra é diária, e a chave do
	// cache precisa ser estável dentro do dia.
	date := time.Now().UTC().Truncate(24 * time.Hour)
	key := fmt.Sprintf("%s|%s|%s|%s|%s|v%d",
		quotationID, q.Quantity.String(), q.Jurisdiction, q.ScenarioKey, date.Format("2006-01-02"), uc.version.Current())

	uc.mu.RLock()
	if hit, ok := uc.cache[key]; ok {
		uc.mu.RUnlock()
		return hit, nil
	}
	uc.mu.RUnlock()

	offers, err := uc.offers.ListByQuotation(quotationID)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, domain.ErrNotFound
	}

	out, err := uc.compare(offers, q.Quantity, q.Jurisdiction, q.ScenarioKey, date)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	// Mutação entre o cálculo e a escrita torna a entrada inofensiva: a chave
	// carrega a versão antiga e ninguém mais a consulta.
	if len(uc.cache) > 1024 {
		uc.cache = make(map[string]*dto.ComparisonResponse)
	}
	uc.cache[key] = out
	uc.mu.Unlock()
	return out, nil
}

// CompareInline compara ofertas enviadas no corpo, sem tocar a persistência
// nem o cache.
func (uc *ComparisonUseCase) CompareInline(in dto.ComparisonRequest) (*dto.ComparisonResponse, error) {
	if in.Quantity.Sign() <= 0 || len(in.Offers) == 0 || in.Jurisdiction == "" {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now().UTC()
	if in.Date != nil {
		date = *in.Date
	}
	return uc.compare(in.Offers, in.Quantity, in.Jurisdiction, in.ScenarioKey, date)
}

func (uc *ComparisonUseCase) compare(
	offers []entity.SupplierOffer,
	quantity decimal.Decimal,
	jurisdiction, scenarioKey string,
	date time.Time,
) (*dto.ComparisonResponse, error) {
	scenario, err := uc.loadScenario(scenarioKey)
	if err != nil {
		return nil, err
	}
	rules, err := uc.rules.ListAll()
	if err != nil {
		return nil, err
	}

	items, err := costing.RankOffers(offers, quantity, uc.cfg.RuleSet(rules), jurisdiction, date, scenario, uc.cfg.Params())
	if err != nil {
		return nil, err
	}
	return &dto.ComparisonResponse{
		Quantity:     quantity,
		Jurisdiction: jurisdiction,
		ScenarioKey:  scenarioKey,
		Items:        items,
	}, nil
}

func (uc *ComparisonUseCase) loadScenario(key string) (*entity.Scenario, error) {
	if key == "" {
		return nil, nil
	}
	sc, err := uc.scenarios.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrScenarioUnknown
	}
	return sc, nil
}
