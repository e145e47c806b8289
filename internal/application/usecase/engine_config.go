package usecase

import (
	"sync/atomic"

	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

// EngineConfig parâmetros de negócio do motor, vindos da configuração.
type EngineConfig struct {
	// ExcludedPrefixes prefixos NCM vetados a tratamento favorecido.
	ExcludedPrefixes []string
	// StandardRates alíquotas de referência usadas pelo veto de exclusão.
	StandardRates entity.TaxRates
	// PresumidoCreditFraction fração de crédito do lucro presumido.
	PresumidoCreditFraction decimal.Decimal
	// MaxSuppliersPerQuotation limite de fornecedores por cotação.
	MaxSuppliersPerQuotation int
}

// DefaultEngineConfig valores default: reforma plena de referência
// (IBS 17.7% + CBS 8.8%), bebidas e fumo excluídos, presumido a 50%,
// até 50 fornecedores por cotação.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		ExcludedPrefixes: []string{"22", "24"},
		StandardRates: entity.TaxRates{
			IBS: decimal.NewFromFloat(17.7),
			CBS: decimal.NewFromFloat(8.8),
		},
		PresumidoCreditFraction:  decimal.NewFromFloat(0.5),
		MaxSuppliersPerQuotation: 50,
	}
}

// Params converte a configuração nos parâmetros do cálculo de custo.
func (c EngineConfig) Params() costing.Params {
	p := costing.DefaultParams()
	if !c.PresumidoCreditFraction.IsZero() {
		p.PresumidoCreditFraction = c.PresumidoCreditFraction
	}
	return p
}

// RuleSet monta o snapshot somente-leitura das regras para uma resolução.
func (c EngineConfig) RuleSet(rules []entity.TaxRule) costing.RuleSet {
	return costing.RuleSet{
		Rules:            rules,
		ExcludedPrefixes: c.ExcludedPrefixes,
		StandardRates:    c.StandardRates,
	}
}

// SnapshotVersion contador monotônico compartilhado entre os casos de uso.
// Toda mutação de oferta ou regra incrementa a versão; o cache de comparação
// inclui a versão na chave, então entradas antigas ficam inalcançáveis — a
// chave completa elimina risco de resultado obsoleto.
type SnapshotVersion struct {
	v atomic.Int64
}

// Bump incrementa a versão após uma mutação.
func (s *SnapshotVersion) Bump() { s.v.Add(1) }

// Current versão atual.
func (s *SnapshotVersion) Current() int64 { return s.v.Load() }
