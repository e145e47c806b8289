package repository

import "github.com/viafiscal/custoreal-api/internal/domain/entity"

// TaxRuleRepository porta de persistência para regras tributárias.
// ListAll devolve o conjunto completo: o snapshot (RuleSet) é montado em
// memória pelo caso de uso a cada requisição, nunca mutado durante o cálculo.
type TaxRuleRepository interface {
	Create(rule *entity.TaxRule) error
	GetByID(id string) (*entity.TaxRule, error)
	List(limit, offset int) ([]entity.TaxRule, error)
	ListAll() ([]entity.TaxRule, error)
	Update(rule *entity.TaxRule) error
	Delete(id string) error
}
