package repository

import "github.com/viafiscal/custoreal-api/internal/domain/entity"

// ScenarioRepository porta de persistência para cenários tributários.
type ScenarioRepository interface {
	GetByKey(key string) (*entity.Scenario, error)
	ListAll() ([]entity.Scenario, error)
	Upsert(scenario *entity.Scenario) error
}
