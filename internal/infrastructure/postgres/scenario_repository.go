package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
	"github.com/viafiscal/custoreal-api/internal/domain/repository"
)

var _ repository.ScenarioRepository = (*ScenarioRepo)(nil)

// ScenarioRepo implementação do porto ScenarioRepository sobre PostgreSQL.
// Cenários representam fases da transição tributária (ex.: transicao_2029,
// regime_pleno_2033) e são poucos e estáveis.
type ScenarioRepo struct {
	q Querier
}

// NewScenarioRepository constrói o adaptador de persistência de cenários.
func NewScenarioRepository(q Querier) *ScenarioRepo {
	return &ScenarioRepo{q: q}
}

const scenarioColumns = `key, name, rate_factor, override_ibs, override_cbs, override_is,
	effective_from, effective_to, created_at`

// GetByKey obtém um cenário pela chave. Retorna (nil, nil) quando não existe.
func (r *ScenarioRepo) GetByKey(key string) (*entity.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE key = $1`
	var s entity.Scenario
	err := r.q.QueryRow(context.Background(), query, key).Scan(
		&s.Key, &s.Name, &s.RateFactor, &s.OverrideIBS, &s.OverrideCBS, &s.OverrideIS,
		&s.EffectiveFrom, &s.EffectiveTo, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get scenario: %w", err)
	}
	return &s, nil
}

// ListAll lista todos os cenários, ordenados por início de vigência.
func (r *ScenarioRepo) ListAll() ([]entity.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios ORDER BY effective_from, key`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []entity.Scenario
	for rows.Next() {
		var s entity.Scenario
		if err := rows.Scan(
			&s.Key, &s.Name, &s.RateFactor, &s.OverrideIBS, &s.OverrideCBS, &s.OverrideIS,
			&s.EffectiveFrom, &s.EffectiveTo, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, rows.Err()
}

// Upsert insere ou atualiza um cenário pela chave.
func (r *ScenarioRepo) Upsert(scenario *entity.Scenario) error {
	query := `
		INSERT INTO scenarios (key, name, rate_factor, override_ibs, override_cbs, override_is,
			effective_from, effective_to, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (key) DO UPDATE SET
			name = EXCLUDED.name, rate_factor = EXCLUDED.rate_factor,
			override_ibs = EXCLUDED.override_ibs, override_cbs = EXCLUDED.override_cbs,
			override_is = EXCLUDED.override_is,
			effective_from = EXCLUDED.effective_from, effective_to = EXCLUDED.effective_to`
	_, err := r.q.Exec(context.Background(), query,
		scenario.Key, scenario.Name, scenario.RateFactor,
		scenario.OverrideIBS, scenario.OverrideCBS, scenario.OverrideIS,
		scenario.EffectiveFrom, scenario.EffectiveTo, scenario.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert scenario: %w", err)
	}
	return nil
}
