package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/viafiscal/custoreal-api/internal/domain"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
	"github.com/viafiscal/custoreal-api/internal/domain/repository"
)

var _ repository.TaxRuleRepository = (*TaxRuleRepo)(nil)

// TaxRuleRepo implementação do porto TaxRuleRepository sobre PostgreSQL.
// A coluna seq é um bigserial: serve de desempate determinístico entre regras
// com mesmo prefixo e mesma prioridade (a mais recente vence).
type TaxRuleRepo struct {
	q Querier
}

// NewTaxRuleRepository constrói o adaptador de persistência de regras tributárias.
func NewTaxRuleRepository(q Querier) *TaxRuleRepo {
	return &TaxRuleRepo{q: q}
}

const ruleColumns = `id, pattern, jurisdiction, rate_ibs, rate_cbs, rate_is, creditable,
	priority, valid_from, valid_to, seq, description, created_at, updated_at`

// Create persiste uma nova regra e preenche rule.Seq com o valor gerado.
func (r *TaxRuleRepo) Create(rule *entity.TaxRule) error {
	query := `
		INSERT INTO tax_rules (id, pattern, jurisdiction, rate_ibs, rate_cbs, rate_is, creditable,
			priority, valid_from, valid_to, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING seq`
	err := r.q.QueryRow(context.Background(), query,
		rule.ID, rule.Pattern, rule.Jurisdiction, rule.Rates.IBS, rule.Rates.CBS, rule.Rates.IS,
		rule.Creditable, rule.Priority, rule.ValidFrom, rule.ValidTo, rule.Description,
		rule.CreatedAt, rule.UpdatedAt,
	).Scan(&rule.Seq)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tax rule: %w", err)
	}
	return nil
}

// GetByID obtém uma regra por ID. Retorna (nil, nil) quando não existe.
func (r *TaxRuleRepo) GetByID(id string) (*entity.TaxRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM tax_rules WHERE id = $1`
	rule, err := scanRule(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tax rule: %w", err)
	}
	return rule, nil
}

// List lista regras paginadas, ordenadas por prefixo e prioridade.
func (r *TaxRuleRepo) List(limit, offset int) ([]entity.TaxRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM tax_rules
		ORDER BY pattern, priority DESC, seq DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tax rules: %w", err)
	}
	defer rows.Close()
	return collectRules(rows)
}

// ListAll carrega o conjunto inteiro de regras, para o motor de resolução.
func (r *TaxRuleRepo) ListAll() ([]entity.TaxRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM tax_rules`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all tax rules: %w", err)
	}
	defer rows.Close()
	return collectRules(rows)
}

// Update regrava a regra. Seq não muda em updates.
func (r *TaxRuleRepo) Update(rule *entity.TaxRule) error {
	query := `
		UPDATE tax_rules SET
			pattern = $2, jurisdiction = $3, rate_ibs = $4, rate_cbs = $5, rate_is = $6,
			creditable = $7, priority = $8, valid_from = $9, valid_to = $10,
			description = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.Pattern, rule.Jurisdiction, rule.Rates.IBS, rule.Rates.CBS, rule.Rates.IS,
		rule.Creditable, rule.Priority, rule.ValidFrom, rule.ValidTo, rule.Description, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tax rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma regra. Retorna domain.ErrNotFound se o ID não existe.
func (r *TaxRuleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM tax_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tax rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRule(row pgx.Row) (*entity.TaxRule, error) {
	var rule entity.TaxRule
	err := row.Scan(
		&rule.ID, &rule.Pattern, &rule.Jurisdiction, &rule.Rates.IBS, &rule.Rates.CBS, &rule.Rates.IS,
		&rule.Creditable, &rule.Priority, &rule.ValidFrom, &rule.ValidTo, &rule.Seq,
		&rule.Description, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func collectRules(rows pgx.Rows) ([]entity.TaxRule, error) {
	var rules []entity.TaxRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tax rule: %w", err)
		}
		rules = append(rules, *rule)
	}
	return rules, rows.Err()
}
