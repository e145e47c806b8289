package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/domain"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
	"github.com/viafiscal/custoreal-api/internal/domain/repository"
)

// RuleUseCase CRUD da superfície administrativa de regras tributárias.
// O Seq de desempate é atribuído pelo banco (bigserial) na inserção.
type RuleUseCase struct {
	repo    repository.TaxRuleRepository
	version *SnapshotVersion
}

// NewRuleUseCase constrói o caso de uso.
func NewRuleUseCase(repo repository.TaxRuleRepository, version *SnapshotVersion) *RuleUseCase {
	return &RuleUseCase{repo: repo, version: version}
}

// Create cria uma regra. O padrão é normalizado para dígitos; padrão vazio
// após normalização é entrada inválida.
func (uc *RuleUseCase) Create(in dto.CreateRuleRequest) (*dto.RuleResponse, error) {
	pattern := costing.NormalizeNCM(in.Pattern)
	if pattern == "" || in.Jurisdiction == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Rates.IBS.Sign() < 0 || in.Rates.CBS.Sign() < 0 || in.Rates.IS.Sign() < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ValidTo != nil && !in.ValidTo.After(in.ValidFrom) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	rule := &entity.TaxRule{
		ID:           uuid.New().String(),
		Pattern:      pattern,
		Jurisdiction: in.Jurisdiction,
		Rates:        in.Rates,
		Creditable:   in.Creditable,
		Priority:     in.Priority,
		ValidFrom:    in.ValidFrom,
		ValidTo:      in.ValidTo,
		Description:  in.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(rule); err != nil {
		return nil, err
	}
	uc.version.Bump()
	return toRuleResponse(rule), nil
}

// GetByID obtém uma regra por ID.
func (uc *RuleUseCase) GetByID(id string) (*dto.RuleResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, nil
	}
	return toRuleResponse(rule), nil
}

// List lista regras com paginação.
func (uc *RuleUseCase) List(page dto.PageRequest) (*dto.RuleListResponse, error) {
	page.DefaultPage()
	rules, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.RuleListResponse{
		Items: make([]dto.RuleResponse, 0, len(rules)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for i := range rules {
		out.Items = append(out.Items, *toRuleResponse(&rules[i]))
	}
	return out, nil
}

// Update atualiza campos informados de uma regra.
func (uc *RuleUseCase) Update(id string, in dto.UpdateRuleRequest) (*dto.RuleResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, nil
	}
	if in.Pattern != nil {
		pattern := costing.NormalizeNCM(*in.Pattern)
		if pattern == "" {
			return nil, domain.ErrInvalidInput
		}
		rule.Pattern = pattern
	}
	if in.Jurisdiction != nil {
		if *in.Jurisdiction == "" {
			return nil, domain.ErrInvalidInput
		}
		rule.Jurisdiction = *in.Jurisdiction
	}
	if in.Rates != nil {
		rule.Rates = *in.Rates
	}
	if in.Creditable != nil {
		rule.Creditable = *in.Creditable
	}
	if in.Priority != nil {
		rule.Priority = *in.Priority
	}
	if in.ValidFrom != nil {
		rule.ValidFrom = *in.ValidFrom
	}
	if in.ValidTo != nil {
		rule.ValidTo = in.ValidTo
	}
	if in.Description != nil {
		rule.Description = *in.Description
	}
	rule.UpdatedAt = time.Now()
	if err := uc.repo.Update(rule); err != nil {
		return nil, err
	}
	uc.version.Bump()
	return toRuleResponse(rule), nil
}

// Delete remove uma regra.
func (uc *RuleUseCase) Delete(id string) error {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if rule == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.version.Bump()
	return nil
}

func toRuleResponse(r *entity.TaxRule) *dto.RuleResponse {
	return &dto.RuleResponse{
		ID:           r.ID,
		Pattern:      r.Pattern,
		Jurisdiction: r.Jurisdiction,
		Rates:        r.Rates,
		Creditable:   r.Creditable,
		Priority:     r.Priority,
		ValidFrom:    r.ValidFrom,
		ValidTo:      r.ValidTo,
		Seq:          r.Seq,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
