package dto

import (
	"time"

	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

// CreateRuleRequest body para POST /api/tax-rules (superfície administrativa).
type CreateRuleRequest struct {
	Pattern      string          `json:"pattern"`
	Jurisdiction string          `json:"jurisdiction"`
	Rates        entity.TaxRates `json:"rates"`
	Creditable   bool            `json:"creditable"`
	Priority     int             `json:"priority"`
	ValidFrom    time.Time       `json:"valid_from"`
	ValidTo      *time.Time      `json:"valid_to,omitempty"`
	Description  string          `json:"description,omitempty"`
}

// UpdateRuleRequest body para PUT; campos nil não são alterados.
type UpdateRuleRequest struct {
	Pattern      *string          `json:"pattern,omitempty"`
	Jurisdiction *string          `json:"jurisdiction,omitempty"`
	Rates        *entity.TaxRates `json:"rates,omitempty"`
	Creditable   *bool            `json:"creditable,omitempty"`
	Priority     *int             `json:"priority,omitempty"`
	ValidFrom    *time.Time       `json:"valid_from,omitempty"`
	ValidTo      *time.Time       `json:"valid_to,omitempty"`
	Description  *string          `json:"description,omitempty"`
}

// RuleResponse representação de uma regra nas respostas.
type RuleResponse struct {
	ID           string          `json:"id"`
	Pattern      string          `json:"pattern"`
	Jurisdiction string          `json:"jurisdiction"`
	Rates        entity.TaxRates `json:"rates"`
	Creditable   bool            `json:"creditable"`
	Priority     int             `json:"priority"`
	ValidFrom    time.Time       `json:"valid_from"`
	ValidTo      *time.Time      `json:"valid_to,omitempty"`
	Seq          int64           `json:"seq"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RuleListResponse listagem paginada de regras.
type RuleListResponse struct {
	Items []RuleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
