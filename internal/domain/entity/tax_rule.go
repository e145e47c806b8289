package entity

import "time"

// JurisdictionAll casa com qualquer UF.
const JurisdictionAll = "*"

// TaxRule regra tributária: padrão NCM (prefixo), jurisdição (UF ou "*"),
// alíquotas e janela de vigência. A resolução usa longest-prefix-match;
// empates são decididos por Priority (maior vence) e depois por Seq
// (definição mais recente vence).
type TaxRule struct {
	ID           string     `json:"id"`
	Pattern      string     `json:"pattern"` // somente dígitos, prefixo do NCM normalizado
	Jurisdiction string     `json:"jurisdiction"`
	Rates        TaxRates   `json:"rates"`
	Creditable   bool       `json:"creditable"`
	Priority     int        `json:"priority"`
	ValidFrom    time.Time  `json:"valid_from"`
	ValidTo      *time.Time `json:"valid_to,omitempty"` // nil = vigente sem data final
	Seq          int64      `json:"seq"`                // ordem de definição (bigserial)
	Description  string     `json:"description,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ValidAt verifica se a regra está vigente na data dada (janela [ValidFrom, ValidTo)).
func (r TaxRule) ValidAt(date time.Time) bool {
	if date.Before(r.ValidFrom) {
		return false
	}
	if r.ValidTo != nil && !date.Before(*r.ValidTo) {
		return false
	}
	return true
}

// MatchesJurisdiction true se a regra vale para a UF dada (exata ou wildcard).
func (r TaxRule) MatchesJurisdiction(uf string) bool {
	return r.Jurisdiction == JurisdictionAll || r.Jurisdiction == uf
}

// IsPreferential true se a regra concede tratamento favorecido: crédito ou
// alíquota abaixo da referência. Usado pelo veto de exclusão.
func (r TaxRule) IsPreferential(standard TaxRates) bool {
	return r.Creditable || r.Rates.Sum().LessThan(standard.Sum())
}
