package costing

import (
	"fmt"
	"strings"
	"time"

	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

// RuleSet snapshot somente-leitura das regras tributárias usado em uma
// resolução. É passado explicitamente a cada chamada (nada de tabela global):
// requisições concorrentes enxergam snapshots independentes.
type RuleSet struct {
	Rules []entity.TaxRule

	// ExcludedPrefixes prefixos NCM vetados a tratamento favorecido
	// (categorias de luxo/vício, ex.: "22" bebidas, "24" fumo).
	ExcludedPrefixes []string

	// StandardRates alíquotas de referência aplicadas quando o veto rebaixa
	// uma regra favorecida.
	StandardRates entity.TaxRates
}

// Resolution resultado da resolução de regra. Ausência de regra NÃO é erro:
// produtos fora do catálogo são estado normal e recebem o default zero com
// explicação.
type Resolution struct {
	Rule        entity.TaxRule
	Matched     bool
	Vetoed      bool
	Explanation string
	Warnings    []string
}

// NormalizeNCM remove tudo que não for dígito ("1006.30.11" -> "10063011").
func NormalizeNCM(code string) string {
	var b strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// Resolve encontra a regra aplicável para (código NCM, UF, data).
// Seleção: entre as regras vigentes na data cuja jurisdição casa e cujo
// padrão é prefixo do código normalizado, vence o padrão mais longo; empate
// por Priority (maior) e depois Seq (definição mais recente). Determinístico:
// entradas idênticas produzem sempre a mesma regra.
//
// Após a resolução roda o veto de exclusão: códigos sob prefixo vetado nunca
// recebem tratamento favorecido — a regra é rebaixada às alíquotas padrão,
// não creditável, com warning, em vez de aplicada silenciosamente.
func (rs RuleSet) Resolve(productCode, jurisdiction string, date time.Time) Resolution {
	code := NormalizeNCM(productCode)

	var (
		best  *entity.TaxRule
		found bool
	)
	for i := range rs.Rules {
		r := &rs.Rules[i]
		if !r.ValidAt(date) || !r.MatchesJurisdiction(jurisdiction) {
			continue
		}
		if !strings.HasPrefix(code, NormalizeNCM(r.Pattern)) {
			continue
		}
		if !found || betterMatch(r, best) {
			best = r
			found = true
		}
	}

	if !found {
		return Resolution{
			Rule: entity.TaxRule{
				Pattern:      "",
				Jurisdiction: jurisdiction,
				Creditable:   false,
			},
			Matched:     false,
			Explanation: fmt.Sprintf("No tax rule found for %s", productCode),
		}
	}

	res := Resolution{Rule: *best, Matched: true}

	if prefix, excluded := rs.excludedBy(code); excluded && best.IsPreferential(rs.StandardRates) {
		res.Vetoed = true
		res.Rule.Rates = rs.StandardRates
		res.Rule.Creditable = false
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"NCM %s está sob prefixo excluído %q: tratamento favorecido vetado, aplicada alíquota padrão", code, prefix))
	}

	return res
}

// betterMatch decide se a regra "a" vence a regra "b" atual:
// padrão mais longo > prioridade maior > definição mais recente.
func betterMatch(a, b *entity.TaxRule) bool {
	la, lb := len(NormalizeNCM(a.Pattern)), len(NormalizeNCM(b.Pattern))
	if la != lb {
		return la > lb
	}
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.Seq > b.Seq
}

func (rs RuleSet) excludedBy(normalizedCode string) (string, bool) {
	for _, p := range rs.ExcludedPrefixes {
		np := NormalizeNCM(p)
		if np != "" && strings.HasPrefix(normalizedCode, np) {
			return p, true
		}
	}
	return "", false
}
