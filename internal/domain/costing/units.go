package costing

import (
	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// UnitRegistry registro de fatores de conversão entre pares de unidades.
// Registrar (kg -> g, 1000) também registra o inverso (g -> kg, 0.001).
// A conversão pode encadear por unidades intermediárias quando não há fator
// direto (busca em largura sobre o grafo de pares registrados).
type UnitRegistry struct {
	factors map[string]map[string]decimal.Decimal
}

// NewUnitRegistry cria um registro vazio.
func NewUnitRegistry() *UnitRegistry {
	return &UnitRegistry{factors: make(map[string]map[string]decimal.Decimal)}
}

// DefaultUnitRegistry registro com as unidades usuais de compra de insumos.
func DefaultUnitRegistry() *UnitRegistry {
	r := NewUnitRegistry()
	r.Register("kg", "g", decimal.NewFromInt(1000))
	r.Register("t", "kg", decimal.NewFromInt(1000))
	r.Register("l", "ml", decimal.NewFromInt(1000))
	r.Register("cx", "un", decimal.NewFromInt(12))
	r.Register("fd", "un", decimal.NewFromInt(6))
	return r
}

// Register adiciona o fator from->to e o inverso to->from.
// Fator não positivo é ignorado.
func (r *UnitRegistry) Register(from, to string, factor decimal.Decimal) {
	if factor.Sign() <= 0 || from == "" || to == "" || from == to {
		return
	}
	if r.factors[from] == nil {
		r.factors[from] = make(map[string]decimal.Decimal)
	}
	if r.factors[to] == nil {
		r.factors[to] = make(map[string]decimal.Decimal)
	}
	r.factors[from][to] = factor
	r.factors[to][from] = decimal.NewFromInt(1).Div(factor)
}

// Convert converte quantity de from para to. Se não há fator direto, procura
// um caminho por unidades intermediárias; sem caminho retorna UnitMismatchError.
func (r *UnitRegistry) Convert(quantity decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return quantity, nil
	}
	factor, err := r.pathFactor(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return quantity.Mul(factor), nil
}

// pathFactor BFS sobre o grafo de conversão acumulando o fator do caminho.
func (r *UnitRegistry) pathFactor(from, to string) (decimal.Decimal, error) {
	if _, ok := r.factors[from]; !ok {
		return decimal.Zero, &UnitMismatchError{From: from, To: to}
	}
	type node struct {
		unit   string
		factor decimal.Decimal
	}
	visited := map[string]bool{from: true}
	queue := []node{{unit: from, factor: decimal.NewFromInt(1)}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for next, f := range r.factors[cur.unit] {
			if visited[next] {
				continue
			}
			acc := cur.factor.Mul(f)
			if next == to {
				return acc, nil
			}
			visited[next] = true
			queue = append(queue, node{unit: next, factor: acc})
		}
	}
	return decimal.Zero, &UnitMismatchError{From: from, To: to}
}

// ApplyYield aplica o fator de rendimento: converte a quantidade da unidade de
// entrada para a de saída (se diferirem) e multiplica por yield%/100.
// Rendimento fora de (0, 100] é erro de validação, nunca defaultado.
func (r *UnitRegistry) ApplyYield(quantity decimal.Decimal, cfg entity.YieldConfig) (decimal.Decimal, error) {
	if cfg.YieldPercentage.Sign() <= 0 || cfg.YieldPercentage.GreaterThan(hundred) {
		return decimal.Zero, &InvalidYieldError{Yield: cfg.YieldPercentage.String()}
	}
	q := quantity
	if cfg.InputUnit != cfg.OutputUnit {
		converted, err := r.Convert(q, cfg.InputUnit, cfg.OutputUnit)
		if err != nil {
			return decimal.Zero, err
		}
		q = converted
	}
	return q.Mul(cfg.YieldPercentage).Div(hundred), nil
}
