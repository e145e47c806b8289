package costing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// OptimizerOffer entrada do otimizador: preço efetivo por unidade (já
// calculado pelo motor de custo, ou informado direto para comparação simples)
// e restrições operacionais opcionais.
type OptimizerOffer struct {
	ID       string           `json:"id"`
	Price    decimal.Decimal  `json:"price"`
	MOQ      *decimal.Decimal `json:"moq,omitempty"`
	Capacity *decimal.Decimal `json:"capacity,omitempty"`
}

// AllocationResult saída do otimizador. Violations é diagnóstico não fatal:
// inviabilidade de restrição nunca aborta o cálculo — o resultado volta com a
// melhor alocação possível e o chamador decide como apresentar.
type AllocationResult struct {
	Allocation map[string]decimal.Decimal `json:"allocation"`
	TotalCost  decimal.Decimal            `json:"total_cost"`
	Violations []string                   `json:"violations"`
}

// Optimize aloca requiredQuantity entre as ofertas minimizando o custo total.
// Heurística guloso-por-preço com reparo de MOQ (não um solver LP): com
// dezenas de fornecedores o guloso é rápido e auditável.
//
//  1. Ordena por preço ascendente (empate por id, para determinismo).
//  2. Aloca do mais barato ao mais caro, respeitando capacidade.
//  3. Repara alocações parciais abaixo do MOQ: arredonda para cima puxando
//     quantidade de ofertas mais caras, ou zera e redistribui, registrando a
//     violação em ambos os casos.
//  4. Capacidade agregada insuficiente vira violação, nunca erro.
//
// Entrada malformada (quantidade <= 0, lista vazia, preço não positivo, id
// vazio ou duplicado) falha rápido com erro tipado.
func Optimize(requiredQuantity decimal.Decimal, offers []OptimizerOffer) (AllocationResult, error) {
	if requiredQuantity.Sign() <= 0 {
		return AllocationResult{}, &InvalidQuantityError{Quantity: requiredQuantity.String()}
	}
	if len(offers) == 0 {
		return AllocationResult{}, &InvalidOfferError{Reason: "lista de ofertas vazia"}
	}
	seen := make(map[string]bool, len(offers))
	for _, o := range offers {
		if o.ID == "" {
			return AllocationResult{}, &InvalidOfferError{Reason: "oferta sem id"}
		}
		if seen[o.ID] {
			return AllocationResult{}, &InvalidOfferError{Reason: "id duplicado: " + o.ID}
		}
		seen[o.ID] = true
		if o.Price.Sign() <= 0 {
			return AllocationResult{}, &InvalidOfferError{Reason: fmt.Sprintf("preço não positivo na oferta %s", o.ID)}
		}
		if o.MOQ != nil && o.MOQ.Sign() < 0 {
			return AllocationResult{}, &InvalidOfferError{Reason: fmt.Sprintf("moq negativo na oferta %s", o.ID)}
		}
		if o.Capacity != nil && o.Capacity.Sign() < 0 {
			return AllocationResult{}, &InvalidOfferError{Reason: fmt.Sprintf("capacidade negativa na oferta %s", o.ID)}
		}
	}

	sorted := make([]OptimizerOffer, len(offers))
	copy(sorted, offers)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Price.Equal(sorted[j].Price) {
			return sorted[i].Price.LessThan(sorted[j].Price)
		}
		return sorted[i].ID < sorted[j].ID
	})

	result := AllocationResult{
		Allocation: make(map[string]decimal.Decimal, len(sorted)),
		Violations: []string{},
	}
	alloc := make([]decimal.Decimal, len(sorted))
	usable := make([]bool, len(sorted))

	// Exclusão prévia: MOQ acima da demanda total (ou da própria capacidade)
	// torna a oferta inalocável.
	for i, o := range sorted {
		usable[i] = true
		if o.Capacity != nil && o.Capacity.IsZero() {
			usable[i] = false
			continue
		}
		if o.MOQ != nil && o.MOQ.GreaterThan(requiredQuantity) {
			usable[i] = false
			result.Violations = append(result.Violations, fmt.Sprintf(
				"Supplier %s dropped, could not satisfy MOQ of %s without exceeding total quantity", o.ID, o.MOQ.String()))
			continue
		}
		if o.MOQ != nil && o.Capacity != nil && o.MOQ.GreaterThan(*o.Capacity) {
			usable[i] = false
			result.Violations = append(result.Violations, fmt.Sprintf(
				"Supplier %s dropped, MOQ of %s exceeds its capacity of %s", o.ID, o.MOQ.String(), o.Capacity.String()))
		}
	}

	// Guloso: do mais barato ao mais caro.
	remaining := requiredQuantity
	for i, o := range sorted {
		if !usable[i] || remaining.Sign() <= 0 {
			continue
		}
		q := remaining
		if o.Capacity != nil && o.Capacity.LessThan(q) {
			q = *o.Capacity
		}
		alloc[i] = q
		remaining = remaining.Sub(q)
	}

	// Reparo de MOQ: alocação parcial estritamente entre 0 e MOQ é proibida.
	for i, o := range sorted {
		if !usable[i] || o.MOQ == nil || alloc[i].Sign() <= 0 || alloc[i].GreaterThanOrEqual(*o.MOQ) {
			continue
		}
		extra := o.MOQ.Sub(alloc[i])
		if pulled := pullFromDonors(sorted, alloc, usable, i, extra); pulled.Equal(extra) {
			alloc[i] = *o.MOQ
			result.Violations = append(result.Violations, fmt.Sprintf(
				"Supplier %s allocation rounded up to meet MOQ of %s", o.ID, o.MOQ.String()))
			continue
		}
		// Não dá para arredondar sem estourar a demanda: zera e redistribui.
		freed := alloc[i]
		alloc[i] = decimal.Zero
		usable[i] = false
		result.Violations = append(result.Violations, fmt.Sprintf(
			"Supplier %s dropped, could not satisfy MOQ of %s without exceeding total quantity", o.ID, o.MOQ.String()))
		redistribute(sorted, alloc, usable, freed)
	}

	// Capacidade agregada insuficiente: reporta, nunca lança.
	allocated := decimal.Zero
	for _, q := range alloc {
		allocated = allocated.Add(q)
	}
	if allocated.LessThan(requiredQuantity) {
		result.Violations = append(result.Violations, fmt.Sprintf(
			"Insufficient aggregate capacity: requested %s, available %s", requiredQuantity.String(), allocated.String()))
	}

	for i, o := range sorted {
		if alloc[i].Sign() > 0 {
			result.Allocation[o.ID] = alloc[i]
			result.TotalCost = result.TotalCost.Add(alloc[i].Mul(o.Price))
		}
	}
	return result, nil
}

// pullFromDonors tenta liberar `needed` unidades reduzindo outras ofertas
// alocadas, varrendo da mais cara para a mais barata: primeiro até o piso de
// MOQ de cada doadora, depois zerando doadoras inteiras. Mantém a soma total
// conservada. Devolve quanto conseguiu liberar; se não alcança o total, nada
// é alterado.
func pullFromDonors(offers []OptimizerOffer, alloc []decimal.Decimal, usable []bool, i int, needed decimal.Decimal) decimal.Decimal {
	type cut struct {
		idx int
		qty decimal.Decimal
	}
	var cuts []cut
	left := needed

	// Passo 1: reduzir doadoras até seus pisos de MOQ.
	for j := len(offers) - 1; j >= 0 && left.Sign() > 0; j-- {
		if j == i || !usable[j] || alloc[j].Sign() <= 0 {
			continue
		}
		floor := decimal.Zero
		if offers[j].MOQ != nil {
			floor = *offers[j].MOQ
		}
		reducible := alloc[j].Sub(floor)
		if reducible.Sign() <= 0 {
			continue
		}
		q := decimal.Min(reducible, left)
		cuts = append(cuts, cut{idx: j, qty: q})
		left = left.Sub(q)
	}

	// Passo 2: zerar doadoras inteiras se ainda falta.
	if left.Sign() > 0 {
		pending := make(map[int]decimal.Decimal, len(cuts))
		for _, c := range cuts {
			pending[c.idx] = c.qty
		}
		for j := len(offers) - 1; j >= 0 && left.Sign() > 0; j-- {
			if j == i || !usable[j] || alloc[j].Sign() <= 0 {
				continue
			}
			rest := alloc[j].Sub(pending[j])
			if rest.Sign() <= 0 || rest.GreaterThan(left) {
				continue
			}
			cuts = append(cuts, cut{idx: j, qty: rest})
			left = left.Sub(rest)
		}
	}

	if left.Sign() > 0 {
		return needed.Sub(left) // insuficiente: chamador não aplica
	}
	for _, c := range cuts {
		alloc[c.idx] = alloc[c.idx].Sub(c.qty)
	}
	return needed
}

// redistribute devolve `freed` unidades às ofertas ainda utilizáveis com
// capacidade sobrando, da mais barata para a mais cara.
func redistribute(offers []OptimizerOffer, alloc []decimal.Decimal, usable []bool, freed decimal.Decimal) {
	for i := range offers {
		if freed.Sign() <= 0 {
			return
		}
		if !usable[i] {
			continue
		}
		spare := freed
		if offers[i].Capacity != nil {
			room := offers[i].Capacity.Sub(alloc[i])
			if room.Sign() <= 0 {
				continue
			}
			spare = decimal.Min(room, freed)
		}
		alloc[i] = alloc[i].Add(spare)
		freed = freed.Sub(spare)
	}
}
