package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// Sem restrição alguma, 100% da quantidade vai para a oferta mais barata.
func TestOptimize_TudoNaMaisBarata(t *testing.T) {
	got, err := costing.Optimize(dec(100), []costing.OptimizerOffer{
		{ID: "A", Price: dec(10.50)},
		{ID: "B", Price: dec(9.80)},
		{ID: "C", Price: dec(11.20)},
	})
	require.NoError(t, err)

	require.Len(t, got.Allocation, 1)
	assert.True(t, got.Allocation["B"].Equal(dec(100)))
	assert.True(t, got.TotalCost.Equal(dec(980)), "100 * 9.80 = 980, obtido %s", got.TotalCost)
	assert.Empty(t, got.Violations)
}

// MOQ acima da demanda exclui a oferta com violação; o restante segue a ordem
// de preço.
func TestOptimize_MOQAcimaDaDemandaExclui(t *testing.T) {
	got, err := costing.Optimize(dec(100), []costing.OptimizerOffer{
		{ID: "A", Price: dec(10.50), MOQ: decPtr(150)},
		{ID: "B", Price: dec(9.80), MOQ: decPtr(50)},
		{ID: "C", Price: dec(11.20)},
	})
	require.NoError(t, err)

	assert.True(t, got.Allocation["B"].Equal(dec(100)), "B absorve tudo (moq 50 satisfeito)")
	_, temA := got.Allocation["A"]
	assert.False(t, temA, "A não pode receber alocação")
	require.Len(t, got.Violations, 1)
	assert.Contains(t, got.Violations[0], "Supplier A")
	assert.Contains(t, got.Violations[0], "MOQ")
}

func TestOptimize_CapacidadeLimitaETransborda(t *testing.T) {
	got, err := costing.Optimize(dec(100), []costing.OptimizerOffer{
		{ID: "A", Price: dec(9), Capacity: decPtr(60)},
		{ID: "B", Price: dec(11)},
	})
	require.NoError(t, err)

	assert.True(t, got.Allocation["A"].Equal(dec(60)))
	assert.True(t, got.Allocation["B"].Equal(dec(40)))
	assert.True(t, got.TotalCost.Equal(dec(980)), "60*9 + 40*11")
	assert.Empty(t, got.Violations)
}

// Conservação: sem violações, a soma alocada é exatamente a demandada.
func TestOptimize_ConservacaoDoTotal(t *testing.T) {
	got, err := costing.Optimize(dec(137.5), []costing.OptimizerOffer{
		{ID: "A", Price: dec(9), Capacity: decPtr(50.5)},
		{ID: "B", Price: dec(10), Capacity: decPtr(60)},
		{ID: "C", Price: dec(12)},
	})
	require.NoError(t, err)
	require.Empty(t, got.Violations)

	sum := decimal.Zero
	for _, q := range got.Allocation {
		sum = sum.Add(q)
	}
	assert.True(t, sum.Equal(dec(137.5)), "soma %s", sum)
}

// Alocação parcial abaixo do MOQ é arredondada para cima puxando quantidade
// de doadora alocada, conservando o total.
func TestOptimize_ReparoArredondaParaMOQ(t *testing.T) {
	got, err := costing.Optimize(dec(100), []costing.OptimizerOffer{
		{ID: "A", Price: dec(9), Capacity: decPtr(50)},
		{ID: "B", Price: dec(10), Capacity: decPtr(40)},
		{ID: "C", Price: dec(12), MOQ: decPtr(15)},
	})
	require.NoError(t, err)

	// Guloso: A=50, B=40, C=10 (< moq 15). Reparo puxa 5 de B.
	assert.True(t, got.Allocation["A"].Equal(dec(50)))
	assert.True(t, got.Allocation["B"].Equal(dec(35)))
	assert.True(t, got.Allocation["C"].Equal(dec(15)))
	require.Len(t, got.Violations, 1)
	assert.Contains(t, got.Violations[0], "Supplier C allocation rounded up to meet MOQ of 15")

	sum := decimal.Zero
	for _, q := range got.Allocation {
		sum = sum.Add(q)
	}
	assert.True(t, sum.Equal(dec(100)), "arredondamento conserva o total")
}

// Quando não há de onde puxar, a oferta abaixo do MOQ é zerada com violação.
func TestOptimize_ReparoZeraQuandoNaoHaDoadora(t *testing.T) {
	got, err := costing.Optimize(dec(60), []costing.OptimizerOffer{
		{ID: "A", Price: dec(9), Capacity: decPtr(50), MOQ: decPtr(50)},
		{ID: "B", Price: dec(10), MOQ: decPtr(30)},
	})
	require.NoError(t, err)

	// Guloso: A=50, B=10 (< moq 30). A está no piso (moq 50): não doa.
	// B é zerada e as 10 unidades não têm destino: capacidade insuficiente.
	assert.True(t, got.Allocation["A"].Equal(dec(50)))
	_, temB := got.Allocation["B"]
	assert.False(t, temB)
	require.Len(t, got.Violations, 2)
	assert.Contains(t, got.Violations[0], "Supplier B dropped")
	assert.Contains(t, got.Violations[1], "Insufficient aggregate capacity: requested 60, available 50")
}

// Capacidade agregada insuficiente é condição reportada, nunca erro: aloca
// tudo que há e segue.
func TestOptimize_CapacidadeAgregadaInsuficiente(t *testing.T) {
	got, err := costing.Optimize(dec(200), []costing.OptimizerOffer{
		{ID: "A", Price: dec(9), Capacity: decPtr(50)},
		{ID: "B", Price: dec(10), Capacity: decPtr(30)},
	})
	require.NoError(t, err)

	assert.True(t, got.Allocation["A"].Equal(dec(50)))
	assert.True(t, got.Allocation["B"].Equal(dec(30)))
	require.Len(t, got.Violations, 1)
	assert.Contains(t, got.Violations[0], "Insufficient aggregate capacity: requested 200, available 80")
}

func TestOptimize_CapacidadeZeroIgnorada(t *testing.T) {
	got, err := costing.Optimize(dec(10), []costing.OptimizerOffer{
		{ID: "A", Price: dec(5), Capacity: decPtr(0)},
		{ID: "B", Price: dec(9)},
	})
	require.NoError(t, err)
	assert.True(t, got.Allocation["B"].Equal(dec(10)))
	_, temA := got.Allocation["A"]
	assert.False(t, temA)
}

// Entrada malformada falha rápido com erro tipado; inviabilidade não.
func TestOptimize_EntradasInvalidas(t *testing.T) {
	valid := []costing.OptimizerOffer{{ID: "A", Price: dec(10)}}

	_, err := costing.Optimize(dec(0), valid)
	var invalidQty *costing.InvalidQuantityError
	assert.ErrorAs(t, err, &invalidQty)

	_, err = costing.Optimize(dec(-5), valid)
	assert.ErrorAs(t, err, &invalidQty)

	var invalidOffer *costing.InvalidOfferError
	_, err = costing.Optimize(dec(10), nil)
	assert.ErrorAs(t, err, &invalidOffer)

	_, err = costing.Optimize(dec(10), []costing.OptimizerOffer{{ID: "A", Price: dec(0)}})
	assert.ErrorAs(t, err, &invalidOffer)

	_, err = costing.Optimize(dec(10), []costing.OptimizerOffer{{ID: "", Price: dec(1)}})
	assert.ErrorAs(t, err, &invalidOffer)

	_, err = costing.Optimize(dec(10), []costing.OptimizerOffer{
		{ID: "A", Price: dec(1)}, {ID: "A", Price: dec(2)},
	})
	assert.ErrorAs(t, err, &invalidOffer)
}

// Idempotência: o mesmo input produz exatamente o mesmo resultado.
func TestOptimize_Idempotente(t *testing.T) {
	offers := []costing.OptimizerOffer{
		{ID: "A", Price: dec(10.50), MOQ: decPtr(20)},
		{ID: "B", Price: dec(9.80), Capacity: decPtr(70)},
		{ID: "C", Price: dec(11.20)},
	}
	first, err := costing.Optimize(dec(100), offers)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := costing.Optimize(dec(100), offers)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// Empate de preço é desfeito pelo id, mantendo a ordenação determinística.
func TestOptimize_EmpateDePrecoDeterministico(t *testing.T) {
	got, err := costing.Optimize(dec(10), []costing.OptimizerOffer{
		{ID: "Z", Price: dec(9.80)},
		{ID: "A", Price: dec(9.80)},
	})
	require.NoError(t, err)
	assert.True(t, got.Allocation["A"].Equal(dec(10)), "id menor vence o empate")
}
