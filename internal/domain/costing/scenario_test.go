package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

func TestApplyScenario_NilNaoAltera(t *testing.T) {
	rates := entity.TaxRates{IBS: decimal.NewFromInt(10), CBS: decimal.NewFromInt(5)}
	got := costing.ApplyScenario(rates, nil)
	assert.True(t, got.Sum().Equal(decimal.NewFromInt(15)))
}

// Ano de transição: fator 0.6 sobre as alíquotas da reforma.
func TestApplyScenario_FatorParcial(t *testing.T) {
	rates := entity.TaxRates{IBS: decimal.NewFromInt(10), CBS: decimal.NewFromInt(5)}
	sc := &entity.Scenario{Key: "transicao_2029", RateFactor: decimal.NewFromFloat(0.6)}

	got := costing.ApplyScenario(rates, sc)
	assert.True(t, got.IBS.Equal(decimal.NewFromInt(6)))
	assert.True(t, got.CBS.Equal(decimal.NewFromInt(3)))
}

// Override por componente substitui a alíquota base antes do fator.
func TestApplyScenario_OverrideDepoisFator(t *testing.T) {
	rates := entity.TaxRates{IBS: decimal.NewFromInt(10), CBS: decimal.NewFromInt(5)}
	ibs := decimal.NewFromInt(20)
	sc := &entity.Scenario{
		Key:         "reforma_plena",
		RateFactor:  decimal.NewFromFloat(0.5),
		OverrideIBS: &ibs,
	}

	got := costing.ApplyScenario(rates, sc)
	assert.True(t, got.IBS.Equal(decimal.NewFromInt(10)), "override 20 * fator 0.5")
	assert.True(t, got.CBS.Equal(decimal.NewFromFloat(2.5)))
}

// ApplyScenario nunca muta as alíquotas de entrada.
func TestApplyScenario_NaoMutaEntrada(t *testing.T) {
	rates := entity.TaxRates{IBS: decimal.NewFromInt(10)}
	sc := &entity.Scenario{Key: "x", RateFactor: decimal.NewFromFloat(0.1)}
	_ = costing.ApplyScenario(rates, sc)
	assert.True(t, rates.IBS.Equal(decimal.NewFromInt(10)))
}

func resultado(id string, cost float64, rank int) costing.EffectiveCostResult {
	return costing.EffectiveCostResult{
		OfferID:        id,
		NormalizedCost: decimal.NewFromFloat(cost),
		Rank:           rank,
	}
}

func TestCompareResults_DeltasAbsolutoEPercentual(t *testing.T) {
	base := []costing.EffectiveCostResult{resultado("A", 100, 1), resultado("B", 200, 2)}
	target := []costing.EffectiveCostResult{resultado("A", 110, 1), resultado("B", 150, 2)}

	cmp := costing.CompareResults(base, target)
	require.Len(t, cmp.Items, 2)

	a := cmp.Items[0]
	assert.Equal(t, "A", a.OfferID)
	assert.True(t, a.AbsoluteDelta.Equal(decimal.NewFromInt(10)))
	assert.True(t, a.PercentDelta.Equal(decimal.NewFromInt(10)), "10/100 = 10%%")

	b := cmp.Items[1]
	assert.True(t, b.AbsoluteDelta.Equal(decimal.NewFromInt(-50)))
	assert.True(t, b.PercentDelta.Equal(decimal.NewFromInt(-25)))

	assert.True(t, cmp.TotalBase.Equal(decimal.NewFromInt(300)))
	assert.True(t, cmp.TotalTarget.Equal(decimal.NewFromInt(260)))
	assert.True(t, cmp.TotalDelta.Equal(decimal.NewFromInt(-40)))
}

// Itens presentes em apenas um cenário entram marcados, sem quebrar o total.
func TestCompareResults_ItensSemPar(t *testing.T) {
	base := []costing.EffectiveCostResult{resultado("A", 100, 1)}
	target := []costing.EffectiveCostResult{resultado("B", 80, 1)}

	cmp := costing.CompareResults(base, target)
	require.Len(t, cmp.Items, 2)
	assert.True(t, cmp.Items[0].OnlyInBase)
	assert.True(t, cmp.Items[1].OnlyInTarget)
	assert.True(t, cmp.TotalBase.Equal(decimal.NewFromInt(100)))
	assert.True(t, cmp.TotalTarget.Equal(decimal.NewFromInt(80)))
}

func TestCompareResults_Vazio(t *testing.T) {
	cmp := costing.CompareResults(nil, nil)
	assert.Empty(t, cmp.Items)
	assert.True(t, cmp.TotalDelta.IsZero())
	assert.True(t, cmp.TotalDeltaPct.IsZero())
}
