package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

func offerComFaixas() entity.SupplierOffer {
	return entity.SupplierOffer{
		ID:          "of-1",
		BasePrice:   decimal.NewFromInt(10),
		BaseFreight: decimal.NewFromInt(2),
		PriceBreaks: []entity.PriceBreak{
			{ThresholdQuantity: decimal.NewFromInt(50), Price: decimal.NewFromInt(9)},
			{ThresholdQuantity: decimal.NewFromInt(200), Price: decimal.NewFromInt(8)},
		},
		FreightBreaks: []entity.FreightBreak{
			{ThresholdQuantity: decimal.NewFromInt(100), Freight: decimal.NewFromInt(1)},
		},
	}
}

func TestEvaluatePricing_SemFaixaQualificada(t *testing.T) {
	p, err := costing.EvaluatePricing(offerComFaixas(), decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, p.UnitPrice.Equal(decimal.NewFromInt(10)), "abaixo de toda faixa vale o preço base")
	assert.True(t, p.UnitFreight.Equal(decimal.NewFromInt(2)))
}

func TestEvaluatePricing_FaixaDeMaiorThreshold(t *testing.T) {
	p, err := costing.EvaluatePricing(offerComFaixas(), decimal.NewFromInt(250))
	require.NoError(t, err)
	assert.True(t, p.UnitPrice.Equal(decimal.NewFromInt(8)), "250 >= 200, vale a faixa de 200")
	assert.True(t, p.UnitFreight.Equal(decimal.NewFromInt(1)))
}

// Faixas de preço e frete são independentes: a quantidade pode qualificar
// desconto de preço sem qualificar desconto de frete, e vice-versa.
func TestEvaluatePricing_FaixasIndependentes(t *testing.T) {
	p, err := costing.EvaluatePricing(offerComFaixas(), decimal.NewFromInt(60))
	require.NoError(t, err)
	assert.True(t, p.UnitPrice.Equal(decimal.NewFromInt(9)), "60 >= 50 qualifica preço")
	assert.True(t, p.UnitFreight.Equal(decimal.NewFromInt(2)), "60 < 100 não qualifica frete")
}

func TestEvaluatePricing_ThresholdExato(t *testing.T) {
	p, err := costing.EvaluatePricing(offerComFaixas(), decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.True(t, p.UnitPrice.Equal(decimal.NewFromInt(9)), "threshold inclusivo: 50 qualifica a faixa de 50")
}

// Quantidades fracionárias são permitidas (custo por unidade contínua).
func TestEvaluatePricing_QuantidadeFracionaria(t *testing.T) {
	p, err := costing.EvaluatePricing(offerComFaixas(), decimal.NewFromFloat(50.5))
	require.NoError(t, err)
	assert.True(t, p.UnitPrice.Equal(decimal.NewFromInt(9)))
}

func TestEvaluatePricing_QuantidadeInvalida(t *testing.T) {
	for _, q := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := costing.EvaluatePricing(offerComFaixas(), q)
		var invalid *costing.InvalidQuantityError
		assert.ErrorAs(t, err, &invalid, "quantidade %s deve falhar", q)
	}
}

// Propriedade de monotonicidade: o preço unitário não cresce conforme a
// quantidade cruza thresholds ascendentes.
func TestEvaluatePricing_PrecoMonotonicoNaoCrescente(t *testing.T) {
	offer := offerComFaixas()
	prev := decimal.NewFromInt(1 << 30)
	for _, q := range []int64{1, 49, 50, 51, 100, 199, 200, 500} {
		p, err := costing.EvaluatePricing(offer, decimal.NewFromInt(q))
		require.NoError(t, err)
		assert.True(t, p.UnitPrice.LessThanOrEqual(prev),
			"preço em q=%d (%s) não pode exceder o da quantidade anterior (%s)", q, p.UnitPrice, prev)
		prev = p.UnitPrice
	}
}
