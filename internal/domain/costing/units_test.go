package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

func TestConvert_FatorDireto(t *testing.T) {
	r := costing.NewUnitRegistry()
	r.Register("kg", "g", decimal.NewFromInt(1000))

	got, err := r.Convert(decimal.NewFromFloat(2.5), "kg", "g")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(2500)), "2.5 kg = 2500 g, obtido %s", got)
}

func TestConvert_Inverso(t *testing.T) {
	r := costing.NewUnitRegistry()
	r.Register("kg", "g", decimal.NewFromInt(1000))

	got, err := r.Convert(decimal.NewFromInt(500), "g", "kg")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromFloat(0.5)), "500 g = 0.5 kg, obtido %s", got)
}

// TestConvert_CaminhoEncadeado verifica que a conversão atravessa unidade
// intermediária quando não há fator direto (t -> kg -> g).
func TestConvert_CaminhoEncadeado(t *testing.T) {
	r := costing.NewUnitRegistry()
	r.Register("t", "kg", decimal.NewFromInt(1000))
	r.Register("kg", "g", decimal.NewFromInt(1000))

	got, err := r.Convert(decimal.NewFromInt(2), "t", "g")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(2_000_000)), "2 t = 2.000.000 g, obtido %s", got)
}

func TestConvert_MesmaUnidade(t *testing.T) {
	r := costing.NewUnitRegistry()
	q := decimal.NewFromFloat(3.3)
	got, err := r.Convert(q, "kg", "kg")
	require.NoError(t, err)
	assert.True(t, got.Equal(q))
}

func TestConvert_SemCaminho(t *testing.T) {
	r := costing.NewUnitRegistry()
	r.Register("kg", "g", decimal.NewFromInt(1000))
	r.Register("l", "ml", decimal.NewFromInt(1000))

	_, err := r.Convert(decimal.NewFromInt(1), "kg", "l")
	var mismatch *costing.UnitMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "kg", mismatch.From)
	assert.Equal(t, "l", mismatch.To)
}

func TestConvert_UnidadeDesconhecida(t *testing.T) {
	r := costing.NewUnitRegistry()
	_, err := r.Convert(decimal.NewFromInt(1), "saco", "kg")
	var mismatch *costing.UnitMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestApplyYield_MesmaUnidade(t *testing.T) {
	r := costing.DefaultUnitRegistry()
	cfg := entity.YieldConfig{InputUnit: "kg", OutputUnit: "kg", YieldPercentage: decimal.NewFromInt(80)}

	got, err := r.ApplyYield(decimal.NewFromInt(10), cfg)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(8)), "10 kg a 80%% = 8 kg, obtido %s", got)
}

func TestApplyYield_ComConversao(t *testing.T) {
	r := costing.DefaultUnitRegistry()
	cfg := entity.YieldConfig{InputUnit: "kg", OutputUnit: "g", YieldPercentage: decimal.NewFromInt(50)}

	got, err := r.ApplyYield(decimal.NewFromInt(2), cfg)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1000)), "2 kg a 50%% = 1000 g, obtido %s", got)
}

// Rendimento zero ou negativo é erro de validação, nunca defaultado.
func TestApplyYield_RendimentoInvalido(t *testing.T) {
	r := costing.DefaultUnitRegistry()
	cases := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-10),
		decimal.NewFromInt(101),
	}
	for _, y := range cases {
		cfg := entity.YieldConfig{InputUnit: "kg", OutputUnit: "kg", YieldPercentage: y}
		_, err := r.ApplyYield(decimal.NewFromInt(1), cfg)
		var invalid *costing.InvalidYieldError
		assert.ErrorAs(t, err, &invalid, "rendimento %s deve falhar", y)
	}
}

// Rendimento de exatamente 100%% é o limite superior válido.
func TestApplyYield_CemPorCento(t *testing.T) {
	r := costing.DefaultUnitRegistry()
	cfg := entity.YieldConfig{InputUnit: "kg", OutputUnit: "kg", YieldPercentage: decimal.NewFromInt(100)}
	got, err := r.ApplyYield(decimal.NewFromInt(7), cfg)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(7)))
}
