package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegimeCategory regime tributário do fornecedor. Determina quanto do imposto
// pago na compra é recuperável como crédito.
type RegimeCategory string

const (
	RegimeNormal    RegimeCategory = "normal"    // crédito integral
	RegimeSimples   RegimeCategory = "simples"   // sem crédito, independente da flag creditable
	RegimePresumido RegimeCategory = "presumido" // crédito parcial (fração configurável)
)

// Valid verifica se o regime é um dos três conhecidos.
func (r RegimeCategory) Valid() bool {
	switch r {
	case RegimeNormal, RegimeSimples, RegimePresumido:
		return true
	}
	return false
}

// PriceBreak faixa de desconto por quantidade. Aplica-se a faixa de maior
// threshold que ainda seja <= quantidade solicitada.
type PriceBreak struct {
	ThresholdQuantity decimal.Decimal `json:"threshold_quantity"`
	Price             decimal.Decimal `json:"price"`
}

// FreightBreak faixa de frete por quantidade, independente das faixas de preço.
type FreightBreak struct {
	ThresholdQuantity decimal.Decimal `json:"threshold_quantity"`
	Freight           decimal.Decimal `json:"freight"`
}

// YieldConfig fator de rendimento entre unidade comprada e unidade utilizável
// (ex.: carne crua -> carne limpa, 80%).
type YieldConfig struct {
	InputUnit       string          `json:"input_unit"`
	OutputUnit      string          `json:"output_unit"`
	YieldPercentage decimal.Decimal `json:"yield_percentage"` // (0, 100]
}

// TaxRates alíquotas dos três componentes tributários (percentuais).
// IBS e CBS são os tributos unificados da reforma; IS é o imposto seletivo.
type TaxRates struct {
	IBS decimal.Decimal `json:"ibs"`
	CBS decimal.Decimal `json:"cbs"`
	IS  decimal.Decimal `json:"is"`
}

// Sum soma das três alíquotas.
func (t TaxRates) Sum() decimal.Decimal {
	return t.IBS.Add(t.CBS).Add(t.IS)
}

// IsZero true se as três alíquotas são zero.
func (t TaxRates) IsZero() bool {
	return t.IBS.IsZero() && t.CBS.IsZero() && t.IS.IsZero()
}

// SupplierOffer cotação de um fornecedor para um produto. O motor de custo
// nunca muta a oferta; toda saída é uma visão derivada.
type SupplierOffer struct {
	ID           string `json:"id"`
	QuotationID  string `json:"quotation_id"`
	SupplierName string `json:"supplier_name"`
	NCM          string `json:"ncm"`

	// Termos comerciais (moeda por unidade negociada)
	BasePrice     decimal.Decimal `json:"base_price"`
	BaseFreight   decimal.Decimal `json:"base_freight"`
	PriceBreaks   []PriceBreak    `json:"price_breaks,omitempty"`
	FreightBreaks []FreightBreak  `json:"freight_breaks,omitempty"`

	// Postura fiscal
	TaxRates       TaxRates       `json:"tax_rates"`
	Creditable     bool           `json:"creditable"`
	RegimeCategory RegimeCategory `json:"regime_category"`

	// Restrições operacionais
	MinimumOrderQuantity *decimal.Decimal `json:"minimum_order_quantity,omitempty"`
	MaxCapacity          *decimal.Decimal `json:"max_capacity,omitempty"`

	// Contexto de unidade/rendimento
	NegotiatedUnit string       `json:"negotiated_unit"`
	Yield          *YieldConfig `json:"yield,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
