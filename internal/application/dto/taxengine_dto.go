package dto

import "github.com/shopspring/decimal"

// TaxEngineRequest body para POST /api/tax-engine.
type TaxEngineRequest struct {
	NCM       string          `json:"ncm"`
	UFOrigem  string          `json:"uf_origem"`
	UFDestino string          `json:"uf_destino"`
	Valor     decimal.Decimal `json:"valor"`
	Scenario  string          `json:"scenario,omitempty"`
}

// TaxEngineRates alíquotas percentuais por componente.
type TaxEngineRates struct {
	IBS decimal.Decimal `json:"ibs"`
	CBS decimal.Decimal `json:"cbs"`
	IS  decimal.Decimal `json:"is"`
}

// TaxEngineValues valores monetários por componente sobre o valor informado.
type TaxEngineValues struct {
	IBS   decimal.Decimal `json:"ibs"`
	CBS   decimal.Decimal `json:"cbs"`
	IS    decimal.Decimal `json:"is"`
	Total decimal.Decimal `json:"total"`
}

// TaxEngineResponse contrato do endpoint tax-engine.
type TaxEngineResponse struct {
	Rates        TaxEngineRates  `json:"rates"`
	Values       TaxEngineValues `json:"values"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	Explanation  string          `json:"explanation,omitempty"`
	Warnings     []string        `json:"warnings,omitempty"`
}
