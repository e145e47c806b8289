package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

// CreateOfferRequest body para POST /api/quotations/{quotationId}/offers.
type CreateOfferRequest struct {
	SupplierName   string                `json:"supplier_name"`
	NCM            string                `json:"ncm"`
	BasePrice      decimal.Decimal       `json:"base_price"`
	BaseFreight    decimal.Decimal       `json:"base_freight"`
	PriceBreaks    []entity.PriceBreak   `json:"price_breaks,omitempty"`
	FreightBreaks  []entity.FreightBreak `json:"freight_breaks,omitempty"`
	TaxRates       entity.TaxRates       `json:"tax_rates"`
	Creditable     bool                  `json:"creditable"`
	RegimeCategory string                `json:"regime_category"`
	MOQ            *decimal.Decimal      `json:"minimum_order_quantity,omitempty"`
	MaxCapacity    *decimal.Decimal      `json:"max_capacity,omitempty"`
	NegotiatedUnit string                `json:"negotiated_unit"`
	Yield          *entity.YieldConfig   `json:"yield,omitempty"`
}

// UpdateOfferRequest body para PUT; campos nil não são alterados.
type UpdateOfferRequest struct {
	SupplierName   *string               `json:"supplier_name,omitempty"`
	NCM            *string               `json:"ncm,omitempty"`
	BasePrice      *decimal.Decimal      `json:"base_price,omitempty"`
	BaseFreight    *decimal.Decimal      `json:"base_freight,omitempty"`
	PriceBreaks    []entity.PriceBreak   `json:"price_breaks,omitempty"`
	FreightBreaks  []entity.FreightBreak `json:"freight_breaks,omitempty"`
	TaxRates       *entity.TaxRates      `json:"tax_rates,omitempty"`
	Creditable     *bool                 `json:"creditable,omitempty"`
	RegimeCategory *string               `json:"regime_category,omitempty"`
	MOQ            *decimal.Decimal      `json:"minimum_order_quantity,omitempty"`
	MaxCapacity    *decimal.Decimal      `json:"max_capacity,omitempty"`
	NegotiatedUnit *string               `json:"negotiated_unit,omitempty"`
	Yield          *entity.YieldConfig   `json:"yield,omitempty"`
}

// OfferResponse representação de uma oferta nas respostas.
type OfferResponse struct {
	ID             string                `json:"id"`
	QuotationID    string                `json:"quotation_id"`
	SupplierName   string                `json:"supplier_name"`
	NCM            string                `json:"ncm"`
	BasePrice      decimal.Decimal       `json:"base_price"`
	BaseFreight    decimal.Decimal       `json:"base_freight"`
	PriceBreaks    []entity.PriceBreak   `json:"price_breaks,omitempty"`
	FreightBreaks  []entity.FreightBreak `json:"freight_breaks,omitempty"`
	TaxRates       entity.TaxRates       `json:"tax_rates"`
	Creditable     bool                  `json:"creditable"`
	RegimeCategory string                `json:"regime_category"`
	MOQ            *decimal.Decimal      `json:"minimum_order_quantity,omitempty"`
	MaxCapacity    *decimal.Decimal      `json:"max_capacity,omitempty"`
	NegotiatedUnit string                `json:"negotiated_unit"`
	Yield          *entity.YieldConfig   `json:"yield,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// OfferListResponse listagem de ofertas de uma cotação.
type OfferListResponse struct {
	Items []OfferResponse `json:"items"`
	Total int             `json:"total"`
}
