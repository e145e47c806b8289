package costing

import (
	"github.com/shopspring/decimal"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

// Pricing preço e frete unitários após aplicar as faixas de desconto.
type Pricing struct {
	UnitPrice   decimal.Decimal
	UnitFreight decimal.Decimal
}

// EvaluatePricing seleciona, para preço e frete de forma independente, a faixa
// de maior threshold que ainda seja <= quantidade solicitada; sem faixa
// qualificada vale o valor base. Quantidades fracionárias são permitidas
// (custo por unidade contínua, não por lote inteiro).
func EvaluatePricing(offer entity.SupplierOffer, requestedQuantity decimal.Decimal) (Pricing, error) {
	if requestedQuantity.Sign() <= 0 {
		return Pricing{}, &InvalidQuantityError{Quantity: requestedQuantity.String()}
	}

	p := Pricing{UnitPrice: offer.BasePrice, UnitFreight: offer.BaseFreight}

	bestThreshold := decimal.Zero
	for _, pb := range offer.PriceBreaks {
		if pb.ThresholdQuantity.LessThanOrEqual(requestedQuantity) && pb.ThresholdQuantity.GreaterThanOrEqual(bestThreshold) {
			bestThreshold = pb.ThresholdQuantity
			p.UnitPrice = pb.Price
		}
	}

	bestThreshold = decimal.Zero
	for _, fb := range offer.FreightBreaks {
		if fb.ThresholdQuantity.LessThanOrEqual(requestedQuantity) && fb.ThresholdQuantity.GreaterThanOrEqual(bestThreshold) {
			bestThreshold = fb.ThresholdQuantity
			p.UnitFreight = fb.Freight
		}
	}

	return p, nil
}
