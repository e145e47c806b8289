package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/domain"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
	"github.com/viafiscal/custoreal-api/internal/domain/repository"
)

// OfferUseCase CRUD de ofertas de fornecedores por cotação. O motor de custo
// nunca escreve: toda mutação passa por aqui e invalida o cache de comparação
// via bump de versão.
type OfferUseCase struct {
	repo    repository.OfferRepository
	cfg     EngineConfig
	version *SnapshotVersion
}

// NewOfferUseCase constrói o caso de uso.
func NewOfferUseCase(repo repository.OfferRepository, cfg EngineConfig, version *SnapshotVersion) *OfferUseCase {
	return &OfferUseCase{repo: repo, cfg: cfg, version: version}
}

// Create cria uma oferta. Aplica o limite de negócio de fornecedores por
// cotação: exceder devolve SupplierLimitError (erro tipado, não violação).
func (uc *OfferUseCase) Create(quotationID string, in dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	if quotationID == "" || in.SupplierName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.BasePrice.Sign() <= 0 || in.BaseFreight.Sign() < 0 {
		return nil, domain.ErrInvalidInput
	}
	regime := entity.RegimeCategory(in.RegimeCategory)
	if in.RegimeCategory == "" {
		regime = entity.RegimeNormal
	} else if !regime.Valid() {
		return nil, domain.ErrInvalidInput
	}

	count, err := uc.repo.CountByQuotation(quotationID)
	if err != nil {
		return nil, err
	}
	if count >= uc.cfg.MaxSuppliersPerQuotation {
		return nil, &costing.SupplierLimitError{QuotationID: quotationID, Limit: uc.cfg.MaxSuppliersPerQuotation}
	}

	now := time.Now()
	offer := &entity.SupplierOffer{
		ID:                   uuid.New().String(),
		QuotationID:          quotationID,
		SupplierName:         in.SupplierName,
		NCM:                  in.NCM,
		BasePrice:            in.BasePrice,
		BaseFreight:          in.BaseFreight,
		PriceBreaks:          in.PriceBreaks,
		FreightBreaks:        in.FreightBreaks,
		TaxRates:             in.TaxRates,
		Creditable:           in.Creditable,
		RegimeCategory:       regime,
		MinimumOrderQuantity: in.MOQ,
		MaxCapacity:          in.MaxCapacity,
		NegotiatedUnit:       in.NegotiatedUnit,
		Yield:                in.Yield,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(offer); err != nil {
		return nil, err
	}
	uc.version.Bump()
	return toOfferResponse(offer), nil
}

// GetByID obtém uma oferta por ID.
func (uc *OfferUseCase) GetByID(id string) (*dto.OfferResponse, error) {
	offer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, nil
	}
	return toOfferResponse(offer), nil
}

// List lista as ofertas de uma cotação.
func (uc *OfferUseCase) List(quotationID string) (*dto.OfferListResponse, error) {
	offers, err := uc.repo.ListByQuotation(quotationID)
	if err != nil {
		return nil, err
	}
	out := &dto.OfferListResponse{Items: make([]dto.OfferResponse, 0, len(offers)), Total: len(offers)}
	for i := range offers {
		out.Items = append(out.Items, *toOfferResponse(&offers[i]))
	}
	return out, nil
}

// Update atualiza campos informados de uma oferta.
func (uc *OfferUseCase) Update(id string, in dto.UpdateOfferRequest) (*dto.OfferResponse, error) {
	offer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, nil
	}
	if in.SupplierName != nil {
		offer.SupplierName = *in.SupplierName
	}
	if in.NCM != nil {
		offer.NCM = *in.NCM
	}
	if in.BasePrice != nil {
		if in.BasePrice.Sign() <= 0 {
			return nil, domain.ErrInvalidInput
		}
		offer.BasePrice = *in.BasePrice
	}
	if in.BaseFreight != nil {
		if in.BaseFreight.Sign() < 0 {
			return nil, domain.ErrInvalidInput
		}
		offer.BaseFreight = *in.BaseFreight
	}
	if in.PriceBreaks != nil {
		offer.PriceBreaks = in.PriceBreaks
	}
	if in.FreightBreaks != nil {
		offer.FreightBreaks = in.FreightBreaks
	}
	if in.TaxRates != nil {
		offer.TaxRates = *in.TaxRates
	}
	if in.Creditable != nil {
		offer.Creditable = *in.Creditable
	}
	if in.RegimeCategory != nil {
		regime := entity.RegimeCategory(*in.RegimeCategory)
		if !regime.Valid() {
			return nil, domain.ErrInvalidInput
		}
		offer.RegimeCategory = regime
	}
	if in.MOQ != nil {
		offer.MinimumOrderQuantity = in.MOQ
	}
	if in.MaxCapacity != nil {
		offer.MaxCapacity = in.MaxCapacity
	}
	if in.NegotiatedUnit != nil {
		offer.NegotiatedUnit = *in.NegotiatedUnit
	}
	if in.Yield != nil {
		offer.Yield = in.Yield
	}
	offer.UpdatedAt = time.Now()
	if err := uc.repo.Update(offer); err != nil {
		return nil, err
	}
	uc.version.Bump()
	return toOfferResponse(offer), nil
}

// Delete remove uma oferta.
func (uc *OfferUseCase) Delete(id string) error {
	offer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if offer == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.version.Bump()
	return nil
}

func toOfferResponse(o *entity.SupplierOffer) *dto.OfferResponse {
	return &dto.OfferResponse{
		ID:             o.ID,
		QuotationID:    o.QuotationID,
		SupplierName:   o.SupplierName,
		NCM:            o.NCM,
		BasePrice:      o.BasePrice,
		BaseFreight:    o.BaseFreight,
		PriceBreaks:    o.PriceBreaks,
		FreightBreaks:  o.FreightBreaks,
		TaxRates:       o.TaxRates,
		Creditable:     o.Creditable,
		RegimeCategory: string(o.RegimeCategory),
		MOQ:            o.MinimumOrderQuantity,
		MaxCapacity:    o.MaxCapacity,
		NegotiatedUnit: o.NegotiatedUnit,
		Yield:          o.Yield,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}
