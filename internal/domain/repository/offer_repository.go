package repository

import "github.com/viafiscal/custoreal-api/internal/domain/entity"

// OfferRepository porta de persistência para ofertas de fornecedores.
// A camada de domínio só lê; criação/edição é responsabilidade do CRUD.
type OfferRepository interface {
	Create(offer *entity.SupplierOffer) error
	GetByID(id string) (*entity.SupplierOffer, error)
	ListByQuotation(quotationID string) ([]entity.SupplierOffer, error)
	CountByQuotation(quotationID string) (int, error)
	Update(offer *entity.SupplierOffer) error
	Delete(id string) error
}
