package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/viafiscal/custoreal-api/internal/domain"
	"github.com/viafiscal/custoreal-api/internal/domain/entity"
	"github.com/viafiscal/custoreal-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo implementação do porto OfferRepository sobre PostgreSQL (usável com pool ou tx).
// Os degraus de preço/frete e a configuração de rendimento são colunas JSONB:
// o codec JSON do pgx faz o marshal/unmarshal direto das structs do domínio.
type OfferRepo struct {
	q Querier
}

// NewOfferRepository constrói o adaptador de persistência de ofertas. Passar pool ou tx (Querier).
func NewOfferRepository(q Querier) *OfferRepo {
	return &OfferRepo{q: q}
}

const offerColumns = `id, quotation_id, supplier_name, ncm, base_price, base_freight,
	price_breaks, freight_breaks, tax_ibs, tax_cbs, tax_is, creditable, regime_category,
	minimum_order_quantity, max_capacity, negotiated_unit, yield_config, created_at, updated_at`

// Create persiste uma nova oferta de fornecedor.
func (r *OfferRepo) Create(offer *entity.SupplierOffer) error {
	query := `
		INSERT INTO supplier_offers (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		offer.ID, offer.QuotationID, offer.SupplierName, offer.NCM, offer.BasePrice, offer.BaseFreight,
		offer.PriceBreaks, offer.FreightBreaks, offer.TaxRates.IBS, offer.TaxRates.CBS, offer.TaxRates.IS,
		offer.Creditable, offer.RegimeCategory, offer.MinimumOrderQuantity, offer.MaxCapacity,
		offer.NegotiatedUnit, offer.Yield, offer.CreatedAt, offer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// GetByID obtém uma oferta por ID. Retorna (nil, nil) quando não existe.
func (r *OfferRepo) GetByID(id string) (*entity.SupplierOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM supplier_offers WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	offer, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return offer, nil
}

// ListByQuotation lista as ofertas de uma cotação, ordenadas por nome de fornecedor.
func (r *OfferRepo) ListByQuotation(quotationID string) ([]entity.SupplierOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM supplier_offers
		WHERE quotation_id = $1 ORDER BY supplier_name, id`
	rows, err := r.q.Query(context.Background(), query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var offers []entity.SupplierOffer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		offers = append(offers, *offer)
	}
	return offers, rows.Err()
}

// CountByQuotation conta as ofertas de uma cotação, para o limite de fornecedores.
func (r *OfferRepo) CountByQuotation(quotationID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM supplier_offers WHERE quotation_id = $1`, quotationID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count offers: %w", err)
	}
	return count, nil
}

// Update regrava a oferta inteira. Retorna domain.ErrNotFound se o ID não existe.
func (r *OfferRepo) Update(offer *entity.SupplierOffer) error {
	query := `
		UPDATE supplier_offers SET
			quotation_id = $2, supplier_name = $3, ncm = $4, base_price = $5, base_freight = $6,
			price_breaks = $7, freight_breaks = $8, tax_ibs = $9, tax_cbs = $10, tax_is = $11,
			creditable = $12, regime_category = $13, minimum_order_quantity = $14, max_capacity = $15,
			negotiated_unit = $16, yield_config = $17, updated_at = $18
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		offer.ID, offer.QuotationID, offer.SupplierName, offer.NCM, offer.BasePrice, offer.BaseFreight,
		offer.PriceBreaks, offer.FreightBreaks, offer.TaxRates.IBS, offer.TaxRates.CBS, offer.TaxRates.IS,
		offer.Creditable, offer.RegimeCategory, offer.MinimumOrderQuantity, offer.MaxCapacity,
		offer.NegotiatedUnit, offer.Yield, offer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma oferta. Retorna domain.ErrNotFound se o ID não existe.
func (r *OfferRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM supplier_offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOffer(row pgx.Row) (*entity.SupplierOffer, error) {
	var o entity.SupplierOffer
	err := row.Scan(
		&o.ID, &o.QuotationID, &o.SupplierName, &o.NCM, &o.BasePrice, &o.BaseFreight,
		&o.PriceBreaks, &o.FreightBreaks, &o.TaxRates.IBS, &o.TaxRates.CBS, &o.TaxRates.IS,
		&o.Creditable, &o.RegimeCategory, &o.MinimumOrderQuantity, &o.MaxCapacity,
		&o.NegotiatedUnit, &o.Yield, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
