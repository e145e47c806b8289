package usecase_test

import (
	"sort"

	"github.com/viafiscal/custoreal-api/internal/domain/entity"
)

// Repositórios em memória para os testes dos casos de uso.

type memOfferRepo struct {
	offers map[string]entity.SupplierOffer
}

func newMemOfferRepo() *memOfferRepo {
	return &memOfferRepo{offers: make(map[string]entity.SupplierOffer)}
}

func (m *memOfferRepo) Create(o *entity.SupplierOffer) error {
	m.offers[o.ID] = *o
	return nil
}

func (m *memOfferRepo) GetByID(id string) (*entity.SupplierOffer, error) {
	if o, ok := m.offers[id]; ok {
		cp := o
		return &cp, nil
	}
	return nil, nil
}

func (m *memOfferRepo) ListByQuotation(quotationID string) ([]entity.SupplierOffer, error) {
	var out []entity.SupplierOffer
	for _, o := range m.offers {
		if o.QuotationID == quotationID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memOfferRepo) CountByQuotation(quotationID string) (int, error) {
	n := 0
	for _, o := range m.offers {
		if o.QuotationID == quotationID {
			n++
		}
	}
	return n, nil
}

func (m *memOfferRepo) Update(o *entity.SupplierOffer) error {
	m.offers[o.ID] = *o
	return nil
}

func (m *memOfferRepo) Delete(id string) error {
	delete(m.offers, id)
	return nil
}

type memRuleRepo struct {
	rules []entity.TaxRule
	seq   int64
}

func (m *memRuleRepo) Create(r *entity.TaxRule) error {
	m.seq++
	r.Seq = m.seq
	m.rules = append(m.rules, *r)
	return nil
}

func (m *memRuleRepo) GetByID(id string) (*entity.TaxRule, error) {
	for _, r := range m.rules {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRuleRepo) List(limit, offset int) ([]entity.TaxRule, error) {
	if offset >= len(m.rules) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.rules) {
		end = len(m.rules)
	}
	return m.rules[offset:end], nil
}

func (m *memRuleRepo) ListAll() ([]entity.TaxRule, error) {
	out := make([]entity.TaxRule, len(m.rules))
	copy(out, m.rules)
	return out, nil
}

func (m *memRuleRepo) Update(r *entity.TaxRule) error {
	for i := range m.rules {
		if m.rules[i].ID == r.ID {
			m.rules[i] = *r
			return nil
		}
	}
	return nil
}

func (m *memRuleRepo) Delete(id string) error {
	for i := range m.rules {
		if m.rules[i].ID == id {
			m.rules = append(m.rules[:i], m.rules[i+1:]...)
			return nil
		}
	}
	return nil
}

type memScenarioRepo struct {
	scenarios map[string]entity.Scenario
}

func newMemScenarioRepo() *memScenarioRepo {
	return &memScenarioRepo{scenarios: make(map[string]entity.Scenario)}
}

func (m *memScenarioRepo) GetByKey(key string) (*entity.Scenario, error) {
	if s, ok := m.scenarios[key]; ok {
		cp := s
		return &cp, nil
	}
	return nil, nil
}

func (m *memScenarioRepo) ListAll() ([]entity.Scenario, error) {
	var out []entity.Scenario
	for _, s := range m.scenarios {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *memScenarioRepo) Upsert(s *entity.Scenario) error {
	m.scenarios[s.Key] = *s
	return nil
}
