package usecase

import (
	"github.com/viafiscal/custoreal-api/internal/application/dto"
	"github.com/viafiscal/custoreal-api/internal/domain/costing"
)

// OptimizerUseCase wrapper fino sobre o otimizador de alocação: o endpoint
// recebe as ofertas com preço efetivo já resolvido (pelo motor de custo ou
// informado direto) e devolve a alocação de menor custo.
type OptimizerUseCase struct{}

// NewOptimizerUseCase constrói o caso de uso.
func NewOptimizerUseCase() *OptimizerUseCase {
	return &OptimizerUseCase{}
}

// Optimize executa a otimização. Erros tipados do motor (quantidade/oferta
// inválida) sobem ao handler; violações de restrição voltam no corpo.
func (uc *OptimizerUseCase) Optimize(in dto.OptimizeRequest) (*dto.OptimizeResponse, error) {
	result, err := costing.Optimize(in.Quantity, in.Offers)
	if err != nil {
		return nil, err
	}
	return &dto.OptimizeResponse{
		Allocation: result.Allocation,
		Cost:       result.TotalCost,
		Violations: result.Violations,
	}, nil
}
