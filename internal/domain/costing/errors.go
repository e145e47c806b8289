// Package costing implementa o motor de custo efetivo e otimização de
// alocação entre fornecedores. Todas as funções são puras: sem I/O, sem
// logging, sem estado compartilhado — os resultados dependem apenas dos
// argumentos, o que permite cache seguro e execução concorrente sobre
// snapshots somente-leitura.
package costing

import "fmt"

// UnitMismatchError não existe caminho de conversão entre as unidades.
// Indica defeito de cadastro: unidades não resolvidas nunca recebem default.
type UnitMismatchError struct {
	From string
	To   string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("sem caminho de conversão entre unidades %q e %q", e.From, e.To)
}

// InvalidQuantityError quantidade solicitada fora do domínio (<= 0).
type InvalidQuantityError struct {
	Quantity string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantidade inválida: %s (deve ser > 0)", e.Quantity)
}

// InvalidYieldError rendimento fora do intervalo (0, 100].
type InvalidYieldError struct {
	Yield string
}

func (e *InvalidYieldError) Error() string {
	return fmt.Sprintf("rendimento inválido: %s%% (deve estar em (0, 100])", e.Yield)
}

// InvalidOfferError oferta malformada para o otimizador (preço não positivo,
// id vazio, lista vazia).
type InvalidOfferError struct {
	Reason string
}

func (e *InvalidOfferError) Error() string {
	return "oferta inválida: " + e.Reason
}

// SupplierLimitError limite de negócio da camada CRUD: máximo de fornecedores
// por cotação excedido. O chamador deve capturar e apresentar ao usuário.
type SupplierLimitError struct {
	QuotationID string
	Limit       int
}

func (e *SupplierLimitError) Error() string {
	return fmt.Sprintf("cotação %s excede o limite de %d fornecedores", e.QuotationID, e.Limit)
}
