package sale

import (
	"context"
)

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// CreateWithItems persiste a venda e seus itens em uma única transação
	CreateWithItems(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID, incluindo itens e dados de produto
	FindByID(ctx context.Context, id string) (*Sale, error)

	// FindByUser lista as vendas de um usuário com paginação
	FindByUser(ctx context.Context, userID string, limit, offset int) ([]*Sale, error)

	// List lista todas as vendas com paginação (visão administrativa)
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// UpdateStatus troca o status da venda somente se o status atual for o
	// esperado (compare-and-swap). Retorna false quando nenhuma linha foi
	// alterada, seja por não existir ou por atualização concorrente.
	UpdateStatus(ctx context.Context, id string, from, to Status) (bool, error)

	// UpdateNotes atualiza as observações administrativas da venda
	UpdateNotes(ctx context.Context, id string, notes string) error

	// ExistsByNumber verifica se já existe uma venda com o número informado
	ExistsByNumber(ctx context.Context, number string) (bool, error)

	// CountByUser conta quantas vendas um usuário possui
	CountByUser(ctx context.Context, userID string) (int, error)

	// Count conta o total de vendas
	Count(ctx context.Context) (int, error)
}
