package promoter

import (
	"context"
)

// Repository define a interface para operações de repositório de promoters
type Repository interface {
	// Create cria um novo promoter
	Create(ctx context.Context, p *Promoter) error

	// FindByID busca um promoter pelo user_id
	FindByID(ctx context.Context, userID string) (*Promoter, error)

	// FindByCode busca um promoter pelo código de login/referência
	FindByCode(ctx context.Context, code string) (*Promoter, error)

	// List lista os promoters com paginação
	List(ctx context.Context, limit, offset int) ([]Promoter, error)

	// ListAll lista todos os promoters. É o snapshot consumido pelo
	// motor de liquidação e pelo ranking
	ListAll(ctx context.Context) ([]Promoter, error)

	// ListByTeam lista os promoters atribuídos a um squad
	ListByTeam(ctx context.Context, teamID string) ([]Promoter, error)

	// Update atualiza os dados de um promoter existente
	Update(ctx context.Context, p *Promoter) error

	// AssignTeam atribui (ou remove, com teamID vazio) o squad do promoter
	AssignTeam(ctx context.Context, userID, teamID string) error

	// RefreshTotals recalcula os totais denormalizados do promoter a
	// partir do livro de pedidos concluídos
	RefreshTotals(ctx context.Context, userID string) error

	// Delete remove um promoter
	Delete(ctx context.Context, userID string) error

	// Count conta quantos promoters existem
	Count(ctx context.Context) (int, error)
}

// TeamRepository define a interface para operações de repositório de squads
type TeamRepository interface {
	// Create cria um novo squad
	Create(ctx context.Context, t *SalesTeam) error

	// FindByID busca um squad pelo ID
	FindByID(ctx context.Context, id string) (*SalesTeam, error)

	// List lista todos os squads
	List(ctx context.Context) ([]SalesTeam, error)

	// Update atualiza os dados de um squad existente
	Update(ctx context.Context, t *SalesTeam) error

	// Delete remove um squad. Os membros são desatribuídos
	// (sales_team_id limpo), nunca removidos.
	Delete(ctx context.Context, id string) error
}
