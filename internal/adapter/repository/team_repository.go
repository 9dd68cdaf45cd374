package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório de squads
var (
	ErrTeamNotFound = errors.New("squad não encontrado")
)

// TeamRepository implementa a interface promoter.TeamRepository
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository cria uma nova instância de TeamRepository
func NewTeamRepository(db *pgxpool.Pool) promoter.TeamRepository {
	return &TeamRepository{
		db: db,
	}
}

// Create implementa promoter.TeamRepository.Create
func (r *TeamRepository) Create(ctx context.Context, t *promoter.SalesTeam) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sales_teams (id, name, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.Name, nullableString(t.ManagerID), t.CreatedAt, t.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar squad: %w", err)
	}
	return nil
}

// FindByID implementa promoter.TeamRepository.FindByID
func (r *TeamRepository) FindByID(ctx context.Context, id string) (*promoter.SalesTeam, error) {
	var t promoter.SalesTeam
	var managerID *string

	err := r.db.QueryRow(ctx,
		`SELECT id, name, manager_id, created_at, updated_at
		FROM sales_teams WHERE id = $1`,
		id).Scan(&t.ID, &t.Name, &managerID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("erro ao buscar squad: %w", err)
	}
	if managerID != nil {
		t.ManagerID = *managerID
	}
	return &t, nil
}

// List implementa promoter.TeamRepository.List
func (r *TeamRepository) List(ctx context.Context) ([]promoter.SalesTeam, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, manager_id, created_at, updated_at
		FROM sales_teams
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar squads: %w", err)
	}
	defer rows.Close()

	var teams []promoter.SalesTeam
	for rows.Next() {
		var t promoter.SalesTeam
		var managerID *string
		if err := rows.Scan(&t.ID, &t.Name, &managerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler squad: %w", err)
		}
		if managerID != nil {
			t.ManagerID = *managerID
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar squads: %w", err)
	}
	return teams, nil
}

// Update implementa promoter.TeamRepository.Update
func (r *TeamRepository) Update(ctx context.Context, t *promoter.SalesTeam) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE sales_teams SET name = $1, manager_id = $2, updated_at = $3
		WHERE id = $4`,
		t.Name, nullableString(t.ManagerID), t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar squad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}
	return nil
}

// Delete implementa promoter.TeamRepository.Delete. Remover o squad
// desatribui os membros (sales_team_id limpo), nunca remove promoters.
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE promoters SET sales_team_id = NULL, updated_at = NOW()
		WHERE sales_team_id = $1`, id); err != nil {
		return fmt.Errorf("erro ao desatribuir membros do squad: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM sales_teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover squad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar remoção do squad: %w", err)
	}
	return nil
}
