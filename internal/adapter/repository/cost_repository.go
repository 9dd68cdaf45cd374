package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/midnight-tickets/internal/domain/event"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório de custos
var (
	ErrCostNotFound = errors.New("custo não encontrado")
)

// CostRepository implementa a interface event.CostRepository
type CostRepository struct {
	db *pgxpool.Pool
}

// NewCostRepository cria uma nova instância de CostRepository
func NewCostRepository(db *pgxpool.Pool) event.CostRepository {
	return &CostRepository{
		db: db,
	}
}

// Create implementa event.CostRepository.Create
func (r *CostRepository) Create(ctx context.Context, c *event.EventCost) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO event_costs (
			id, event_id, concept, category, amount, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.EventID, c.Concept, c.Category, c.Amount, c.Status,
		c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar custo: %w", err)
	}
	return nil
}

// FindByID implementa event.CostRepository.FindByID
func (r *CostRepository) FindByID(ctx context.Context, id string) (*event.EventCost, error) {
	var c event.EventCost
	err := r.db.QueryRow(ctx,
		`SELECT id, event_id, concept, category, amount, status,
			created_at, updated_at
		FROM event_costs WHERE id = $1`,
		id).Scan(
		&c.ID, &c.EventID, &c.Concept, &c.Category, &c.Amount, &c.Status,
		&c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCostNotFound
		}
		return nil, fmt.Errorf("erro ao buscar custo: %w", err)
	}
	return &c, nil
}

// ListByEvent implementa event.CostRepository.ListByEvent
func (r *CostRepository) ListByEvent(ctx context.Context, eventID string) ([]event.EventCost, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, event_id, concept, category, amount, status,
			created_at, updated_at
		FROM event_costs
		WHERE event_id = $1
		ORDER BY created_at ASC`,
		eventID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar custos: %w", err)
	}
	defer rows.Close()

	var costs []event.EventCost
	for rows.Next() {
		var c event.EventCost
		if err := rows.Scan(
			&c.ID, &c.EventID, &c.Concept, &c.Category, &c.Amount, &c.Status,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler custo: %w", err)
		}
		costs = append(costs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar custos: %w", err)
	}
	return costs, nil
}

// Update implementa event.CostRepository.Update
func (r *CostRepository) Update(ctx context.Context, c *event.EventCost) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE event_costs SET
			concept = $1, category = $2, amount = $3, status = $4,
			updated_at = $5
		WHERE id = $6`,
		c.Concept, c.Category, c.Amount, c.Status, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar custo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCostNotFound
	}
	return nil
}

// UpdateStatus implementa event.CostRepository.UpdateStatus
func (r *CostRepository) UpdateStatus(ctx context.Context, id string, status event.CostStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE event_costs SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do custo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCostNotFound
	}
	return nil
}

// Delete implementa event.CostRepository.Delete
func (r *CostRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM event_costs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover custo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCostNotFound
	}
	return nil
}
