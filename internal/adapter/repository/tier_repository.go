package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/midnight-tickets/internal/domain/event"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório de lotes
var (
	ErrTierNotFound = errors.New("lote de ingressos não encontrado")
)

// TierRepository implementa a interface event.TierRepository
type TierRepository struct {
	db *pgxpool.Pool
}

// NewTierRepository cria uma nova instância de TierRepository
func NewTierRepository(db *pgxpool.Pool) event.TierRepository {
	return &TierRepository{
		db: db,
	}
}

// Create implementa event.TierRepository.Create
func (r *TierRepository) Create(ctx context.Context, t *event.TicketTier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ticket_tiers (
			id, event_id, name, stage, price, quantity, sold,
			commission_fixed, commission_percent, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		t.ID, t.EventID, t.Name, t.Stage, t.Price, t.Quantity, t.Sold,
		t.CommissionFixed, t.CommissionPercent, t.CreatedAt, t.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar lote: %w", err)
	}
	return nil
}

// FindByID implementa event.TierRepository.FindByID
func (r *TierRepository) FindByID(ctx context.Context, id string) (*event.TicketTier, error) {
	var t event.TicketTier
	err := r.db.QueryRow(ctx,
		`SELECT id, event_id, name, stage, price, quantity, sold,
			commission_fixed, commission_percent, created_at, updated_at
		FROM ticket_tiers WHERE id = $1`,
		id).Scan(
		&t.ID, &t.EventID, &t.Name, &t.Stage, &t.Price, &t.Quantity,
		&t.Sold, &t.CommissionFixed, &t.CommissionPercent, &t.CreatedAt,
		&t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTierNotFound
		}
		return nil, fmt.Errorf("erro ao buscar lote: %w", err)
	}
	return &t, nil
}

// ListByEvent implementa event.TierRepository.ListByEvent
func (r *TierRepository) ListByEvent(ctx context.Context, eventID string) ([]*event.TicketTier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, event_id, name, stage, price, quantity, sold,
			commission_fixed, commission_percent, created_at, updated_at
		FROM ticket_tiers
		WHERE event_id = $1
		ORDER BY price ASC`,
		eventID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lotes: %w", err)
	}
	defer rows.Close()

	var tiers []*event.TicketTier
	for rows.Next() {
		var t event.TicketTier
		if err := rows.Scan(
			&t.ID, &t.EventID, &t.Name, &t.Stage, &t.Price, &t.Quantity,
			&t.Sold, &t.CommissionFixed, &t.CommissionPercent, &t.CreatedAt,
			&t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler lote: %w", err)
		}
		tiers = append(tiers, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar lotes: %w", err)
	}
	return tiers, nil
}

// Update implementa event.TierRepository.Update
func (r *TierRepository) Update(ctx context.Context, t *event.TicketTier) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE ticket_tiers SET
			name = $1, stage = $2, price = $3, quantity = $4,
			commission_fixed = $5, commission_percent = $6, updated_at = $7
		WHERE id = $8`,
		t.Name, t.Stage, t.Price, t.Quantity, t.CommissionFixed,
		t.CommissionPercent, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar lote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTierNotFound
	}
	return nil
}

// IncrementSold implementa event.TierRepository.IncrementSold
func (r *TierRepository) IncrementSold(ctx context.Context, id string, quantity int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE ticket_tiers SET sold = sold + $1, updated_at = NOW() WHERE id = $2`,
		quantity, id)
	if err != nil {
		return fmt.Errorf("erro ao incrementar vendidos do lote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTierNotFound
	}
	return nil
}

// Delete implementa event.TierRepository.Delete
func (r *TierRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ticket_tiers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover lote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTierNotFound
	}
	return nil
}
