package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/midnight-tickets/internal/domain/event"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório de eventos
var (
	ErrEventNotFound = errors.New("evento não encontrado")
)

// EventRepository implementa a interface event.Repository
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository cria uma nova instância de EventRepository
func NewEventRepository(db *pgxpool.Pool) event.Repository {
	return &EventRepository{
		db: db,
	}
}

// Create implementa event.Repository.Create
func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO events (
			id, name, description, venue, city, starts_at, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Name, e.Description, e.Venue, e.City, e.StartsAt,
		e.Status, e.CreatedAt, e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar evento: %w", err)
	}
	return nil
}

// FindByID implementa event.Repository.FindByID
func (r *EventRepository) FindByID(ctx context.Context, id string) (*event.Event, error) {
	var e event.Event
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, venue, city, starts_at, status,
			created_at, updated_at
		FROM events WHERE id = $1`,
		id).Scan(
		&e.ID, &e.Name, &e.Description, &e.Venue, &e.City, &e.StartsAt,
		&e.Status, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("erro ao buscar evento: %w", err)
	}
	return &e, nil
}

// List implementa event.Repository.List
func (r *EventRepository) List(ctx context.Context, limit, offset int) ([]*event.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, venue, city, starts_at, status,
			created_at, updated_at
		FROM events
		ORDER BY starts_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar eventos: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByStatus implementa event.Repository.ListByStatus
func (r *EventRepository) ListByStatus(ctx context.Context, status event.Status, limit, offset int) ([]*event.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, venue, city, starts_at, status,
			created_at, updated_at
		FROM events
		WHERE status = $1
		ORDER BY starts_at DESC
		LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar eventos por status: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// Update implementa event.Repository.Update
func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events SET
			name = $1, description = $2, venue = $3, city = $4,
			starts_at = $5, status = $6, updated_at = $7
		WHERE id = $8`,
		e.Name, e.Description, e.Venue, e.City, e.StartsAt, e.Status,
		e.UpdatedAt, e.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar evento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

// UpdateStatus implementa event.Repository.UpdateStatus
func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status event.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do evento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Delete implementa event.Repository.Delete
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover evento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Count implementa event.Repository.Count
func (r *EventRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar eventos: %w", err)
	}
	return count, nil
}

func scanEvents(rows pgx.Rows) ([]*event.Event, error) {
	var events []*event.Event
	for rows.Next() {
		var e event.Event
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.Venue, &e.City, &e.StartsAt,
			&e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler evento: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar eventos: %w", err)
	}
	return events, nil
}
