package event

import (
	"context"
)

// Repository define a interface para operações de repositório de eventos
type Repository interface {
	// Create cria um novo evento
	Create(ctx context.Context, e *Event) error

	// FindByID busca um evento pelo ID
	FindByID(ctx context.Context, id string) (*Event, error)

	// List lista os eventos com paginação
	List(ctx context.Context, limit, offset int) ([]*Event, error)

	// ListByStatus lista os eventos com um determinado status
	ListByStatus(ctx context.Context, status Status, limit, offset int) ([]*Event, error)

	// Update atualiza os dados de um evento existente
	Update(ctx context.Context, e *Event) error

	// UpdateStatus atualiza o status de um evento
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Delete remove um evento
	Delete(ctx context.Context, id string) error

	// Count conta quantos eventos existem
	Count(ctx context.Context) (int, error)
}

// TierRepository define a interface para operações de repositório de lotes
type TierRepository interface {
	// Create cria um novo lote de ingressos
	Create(ctx context.Context, t *TicketTier) error

	// FindByID busca um lote pelo ID
	FindByID(ctx context.Context, id string) (*TicketTier, error)

	// ListByEvent lista os lotes de um evento
	ListByEvent(ctx context.Context, eventID string) ([]*TicketTier, error)

	// Update atualiza os dados de um lote existente
	Update(ctx context.Context, t *TicketTier) error

	// IncrementSold incrementa o contador de vendidos de um lote
	IncrementSold(ctx context.Context, id string, quantity int) error

	// Delete remove um lote
	Delete(ctx context.Context, id string) error
}

// CostRepository define a interface para operações de repositório de custos fixos
type CostRepository interface {
	// Create cria um novo custo fixo
	Create(ctx context.Context, c *EventCost) error

	// FindByID busca um custo pelo ID
	FindByID(ctx context.Context, id string) (*EventCost, error)

	// ListByEvent lista os custos de um evento
	ListByEvent(ctx context.Context, eventID string) ([]EventCost, error)

	// Update atualiza os dados de um custo existente
	Update(ctx context.Context, c *EventCost) error

	// UpdateStatus atualiza o status de um custo
	UpdateStatus(ctx context.Context, id string, status CostStatus) error

	// Delete remove um custo
	Delete(ctx context.Context, id string) error
}
