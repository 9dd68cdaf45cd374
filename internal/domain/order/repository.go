package order

import (
	"context"
	"time"
)

// Filters define os filtros disponíveis para listagem de pedidos
type Filters struct {
	EventID       string
	StaffID       string
	Status        Status
	PaymentMethod string
	DateStart     *time.Time
	DateEnd       *time.Time
}

// Repository define a interface para operações de repositório de pedidos
type Repository interface {
	// Create cria um novo pedido
	Create(ctx context.Context, o *Order) error

	// FindByID busca um pedido pelo ID
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindByNumber busca um pedido pelo número legível (MID-xxxxxx)
	FindByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// List lista os pedidos com filtros e paginação
	List(ctx context.Context, filters Filters, limit, offset int) ([]Order, error)

	// ListCompletedByEvent lista os pedidos concluídos de um evento.
	// É o snapshot consumido pelo motor de liquidação.
	ListCompletedByEvent(ctx context.Context, eventID string) ([]Order, error)

	// ListByCustomerEmail lista os pedidos concluídos de um cliente
	// (email já normalizado pelo chamador)
	ListByCustomerEmail(ctx context.Context, email string) ([]Order, error)

	// UpdateStatus atualiza o status de um pedido
	UpdateStatus(ctx context.Context, id string, status Status) error

	// MarkUsed grava o uso do ingresso (used, used_at)
	MarkUsed(ctx context.Context, id string, usedAt time.Time) error

	// Count conta os pedidos que satisfazem os filtros
	Count(ctx context.Context, filters Filters) (int, error)
}
