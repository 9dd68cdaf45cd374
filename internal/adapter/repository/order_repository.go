package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório de pedidos
var (
	ErrOrderNotFound       = errors.New("pedido não encontrado")
	ErrOrderDuplicateKey   = errors.New("pedido com mesmo número já existe")
	ErrOrderNumberExausted = errors.New("não foi possível gerar número de pedido único")
)

// maxOrderNumberRetries limita as tentativas de regeneração do número
// legível quando a constraint UNIQUE detecta colisão
const maxOrderNumberRetries = 3

// OrderRepository implementa a interface order.Repository
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *pgxpool.Pool) order.Repository {
	return &OrderRepository{
		db: db,
	}
}

// Create implementa order.Repository.Create. Em caso de colisão do
// order_number (UNIQUE), regenera o número e tenta de novo, com limite.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	for attempt := 0; attempt <= maxOrderNumberRetries; attempt++ {
		_, err = r.db.Exec(ctx,
			`INSERT INTO orders (
				id, order_number, event_id, customer_email, customer_name,
				total, status, payment_method, staff_id, commission_amount,
				net_amount, items, used, used_at, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
			)`,
			o.ID, o.OrderNumber, o.EventID, o.CustomerEmail, o.CustomerName,
			o.Total, o.Status, o.PaymentMethod, nullableString(o.StaffID),
			o.CommissionAmount, o.NetAmount, items, o.Used, o.UsedAt,
			o.CreatedAt, o.UpdatedAt)

		if err == nil {
			return nil
		}
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "order_number") {
			o.OrderNumber = order.NewOrderNumber()
			continue
		}
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrOrderDuplicateKey
		}
		return fmt.Errorf("erro ao criar pedido: %w", err)
	}

	return ErrOrderNumberExausted
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

// FindByNumber implementa order.Repository.FindByNumber
func (r *OrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	return r.findOne(ctx, `WHERE order_number = $1`, orderNumber)
}

func (r *OrderRepository) findOne(ctx context.Context, where string, arg interface{}) (*order.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, order_number, event_id, customer_email, customer_name,
			total, status, payment_method, staff_id, commission_amount,
			net_amount, items, used, used_at, created_at, updated_at
		FROM orders `+where,
		arg)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}
	return o, nil
}

// List implementa order.Repository.List. Limite não positivo desativa a
// paginação e retorna todos os pedidos que satisfazem os filtros.
func (r *OrderRepository) List(ctx context.Context, filters order.Filters, limit, offset int) ([]order.Order, error) {
	where, args := buildOrderFilters(filters)

	pagination := ""
	if limit > 0 {
		args = append(args, limit, offset)
		pagination = fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	query := fmt.Sprintf(
		`SELECT id, order_number, event_id, customer_email, customer_name,
			total, status, payment_method, staff_id, commission_amount,
			net_amount, items, used, used_at, created_at, updated_at
		FROM orders %s
		ORDER BY created_at DESC
		%s`,
		where, pagination)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// ListCompletedByEvent implementa order.Repository.ListCompletedByEvent
func (r *OrderRepository) ListCompletedByEvent(ctx context.Context, eventID string) ([]order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_number, event_id, customer_email, customer_name,
			total, status, payment_method, staff_id, commission_amount,
			net_amount, items, used, used_at, created_at, updated_at
		FROM orders
		WHERE event_id = $1 AND status = $2
		ORDER BY created_at ASC`,
		eventID, order.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos do evento: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// ListByCustomerEmail implementa order.Repository.ListByCustomerEmail
func (r *OrderRepository) ListByCustomerEmail(ctx context.Context, email string) ([]order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_number, event_id, customer_email, customer_name,
			total, status, payment_method, staff_id, commission_amount,
			net_amount, items, used, used_at, created_at, updated_at
		FROM orders
		WHERE customer_email = $1 AND status = $2
		ORDER BY created_at DESC`,
		email, order.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos do cliente: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// UpdateStatus implementa order.Repository.UpdateStatus
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// MarkUsed implementa order.Repository.MarkUsed
func (r *OrderRepository) MarkUsed(ctx context.Context, id string, usedAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET used = TRUE, used_at = $1, updated_at = $1
		WHERE id = $2 AND used = FALSE`,
		usedAt, id)
	if err != nil {
		return fmt.Errorf("erro ao marcar ingresso como usado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// Count implementa order.Repository.Count
func (r *OrderRepository) Count(ctx context.Context, filters order.Filters) (int, error) {
	where, args := buildOrderFilters(filters)

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders `+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}
	return count, nil
}

// buildOrderFilters monta a cláusula WHERE dinâmica da listagem
func buildOrderFilters(filters order.Filters) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	add := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filters.EventID != "" {
		add("event_id = $%d", filters.EventID)
	}
	if filters.StaffID != "" {
		add("staff_id = $%d", filters.StaffID)
	}
	if filters.Status != "" {
		add("status = $%d", filters.Status)
	}
	if filters.PaymentMethod != "" {
		add("payment_method = $%d", filters.PaymentMethod)
	}
	if filters.DateStart != nil {
		add("created_at >= $%d", *filters.DateStart)
	}
	if filters.DateEnd != nil {
		add("created_at <= $%d", *filters.DateEnd)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*order.Order, error) {
	var o order.Order
	var staffID *string
	var itemsJSON []byte

	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.EventID, &o.CustomerEmail, &o.CustomerName,
		&o.Total, &o.Status, &o.PaymentMethod, &staffID, &o.CommissionAmount,
		&o.NetAmount, &itemsJSON, &o.Used, &o.UsedAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if staffID != nil {
		o.StaffID = *staffID
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("erro ao converter itens do pedido: %w", err)
	}
	return &o, nil
}

func scanOrders(rows pgx.Rows) ([]order.Order, error) {
	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler pedido: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar pedidos: %w", err)
	}
	return orders, nil
}

// nullableString converte string vazia em NULL
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
