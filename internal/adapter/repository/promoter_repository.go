package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório de promoters
var (
	ErrPromoterNotFound     = errors.New("promoter não encontrado")
	ErrPromoterDuplicateKey = errors.New("promoter com mesmo código já existe")
)

// PromoterRepository implementa a interface promoter.Repository
type PromoterRepository struct {
	db *pgxpool.Pool
}

// NewPromoterRepository cria uma nova instância de PromoterRepository
func NewPromoterRepository(db *pgxpool.Pool) promoter.Repository {
	return &PromoterRepository{
		db: db,
	}
}

// Create implementa promoter.Repository.Create
func (r *PromoterRepository) Create(ctx context.Context, p *promoter.Promoter) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO promoters (
			user_id, name, email, code, role, sales_team_id, manager_id,
			password, total_sales, total_commission_earned, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.UserID, p.Name, p.Email, p.Code, p.Role,
		nullableString(p.SalesTeamID), nullableString(p.ManagerID),
		p.Password, p.TotalSales, p.TotalCommissionEarned,
		p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrPromoterDuplicateKey
		}
		return fmt.Errorf("erro ao criar promoter: %w", err)
	}
	return nil
}

// FindByID implementa promoter.Repository.FindByID
func (r *PromoterRepository) FindByID(ctx context.Context, userID string) (*promoter.Promoter, error) {
	return r.findOne(ctx, `WHERE user_id = $1`, userID)
}

// FindByCode implementa promoter.Repository.FindByCode
func (r *PromoterRepository) FindByCode(ctx context.Context, code string) (*promoter.Promoter, error) {
	return r.findOne(ctx, `WHERE code = $1`, strings.ToUpper(strings.TrimSpace(code)))
}

func (r *PromoterRepository) findOne(ctx context.Context, where string, arg interface{}) (*promoter.Promoter, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, name, email, code, role, sales_team_id, manager_id,
			password, total_sales, total_commission_earned, created_at, updated_at
		FROM promoters `+where,
		arg)

	p, err := scanPromoter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPromoterNotFound
		}
		return nil, fmt.Errorf("erro ao buscar promoter: %w", err)
	}
	return p, nil
}

// List implementa promoter.Repository.List
func (r *PromoterRepository) List(ctx context.Context, limit, offset int) ([]promoter.Promoter, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, name, email, code, role, sales_team_id, manager_id,
			password, total_sales, total_commission_earned, created_at, updated_at
		FROM promoters
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar promoters: %w", err)
	}
	defer rows.Close()

	return scanPromoters(rows)
}

// ListAll implementa promoter.Repository.ListAll
func (r *PromoterRepository) ListAll(ctx context.Context) ([]promoter.Promoter, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, name, email, code, role, sales_team_id, manager_id,
			password, total_sales, total_commission_earned, created_at, updated_at
		FROM promoters
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar promoters: %w", err)
	}
	defer rows.Close()

	return scanPromoters(rows)
}

// ListByTeam implementa promoter.Repository.ListByTeam
func (r *PromoterRepository) ListByTeam(ctx context.Context, teamID string) ([]promoter.Promoter, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, name, email, code, role, sales_team_id, manager_id,
			password, total_sales, total_commission_earned, created_at, updated_at
		FROM promoters
		WHERE sales_team_id = $1
		ORDER BY name ASC`,
		teamID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar promoters do squad: %w", err)
	}
	defer rows.Close()

	return scanPromoters(rows)
}

// Update implementa promoter.Repository.Update
func (r *PromoterRepository) Update(ctx context.Context, p *promoter.Promoter) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE promoters SET
			name = $1, email = $2, code = $3, role = $4,
			sales_team_id = $5, manager_id = $6, password = $7, updated_at = $8
		WHERE user_id = $9`,
		p.Name, p.Email, p.Code, p.Role,
		nullableString(p.SalesTeamID), nullableString(p.ManagerID),
		p.Password, p.UpdatedAt, p.UserID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrPromoterDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar promoter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPromoterNotFound
	}
	return nil
}

// AssignTeam implementa promoter.Repository.AssignTeam
func (r *PromoterRepository) AssignTeam(ctx context.Context, userID, teamID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE promoters SET sales_team_id = $1, updated_at = NOW() WHERE user_id = $2`,
		nullableString(teamID), userID)
	if err != nil {
		return fmt.Errorf("erro ao atribuir squad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPromoterNotFound
	}
	return nil
}

// RefreshTotals implementa promoter.Repository.RefreshTotals.
// Os totais denormalizados são sempre recalculados inteiros a partir
// dos pedidos concluídos, nunca incrementados.
func (r *PromoterRepository) RefreshTotals(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE promoters SET
			total_sales = COALESCE((
				SELECT SUM(total) FROM orders
				WHERE staff_id = $1 AND status = $2
			), 0),
			total_commission_earned = COALESCE((
				SELECT SUM(commission_amount) FROM orders
				WHERE staff_id = $1 AND status = $2
			), 0),
			updated_at = NOW()
		WHERE user_id = $1`,
		userID, order.StatusCompleted)
	if err != nil {
		return fmt.Errorf("erro ao recalcular totais do promoter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPromoterNotFound
	}
	return nil
}

// Delete implementa promoter.Repository.Delete
func (r *PromoterRepository) Delete(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM promoters WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("erro ao remover promoter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPromoterNotFound
	}
	return nil
}

// Count implementa promoter.Repository.Count
func (r *PromoterRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM promoters`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar promoters: %w", err)
	}
	return count, nil
}

func scanPromoter(row rowScanner) (*promoter.Promoter, error) {
	var p promoter.Promoter
	var teamID, managerID *string

	err := row.Scan(
		&p.UserID, &p.Name, &p.Email, &p.Code, &p.Role, &teamID, &managerID,
		&p.Password, &p.TotalSales, &p.TotalCommissionEarned,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if teamID != nil {
		p.SalesTeamID = *teamID
	}
	if managerID != nil {
		p.ManagerID = *managerID
	}
	return &p, nil
}

func scanPromoters(rows pgx.Rows) ([]promoter.Promoter, error) {
	var promoters []promoter.Promoter
	for rows.Next() {
		p, err := scanPromoter(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler promoter: %w", err)
		}
		promoters = append(promoters, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar promoters: %w", err)
	}
	return promoters, nil
}
