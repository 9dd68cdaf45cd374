package dto

import (
	"time"

	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
)

// PromoterRequest representa a requisição de criação de promoter
type PromoterRequest struct {
	Name      string        `json:"name" binding:"required"`
	Email     string        `json:"email" binding:"required,email"`
	Code      string        `json:"code" binding:"required"`
	Role      promoter.Role `json:"role" binding:"required"`
	Password  string        `json:"password" binding:"required,min=6"`
	ManagerID string        `json:"manager_id"`
}

// PromoterUpdateRequest representa a requisição de atualização de promoter
type PromoterUpdateRequest struct {
	Name      string        `json:"name" binding:"required"`
	Email     string        `json:"email" binding:"required,email"`
	Role      promoter.Role `json:"role" binding:"required"`
	ManagerID string        `json:"manager_id"`
}

// AssignTeamRequest representa a requisição de atribuição de squad.
// TeamID vazio desatribui o promoter do squad atual.
type AssignTeamRequest struct {
	TeamID string `json:"team_id"`
}

// PromoterResponse representa a resposta de promoter
type PromoterResponse struct {
	UserID                string        `json:"user_id"`
	Name                  string        `json:"name"`
	Email                 string        `json:"email"`
	Code                  string        `json:"code"`
	Role                  promoter.Role `json:"role"`
	SalesTeamID           string        `json:"sales_team_id,omitempty"`
	ManagerID             string        `json:"manager_id,omitempty"`
	TotalSales            float64       `json:"total_sales"`
	TotalCommissionEarned float64       `json:"total_commission_earned"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

// PromoterListResponse representa a resposta de lista de promoters
type PromoterListResponse struct {
	Items      []PromoterResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// TeamRequest representa a requisição de squad de vendas
type TeamRequest struct {
	Name      string `json:"name" binding:"required"`
	ManagerID string `json:"manager_id"`
}

// TeamResponse representa a resposta de squad de vendas
type TeamResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	ManagerID string             `json:"manager_id,omitempty"`
	Members   []PromoterResponse `json:"members,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// TeamListResponse representa a resposta de lista de squads
type TeamListResponse struct {
	Items []TeamResponse `json:"items"`
	Total int            `json:"total"`
}

// ToPromoterResponse converte um promoter do domínio para DTO
func ToPromoterResponse(p *promoter.Promoter) *PromoterResponse {
	return &PromoterResponse{
		UserID:                p.UserID,
		Name:                  p.Name,
		Email:                 p.Email,
		Code:                  p.Code,
		Role:                  p.Role,
		SalesTeamID:           p.SalesTeamID,
		ManagerID:             p.ManagerID,
		TotalSales:            p.TotalSales,
		TotalCommissionEarned: p.TotalCommissionEarned,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// ToPromoterListResponse converte uma lista de promoters do domínio para DTO
func ToPromoterListResponse(promoters []promoter.Promoter, total, page, size int) *PromoterListResponse {
	items := make([]PromoterResponse, len(promoters))
	for i := range promoters {
		items[i] = *ToPromoterResponse(&promoters[i])
	}

	return &PromoterListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}

// ToTeamResponse converte um squad do domínio para DTO
func ToTeamResponse(t *promoter.SalesTeam, members []promoter.Promoter) *TeamResponse {
	resp := &TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		ManagerID: t.ManagerID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	for i := range members {
		resp.Members = append(resp.Members, *ToPromoterResponse(&members[i]))
	}
	return resp
}
