package dto

import (
	"time"

	"github.com/hugohenrick/midnight-tickets/internal/domain/event"
)

// EventRequest representa a requisição de evento
type EventRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Venue       string    `json:"venue" binding:"required"`
	City        string    `json:"city"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
}

// EventResponse representa a resposta de evento
type EventResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Venue       string       `json:"venue"`
	City        string       `json:"city"`
	StartsAt    time.Time    `json:"starts_at"`
	Status      event.Status `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// EventListResponse representa a resposta de lista de eventos
type EventListResponse struct {
	Items      []EventResponse `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalPages int             `json:"total_pages"`
}

// TierRequest representa a requisição de lote de ingressos
type TierRequest struct {
	Name            string      `json:"name" binding:"required"`
	Stage           event.Stage `json:"stage" binding:"required"`
	Price           float64     `json:"price"`
	Quantity        int         `json:"quantity" binding:"required,min=1"`
	CommissionFixed float64     `json:"commission_fixed"`
}

// TierResponse representa a resposta de lote de ingressos
type TierResponse struct {
	ID              string      `json:"id"`
	EventID         string      `json:"event_id"`
	Name            string      `json:"name"`
	Stage           event.Stage `json:"stage"`
	Price           float64     `json:"price"`
	Quantity        int         `json:"quantity"`
	Sold            int         `json:"sold"`
	Available       int         `json:"available"`
	CommissionFixed float64     `json:"commission_fixed"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// CostRequest representa a requisição de custo fixo
type CostRequest struct {
	Concept  string             `json:"concept" binding:"required"`
	Category event.CostCategory `json:"category" binding:"required"`
	Amount   float64            `json:"amount"`
}

// CostStatusRequest representa a requisição de mudança de status de custo
type CostStatusRequest struct {
	Status event.CostStatus `json:"status" binding:"required"`
}

// CostResponse representa a resposta de custo fixo
type CostResponse struct {
	ID        string             `json:"id"`
	EventID   string             `json:"event_id"`
	Concept   string             `json:"concept"`
	Category  event.CostCategory `json:"category"`
	Amount    float64            `json:"amount"`
	Status    event.CostStatus   `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ToEventResponse converte um evento do domínio para DTO
func ToEventResponse(e *event.Event) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Venue:       e.Venue,
		City:        e.City,
		StartsAt:    e.StartsAt,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToEventListResponse converte uma lista de eventos do domínio para DTO
func ToEventListResponse(events []*event.Event, total, page, size int) *EventListResponse {
	items := make([]EventResponse, len(events))
	for i, e := range events {
		items[i] = *ToEventResponse(e)
	}

	return &EventListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}

// ToTierResponse converte um lote do domínio para DTO
func ToTierResponse(t *event.TicketTier) *TierResponse {
	return &TierResponse{
		ID:              t.ID,
		EventID:         t.EventID,
		Name:            t.Name,
		Stage:           t.Stage,
		Price:           t.Price,
		Quantity:        t.Quantity,
		Sold:            t.Sold,
		Available:       t.Available(),
		CommissionFixed: t.CommissionFixed,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToCostResponse converte um custo do domínio para DTO
func ToCostResponse(c *event.EventCost) *CostResponse {
	return &CostResponse{
		ID:        c.ID,
		EventID:   c.EventID,
		Concept:   c.Concept,
		Category:  c.Category,
		Amount:    c.Amount,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
