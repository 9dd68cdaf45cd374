package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("nome do evento não pode ser vazio")
	ErrEmptyVenue       = errors.New("local do evento não pode ser vazio")
	ErrInvalidStage     = errors.New("etapa de venda inválida")
	ErrInvalidPrice     = errors.New("preço não pode ser negativo")
	ErrInvalidQuantity  = errors.New("quantidade deve ser maior que zero")
	ErrInvalidStatus    = errors.New("status inválido")
	ErrEmptyCostConcept = errors.New("conceito do custo não pode ser vazio")
	ErrInvalidAmount    = errors.New("valor do custo não pode ser negativo")
)

// Status representa o estado do evento
type Status string

const (
	StatusDraft     Status = "draft"     // Evento em rascunho, não visível na vitrine
	StatusPublished Status = "published" // Evento publicado, vendas abertas
	StatusFinished  Status = "finished"  // Evento encerrado
	StatusCancelled Status = "cancelled" // Evento cancelado
)

// Stage representa a etapa de preço de um lote de ingressos
type Stage string

const (
	StageEarlyBird Stage = "early_bird"
	StagePresale   Stage = "presale"
	StageGeneral   Stage = "general"
	StageDoor      Stage = "door"
)

// IsValid verifica se a etapa é uma das etapas conhecidas
func (s Stage) IsValid() bool {
	switch s {
	case StageEarlyBird, StagePresale, StageGeneral, StageDoor:
		return true
	}
	return false
}

// CostStatus representa o estado de um custo fixo do evento
type CostStatus string

const (
	CostStatusPending   CostStatus = "pending"
	CostStatusPaid      CostStatus = "paid"
	CostStatusCancelled CostStatus = "cancelled"
)

// CostCategory representa a categoria de um custo fixo
type CostCategory string

const (
	CostCategoryVenue      CostCategory = "venue"
	CostCategoryArtist     CostCategory = "artist"
	CostCategoryMarketing  CostCategory = "marketing"
	CostCategoryProduction CostCategory = "production"
	CostCategoryStaff      CostCategory = "staff"
	CostCategoryOther      CostCategory = "other"
)

// Event representa um evento ao vivo com venda de ingressos
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	City        string    `json:"city"`
	StartsAt    time.Time `json:"starts_at"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TicketTier representa um lote de ingressos com preço e comissão fixa
type TicketTier struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Stage   Stage  `json:"stage"`
	Price   float64 `json:"price"`
	// Quantity é a capacidade do lote; Sold é o contador corrente.
	// sold <= quantity não é garantido pelo motor, apenas pela UI.
	Quantity int `json:"quantity"`
	Sold     int `json:"sold"`
	// CommissionFixed é o valor fixo em moeda pago ao promoter por unidade.
	// CommissionPercent existe no modelo legado e não é usado pelo motor.
	CommissionFixed   float64   `json:"commission_fixed"`
	CommissionPercent float64   `json:"commission_percent"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// EventCost representa um custo fixo associado a um evento
type EventCost struct {
	ID        string       `json:"id"`
	EventID   string       `json:"event_id"`
	Concept   string       `json:"concept"`
	Category  CostCategory `json:"category"`
	Amount    float64      `json:"amount"`
	Status    CostStatus   `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewEvent cria um novo evento em rascunho
func NewEvent(name, description, venue, city string, startsAt time.Time) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(venue) == "" {
		return nil, ErrEmptyVenue
	}

	now := time.Now()
	return &Event{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Venue:       venue,
		City:        city,
		StartsAt:    startsAt,
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NewTicketTier cria um novo lote de ingressos para um evento
func NewTicketTier(eventID, name string, stage Stage, price float64, quantity int, commissionFixed float64) (*TicketTier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !stage.IsValid() {
		return nil, ErrInvalidStage
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if commissionFixed < 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &TicketTier{
		ID:              uuid.New().String(),
		EventID:         eventID,
		Name:            name,
		Stage:           stage,
		Price:           price,
		Quantity:        quantity,
		Sold:            0,
		CommissionFixed: commissionFixed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// NewEventCost cria um novo custo fixo para um evento
func NewEventCost(eventID, concept string, category CostCategory, amount float64) (*EventCost, error) {
	if strings.TrimSpace(concept) == "" {
		return nil, ErrEmptyCostConcept
	}
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	now := time.Now()
	return &EventCost{
		ID:        uuid.New().String(),
		EventID:   eventID,
		Concept:   concept,
		Category:  category,
		Amount:    amount,
		Status:    CostStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Available retorna quantos ingressos ainda podem ser vendidos no lote
func (t *TicketTier) Available() int {
	available := t.Quantity - t.Sold
	if available < 0 {
		return 0
	}
	return available
}

// NetPerTicket retorna a receita líquida por ingresso (preço menos comissão fixa)
func (t *TicketTier) NetPerTicket() float64 {
	return t.Price - t.CommissionFixed
}

// Publish publica o evento
func (e *Event) Publish() {
	e.Status = StatusPublished
	e.UpdatedAt = time.Now()
}

// IsOnSale verifica se o evento aceita vendas
func (e *Event) IsOnSale() bool {
	return e.Status == StatusPublished
}

// SumFixedCosts soma os custos fixos de um evento para a análise de ponto
// de equilíbrio. Custos cancelados são excluídos; custos pendentes contam
// normalmente, pois um custo assumido ainda não pago continua sendo custo.
func SumFixedCosts(costs []EventCost) float64 {
	var total float64
	for _, c := range costs {
		if c.Status == CostStatusCancelled {
			continue
		}
		total += c.Amount
	}
	return total
}
