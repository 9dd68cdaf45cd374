package event

import (
	"errors"
	"testing"
	"time"
)

func TestSumFixedCostsExcludesCancelled(t *testing.T) {
	costs := []EventCost{
		{Concept: "Local", Amount: 3000000, Status: CostStatusPaid},
		{Concept: "Sonido", Amount: 1500000, Status: CostStatusPending},
		{Concept: "DJ cancelado", Amount: 800000, Status: CostStatusCancelled},
	}

	// Pendente conta (custo assumido ainda é custo); cancelado não
	if got := SumFixedCosts(costs); got != 4500000 {
		t.Errorf("SumFixedCosts = %v, esperado 4500000", got)
	}
}

func TestSumFixedCostsEmpty(t *testing.T) {
	if got := SumFixedCosts(nil); got != 0 {
		t.Errorf("SumFixedCosts(nil) = %v, esperado 0", got)
	}
}

func TestTicketTierAvailable(t *testing.T) {
	tier := TicketTier{Quantity: 100, Sold: 97}
	if got := tier.Available(); got != 3 {
		t.Errorf("Available = %d, esperado 3", got)
	}

	// sold > quantity é invariante fraca; Available nunca fica negativo
	tier.Sold = 105
	if got := tier.Available(); got != 0 {
		t.Errorf("Available com oversell = %d, esperado 0", got)
	}
}

func TestNewTicketTierValidation(t *testing.T) {
	if _, err := NewTicketTier("evt-1", "General", "vip_lounge", 100, 10, 5); !errors.Is(err, ErrInvalidStage) {
		t.Errorf("etapa desconhecida: err = %v, esperado ErrInvalidStage", err)
	}
	if _, err := NewTicketTier("evt-1", "General", StageGeneral, -1, 10, 5); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("preço negativo: err = %v, esperado ErrInvalidPrice", err)
	}
	if _, err := NewTicketTier("evt-1", "General", StageGeneral, 100, 0, 5); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("quantidade zero: err = %v, esperado ErrInvalidQuantity", err)
	}

	tier, err := NewTicketTier("evt-1", "General", StageGeneral, 100, 10, 5)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if tier.NetPerTicket() != 95 {
		t.Errorf("NetPerTicket = %v, esperado 95", tier.NetPerTicket())
	}
}

func TestNewEventStartsAsDraft(t *testing.T) {
	e, err := NewEvent("Midnight Vol. 9", "", "Teatro Metropol", "Bogotá", time.Now().Add(30*24*time.Hour))
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if e.Status != StatusDraft || e.IsOnSale() {
		t.Errorf("evento novo deve nascer em rascunho, veio %s", e.Status)
	}

	e.Publish()
	if !e.IsOnSale() {
		t.Error("evento publicado deve aceitar vendas")
	}
}
