package liquidation

import (
	"testing"

	"github.com/hugohenrick/midnight-tickets/internal/domain/event"
)

func makeTier(id, name string, price, commission float64, quantity int) event.TicketTier {
	return event.TicketTier{
		ID:              id,
		EventID:         testEventID,
		Name:            name,
		Stage:           event.StageGeneral,
		Price:           price,
		Quantity:        quantity,
		CommissionFixed: commission,
	}
}

func TestBreakEvenSingleTier(t *testing.T) {
	// Um lote {preço 100, comissão 10, capacidade 100} com custos fixos
	// 4500: líquido por ingresso 90, 4500/90 = 50 ingressos exatos.
	tiers := []event.TicketTier{makeTier("t1", "General", 100, 10, 100)}

	be := BreakEven(tiers, 4500)

	if !be.Achievable {
		t.Fatal("ponto de equilíbrio deveria ser alcançável")
	}
	if be.Tickets != 50 {
		t.Errorf("Tickets = %d, esperado 50", be.Tickets)
	}
	if be.Percent != 50 {
		t.Errorf("Percent = %v, esperado 50", be.Percent)
	}
}

func TestBreakEvenCheapestFirst(t *testing.T) {
	// Preenchimento pessimista: os baratos vendem primeiro, então o ponto
	// de equilíbrio usa o líquido do lote barato antes do premium.
	tiers := []event.TicketTier{
		makeTier("vip", "VIP", 200, 20, 50),
		makeTier("early", "Early Bird", 50, 5, 40),
	}
	// 40 early a 45 líquido = 1800; faltam 450, cobertos por 3 VIP a 180.
	be := BreakEven(tiers, 2250)

	if !be.Achievable || be.Tickets != 43 {
		t.Errorf("Tickets = %d (achievable=%v), esperado 43", be.Tickets, be.Achievable)
	}
}

func TestBreakEvenNotAchievable(t *testing.T) {
	tiers := []event.TicketTier{makeTier("t1", "General", 100, 10, 10)}

	be := BreakEven(tiers, 5000)

	if be.Achievable {
		t.Error("capacidade de 10 ingressos não cobre custos de 5000")
	}
	if be.Tickets != 10 || be.Percent != 100 {
		t.Errorf("ponto = %d/%v%%, esperado 10/100%%", be.Tickets, be.Percent)
	}
}

func TestBreakEvenZeroCostsAndZeroTiers(t *testing.T) {
	be := BreakEven([]event.TicketTier{makeTier("t1", "General", 100, 10, 10)}, 0)
	if !be.Achievable || be.Tickets != 0 || be.Percent != 0 {
		t.Errorf("custos zero: ponto = %+v, esperado 0 ingressos alcançável", be)
	}

	be = BreakEven(nil, 1000)
	if be.Achievable {
		t.Error("sem lotes não há como cobrir custos")
	}
}

func TestProjectScenariosBreakEvenUtilityZero(t *testing.T) {
	tiers := []event.TicketTier{makeTier("t1", "General", 100, 10, 100)}

	scenarios := ProjectScenarios(tiers, 4500)

	var breakEven *Scenario
	for i := range scenarios {
		if scenarios[i].IsBreakEven {
			breakEven = &scenarios[i]
		}
	}
	if breakEven == nil {
		t.Fatal("nenhum cenário marcado como ponto de equilíbrio")
	}
	// 50% cai exatamente na marca de dezena: nada é injetado, a dezena é marcada
	if breakEven.Percent != 50 {
		t.Errorf("percentual de equilíbrio = %v, esperado 50", breakEven.Percent)
	}
	if breakEven.Utility != 0 {
		t.Errorf("utilidade no equilíbrio = %v, esperado 0", breakEven.Utility)
	}
	if len(scenarios) != 10 {
		t.Errorf("cenários = %d, esperado 10 (sem injeção)", len(scenarios))
	}
}

func TestProjectScenariosInjectsBreakEvenBetweenDecades(t *testing.T) {
	// 4000/90 = 44.4 → 45 ingressos → 45%, estritamente entre 40 e 50
	tiers := []event.TicketTier{makeTier("t1", "General", 100, 10, 100)}

	scenarios := ProjectScenarios(tiers, 4000)

	if len(scenarios) != 11 {
		t.Fatalf("cenários = %d, esperado 11 (dezenas + equilíbrio injetado)", len(scenarios))
	}
	for i, s := range scenarios {
		if !s.IsBreakEven {
			continue
		}
		if s.Percent != 45 {
			t.Errorf("percentual injetado = %v, esperado 45", s.Percent)
		}
		// Posição ordenada: entre 40% e 50%
		if i == 0 || scenarios[i-1].Percent >= s.Percent || scenarios[i+1].Percent <= s.Percent {
			t.Errorf("equilíbrio injetado fora de ordem na posição %d", i)
		}
		if s.Utility < 0 {
			t.Errorf("utilidade no equilíbrio = %v, não pode ser negativa", s.Utility)
		}
	}
}

func TestProjectScenariosMonotonicUtility(t *testing.T) {
	tiers := []event.TicketTier{
		makeTier("early", "Early Bird", 60, 5, 80),
		makeTier("gen", "General", 100, 10, 150),
		makeTier("vip", "VIP", 250, 25, 40),
	}

	scenarios := ProjectScenarios(tiers, 8000)

	for i := 1; i < len(scenarios); i++ {
		if scenarios[i].Utility < scenarios[i-1].Utility {
			t.Errorf("utilidade caiu de %v (%v%%) para %v (%v%%)",
				scenarios[i-1].Utility, scenarios[i-1].Percent,
				scenarios[i].Utility, scenarios[i].Percent)
		}
	}
}

func TestProjectScenariosCapacityBounds(t *testing.T) {
	tiers := []event.TicketTier{
		makeTier("early", "Early Bird", 60, 5, 30),
		makeTier("gen", "General", 100, 10, 70),
	}
	capacity := 100

	for _, s := range ProjectScenarios(tiers, 3000) {
		if s.TotalTickets > capacity {
			t.Errorf("cenário %v%% vendeu %d acima da capacidade %d", s.Percent, s.TotalTickets, capacity)
		}
		if s.TotalTickets > s.TargetTickets {
			t.Errorf("cenário %v%% vendeu %d acima do alvo %d", s.Percent, s.TotalTickets, s.TargetTickets)
		}
		byTier := map[string]int{"early": 30, "gen": 70}
		for _, row := range s.Tiers {
			if row.Units > byTier[row.TierID] {
				t.Errorf("cenário %v%%: lote %s com %d unidades acima da capacidade", s.Percent, row.TierID, row.Units)
			}
		}
	}
}

func TestProjectScenariosFillsCheapestFirst(t *testing.T) {
	tiers := []event.TicketTier{
		makeTier("vip", "VIP", 250, 25, 50),
		makeTier("early", "Early Bird", 60, 5, 50),
	}

	scenarios := ProjectScenarios(tiers, 0)

	// 30% de 100 = 30 ingressos, todos do lote barato
	for _, s := range scenarios {
		if s.Percent != 30 {
			continue
		}
		if len(s.Tiers) != 1 || s.Tiers[0].TierID != "early" || s.Tiers[0].Units != 30 {
			t.Errorf("cenário 30%% = %+v, esperado 30 unidades do lote barato", s.Tiers)
		}
	}
}

func TestProjectScenariosDegenerateInputs(t *testing.T) {
	scenarios := ProjectScenarios(nil, 1000)

	if len(scenarios) != 10 {
		t.Fatalf("cenários = %d, esperado 10 dezenas mesmo sem lotes", len(scenarios))
	}
	for _, s := range scenarios {
		if s.TotalTickets != 0 || s.TotalRevenue != 0 {
			t.Errorf("cenário %v%% sem lotes deveria zerar, veio %+v", s.Percent, s)
		}
		if s.AvgTicket != 0 {
			t.Errorf("AvgTicket sem ingressos = %v, esperado 0 (nunca NaN)", s.AvgTicket)
		}
		if s.Utility != -1000 {
			t.Errorf("utilidade sem vendas = %v, esperado -custos fixos", s.Utility)
		}
	}
}
