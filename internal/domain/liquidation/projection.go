package liquidation

import (
	"math"
	"sort"

	"github.com/hugohenrick/midnight-tickets/internal/domain/event"
)

// ScenarioTierRow é a abertura por lote dentro de um cenário de venda
type ScenarioTierRow struct {
	TierID          string  `json:"tier_id"`
	TierName        string  `json:"tier_name"`
	Units           int     `json:"units"`
	NetTicket       float64 `json:"net_ticket"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalNetRevenue float64 `json:"total_net_revenue"`
}

// Scenario é a simulação de um percentual de ocupação do evento
type Scenario struct {
	Percent       float64 `json:"percent"`
	IsBreakEven   bool    `json:"is_break_even"`
	TargetTickets int     `json:"target_tickets"`
	TotalTickets  int     `json:"total_tickets"`
	TotalRevenue  float64 `json:"total_revenue"`
	// TotalNetRevenue é a receita descontadas as comissões fixas por
	// ingresso; Utility desconta adicionalmente os custos fixos.
	TotalNetRevenue float64           `json:"total_net_revenue"`
	Utility         float64           `json:"utility"`
	AvgTicket       float64           `json:"avg_ticket"`
	Tiers           []ScenarioTierRow `json:"tiers"`
}

// BreakEvenPoint é o ponto de equilíbrio de um evento
type BreakEvenPoint struct {
	// Tickets é o número mínimo de ingressos para cobrir os custos fixos
	Tickets int `json:"tickets"`
	// Percent é esse número como percentual da capacidade total
	Percent float64 `json:"percent"`
	// Achievable indica se a capacidade do evento chega a cobrir os custos
	Achievable bool `json:"achievable"`
}

// BreakEven varre os lotes do mais barato ao mais caro, acumulando a
// receita líquida unidade a unidade até cobrir os custos fixos.
//
// O preenchimento do mais barato primeiro é deliberadamente pessimista:
// assume que os ingressos de menor margem vendem antes dos premium, o que
// subestima a lucratividade. Quem dimensiona risco de déficit recebe a
// estimativa de pior caso realista, não a otimista.
func BreakEven(tiers []event.TicketTier, fixedCosts float64) BreakEvenPoint {
	capacity := totalCapacity(tiers)
	if fixedCosts <= 0 {
		return BreakEvenPoint{Tickets: 0, Percent: 0, Achievable: true}
	}
	if capacity == 0 {
		return BreakEvenPoint{Achievable: false}
	}

	sorted := sortByPrice(tiers)

	var accumulated float64
	var tickets int
	for _, t := range sorted {
		net := t.NetPerTicket()
		for unit := 0; unit < t.Quantity; unit++ {
			accumulated += net
			tickets++
			if accumulated >= fixedCosts {
				return BreakEvenPoint{
					Tickets:    tickets,
					Percent:    float64(tickets) / float64(capacity) * 100,
					Achievable: true,
				}
			}
		}
	}

	// Nem vendendo tudo os custos são cobertos
	return BreakEvenPoint{Tickets: capacity, Percent: 100, Achievable: false}
}

// ProjectScenarios simula a receita e a utilidade do evento em percentuais
// hipotéticos de ocupação (10%, 20%, ..., 100%), mais o percentual de
// equilíbrio injetado na posição ordenada correta quando cai estritamente
// entre duas marcas de dezena.
//
// Garantias: nenhum cenário excede a capacidade total nem a quantidade de
// qualquer lote; com lotes e custos fixos, a utilidade é não decrescente
// no percentual; entradas degeneradas (zero lotes, zero pedidos) produzem
// zeros bem definidos, nunca NaN ou infinito.
func ProjectScenarios(tiers []event.TicketTier, fixedCosts float64) []Scenario {
	capacity := totalCapacity(tiers)
	sorted := sortByPrice(tiers)
	breakEven := BreakEven(tiers, fixedCosts)

	percents := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	scenarios := make([]Scenario, 0, len(percents)+1)
	injected := false
	for _, p := range percents {
		if breakEven.Achievable && !injected && breakEven.Percent < p && !isDecade(breakEven.Percent) {
			s := buildScenario(sorted, capacity, breakEven.Percent, breakEven.Tickets, fixedCosts)
			s.IsBreakEven = true
			scenarios = append(scenarios, s)
			injected = true
		}
		s := buildScenario(sorted, capacity, p, int(math.Floor(float64(capacity)*p/100)), fixedCosts)
		if breakEven.Achievable && isDecade(breakEven.Percent) && breakEven.Percent == p {
			s.IsBreakEven = true
		}
		scenarios = append(scenarios, s)
	}

	return scenarios
}

// buildScenario preenche os lotes do mais barato ao mais caro até o alvo
func buildScenario(sortedTiers []event.TicketTier, capacity int, percent float64, targetTickets int, fixedCosts float64) Scenario {
	s := Scenario{
		Percent:       percent,
		TargetTickets: targetTickets,
	}

	remaining := targetTickets
	for _, t := range sortedTiers {
		if remaining <= 0 {
			break
		}
		units := t.Quantity
		if units > remaining {
			units = remaining
		}
		if units <= 0 {
			continue
		}
		net := t.NetPerTicket()
		row := ScenarioTierRow{
			TierID:          t.ID,
			TierName:        t.Name,
			Units:           units,
			NetTicket:       net,
			TotalRevenue:    t.Price * float64(units),
			TotalNetRevenue: net * float64(units),
		}
		s.Tiers = append(s.Tiers, row)
		s.TotalTickets += units
		s.TotalRevenue += row.TotalRevenue
		s.TotalNetRevenue += row.TotalNetRevenue
		remaining -= units
	}

	s.Utility = s.TotalNetRevenue - fixedCosts
	if s.TotalTickets > 0 {
		s.AvgTicket = s.TotalRevenue / float64(s.TotalTickets)
	}
	return s
}

func totalCapacity(tiers []event.TicketTier) int {
	var capacity int
	for _, t := range tiers {
		capacity += t.Quantity
	}
	return capacity
}

func sortByPrice(tiers []event.TicketTier) []event.TicketTier {
	sorted := make([]event.TicketTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	return sorted
}

func isDecade(p float64) bool {
	return p == math.Trunc(p) && int(p)%10 == 0
}
