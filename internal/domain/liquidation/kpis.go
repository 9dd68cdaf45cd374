package liquidation

import (
	"sort"

	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
)

// KPIs são os indicadores do dashboard de um evento. Todos os campos
// derivam de ComputeMetrics sobre os buckets do resolver; o dashboard, as
// projeções e a exportação nunca recalculam essas regras por conta própria.
type KPIs struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TicketsSold     int     `json:"tickets_sold"`
	DigitalGross    float64 `json:"digital_gross"`
	DigitalQty      int     `json:"digital_qty"`
	CashGross       float64 `json:"cash_gross"`
	CashQty         int     `json:"cash_qty"`
	TotalCommission float64 `json:"total_commission"`
	NetLiquidation  float64 `json:"net_liquidation"`
	OrganicRevenue  float64 `json:"organic_revenue"`
	// OrganicShare é a fração da receita vinda de vendas orgânicas,
	// entre 0 e 1; zero quando não há receita.
	OrganicShare float64 `json:"organic_share"`
	AvgTicket    float64 `json:"avg_ticket"`
}

// ComputeKPIs calcula os indicadores do dashboard para um evento
func ComputeKPIs(orders []order.Order, promoters []promoter.Promoter, teams []promoter.SalesTeam, eventID string) (*KPIs, error) {
	if eventID == "" {
		return nil, ErrNoEventSelected
	}

	resolver := NewResolver(promoters, teams)

	var eventOrders, organicOrders []order.Order
	for _, o := range orders {
		if o.EventID != eventID || !o.IsCompleted() {
			continue
		}
		eventOrders = append(eventOrders, o)
		if resolver.Classify(o).Bucket == BucketOrganic {
			organicOrders = append(organicOrders, o)
		}
	}

	// Vendas orgânicas não acumulam comissão, então a comissão global é a
	// soma sobre os pedidos atribuídos; descontamos a parcela orgânica.
	overall := ComputeMetrics(eventOrders, false)
	organic := ComputeMetrics(organicOrders, false)

	kpis := &KPIs{
		TotalRevenue:    overall.TotalGross(),
		TicketsSold:     overall.TotalQty(),
		DigitalGross:    overall.DigitalGross,
		DigitalQty:      overall.DigitalQty,
		CashGross:       overall.CashGross,
		CashQty:         overall.CashQty,
		TotalCommission: overall.TotalCommission - organic.TotalCommission,
		OrganicRevenue:  organic.TotalGross(),
	}
	kpis.NetLiquidation = kpis.CashGross - kpis.TotalCommission
	if kpis.TotalRevenue > 0 {
		kpis.OrganicShare = kpis.OrganicRevenue / kpis.TotalRevenue
	}
	if kpis.TicketsSold > 0 {
		kpis.AvgTicket = kpis.TotalRevenue / float64(kpis.TicketsSold)
	}
	return kpis, nil
}

// TopClient é uma posição do ranking de clientes por receita
type TopClient struct {
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Tickets int     `json:"tickets"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// TopClients agrega os pedidos concluídos por cliente e retorna os
// maiores compradores. A agregação depende da normalização do email na
// escrita do pedido: a chave é igualdade exata do email normalizado.
func TopClients(orders []order.Order, eventID string, limit int) []TopClient {
	totals := make(map[string]*TopClient)
	for _, o := range orders {
		if !o.IsCompleted() {
			continue
		}
		if eventID != "" && o.EventID != eventID {
			continue
		}
		entry, ok := totals[o.CustomerEmail]
		if !ok {
			entry = &TopClient{Email: o.CustomerEmail, Name: o.CustomerName}
			totals[o.CustomerEmail] = entry
		}
		entry.Tickets += o.TicketCount()
		entry.Revenue += o.Total
		entry.Orders++
	}

	clients := make([]TopClient, 0, len(totals))
	for _, entry := range totals {
		clients = append(clients, *entry)
	}
	sort.Slice(clients, func(i, j int) bool {
		if clients[i].Revenue != clients[j].Revenue {
			return clients[i].Revenue > clients[j].Revenue
		}
		if clients[i].Tickets != clients[j].Tickets {
			return clients[i].Tickets > clients[j].Tickets
		}
		return clients[i].Email < clients[j].Email
	})

	if limit > 0 && len(clients) > limit {
		clients = clients[:limit]
	}
	return clients
}
