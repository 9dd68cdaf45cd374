package liquidation

import (
	"errors"
	"testing"

	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
)

func TestComputeKPIsRequiresEvent(t *testing.T) {
	if _, err := ComputeKPIs(nil, nil, nil, ""); !errors.Is(err, ErrNoEventSelected) {
		t.Fatalf("err = %v, esperado ErrNoEventSelected", err)
	}
}

func TestComputeKPIsMatchesLiquidationReport(t *testing.T) {
	// O dashboard e o relatório de liquidação derivam do mesmo motor e
	// não podem divergir entre si.
	promoters, teams := testRoster()
	orders := []order.Order{
		makeOrder("1", "mgr-1", order.PaymentMethodCash, 100000, 8000, 2),
		makeOrder("2", "p-team", "bold", 50000, 4000, 1),
		makeOrder("3", "", "bold", 30000, 0, 1),
		makeOrder("4", "adm-1", order.PaymentMethodCash, 20000, 1500, 1),
	}

	kpis, err := ComputeKPIs(orders, promoters, teams, testEventID)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	report, err := BuildLiquidationReport(orders, teams, promoters, testEventID)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	if kpis.TotalCommission != report.GrandTotals.TotalCommission {
		t.Errorf("comissão no dashboard = %v, no relatório = %v", kpis.TotalCommission, report.GrandTotals.TotalCommission)
	}
	if kpis.CashGross != report.GrandTotals.CashGross {
		t.Errorf("efetivo no dashboard = %v, no relatório = %v", kpis.CashGross, report.GrandTotals.CashGross)
	}
	if kpis.NetLiquidation != report.GrandTotals.NetLiquidation {
		t.Errorf("liquidação no dashboard = %v, no relatório = %v", kpis.NetLiquidation, report.GrandTotals.NetLiquidation)
	}
	if kpis.TotalRevenue != 200000 || kpis.TicketsSold != 5 {
		t.Errorf("receita/ingressos = %v/%d, esperado 200000/5", kpis.TotalRevenue, kpis.TicketsSold)
	}
	// Orgânico: web direto (30000) + venda do admin (20000)
	if kpis.OrganicRevenue != 50000 {
		t.Errorf("receita orgânica = %v, esperado 50000", kpis.OrganicRevenue)
	}
	if kpis.OrganicShare != 0.25 {
		t.Errorf("participação orgânica = %v, esperado 0.25", kpis.OrganicShare)
	}
	if kpis.AvgTicket != 40000 {
		t.Errorf("ticket médio = %v, esperado 40000", kpis.AvgTicket)
	}
}

func TestComputeKPIsZeroOrders(t *testing.T) {
	promoters, teams := testRoster()

	kpis, err := ComputeKPIs(nil, promoters, teams, testEventID)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if kpis.AvgTicket != 0 || kpis.OrganicShare != 0 {
		t.Errorf("divisões sem denominador devem degradar para zero, veio %+v", kpis)
	}
}

func TestTopClientsAggregatesByNormalizedEmail(t *testing.T) {
	a := makeOrder("1", "", "bold", 40000, 0, 2)
	a.CustomerEmail = "vip@example.com"
	b := makeOrder("2", "", order.PaymentMethodCash, 30000, 0, 1)
	b.CustomerEmail = "vip@example.com" // já normalizado na escrita
	c := makeOrder("3", "", "bold", 50000, 0, 1)
	c.CustomerEmail = "otro@example.com"

	clients := TopClients([]order.Order{a, b, c}, testEventID, 10)

	if len(clients) != 2 {
		t.Fatalf("clientes = %d, esperado 2", len(clients))
	}
	if clients[0].Email != "vip@example.com" || clients[0].Revenue != 70000 || clients[0].Tickets != 3 {
		t.Errorf("primeiro cliente = %+v, esperado vip com 70000/3", clients[0])
	}
}

func TestTopClientsLimit(t *testing.T) {
	orders := []order.Order{
		makeOrder("1", "", "bold", 10000, 0, 1),
		makeOrder("2", "", "bold", 20000, 0, 1),
	}
	orders[0].CustomerEmail = "a@example.com"
	orders[1].CustomerEmail = "b@example.com"

	clients := TopClients(orders, testEventID, 1)
	if len(clients) != 1 || clients[0].Email != "b@example.com" {
		t.Errorf("top 1 = %+v, esperado apenas b@example.com", clients)
	}
}
