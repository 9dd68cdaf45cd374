package liquidation

import (
	"errors"
	"testing"

	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
)

func TestBuildLiquidationReportRequiresEvent(t *testing.T) {
	if _, err := BuildLiquidationReport(nil, nil, nil, ""); !errors.Is(err, ErrNoEventSelected) {
		t.Fatalf("err = %v, esperado ErrNoEventSelected", err)
	}
}

func TestBuildLiquidationReportEmptyEvent(t *testing.T) {
	promoters, teams := testRoster()
	report, err := BuildLiquidationReport(nil, teams, promoters, testEventID)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if report.GrandTotals != (Metrics{}) {
		t.Errorf("totais de evento sem vendas = %+v, esperado zeros", report.GrandTotals)
	}
	// Mesmo sem vendas o relatório lista squad, independentes e orgânico
	if len(report.Rows) != 3 {
		t.Fatalf("linhas = %d, esperado 3", len(report.Rows))
	}
}

func TestBuildLiquidationReportPartitionAndTotals(t *testing.T) {
	promoters, teams := testRoster()
	orders := []order.Order{
		makeOrder("1", "mgr-1", order.PaymentMethodCash, 100000, 8000, 2),
		makeOrder("2", "p-team", "bold", 50000, 4000, 1),
		makeOrder("3", "p-indep", order.PaymentMethodCash, 40000, 3000, 1),
		makeOrder("4", "", "bold", 30000, 0, 1),
		makeOrder("5", "adm-1", order.PaymentMethodCash, 20000, 1500, 1),
		makeOrder("6", "ghost", order.PaymentMethodCash, 10000, 500, 1),
	}

	report, err := BuildLiquidationReport(orders, teams, promoters, testEventID)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	var teamRow, indepRow, organicRow *Row
	for i := range report.Rows {
		switch report.Rows[i].Kind {
		case KindTeam:
			teamRow = &report.Rows[i]
		case KindIndependent:
			indepRow = &report.Rows[i]
		case KindOrganic:
			organicRow = &report.Rows[i]
		}
	}
	if teamRow == nil || indepRow == nil || organicRow == nil {
		t.Fatal("relatório deve ter as três variantes de linha")
	}

	// Squad: manager (100000 efetivo) + membro (50000 digital)
	if teamRow.Metrics.CashGross != 100000 || teamRow.Metrics.DigitalGross != 50000 {
		t.Errorf("squad = efetivo %v / digital %v, esperado 100000 / 50000",
			teamRow.Metrics.CashGross, teamRow.Metrics.DigitalGross)
	}
	if teamRow.Metrics.TotalCommission != 12000 {
		t.Errorf("comissão do squad = %v, esperado 12000", teamRow.Metrics.TotalCommission)
	}
	if len(teamRow.Members) != 2 || !teamRow.Members[0].IsManager {
		t.Errorf("abertura do squad deve listar o manager primeiro e depois os membros")
	}

	// Independentes: só Ivan; o manager nunca duplica aqui
	if indepRow.Metrics.CashGross != 40000 || indepRow.Metrics.TotalCommission != 3000 {
		t.Errorf("independentes = %+v, esperado efetivo 40000 comissão 3000", indepRow.Metrics)
	}
	for _, m := range indepRow.Members {
		if m.PromoterID == "mgr-1" {
			t.Error("manager não pode aparecer entre os independentes")
		}
	}

	// Orgânico: web direto + órfã + admin, comissão forçada a zero
	if organicRow.Metrics.TotalCommission != 0 {
		t.Errorf("comissão orgânica = %v, esperado 0", organicRow.Metrics.TotalCommission)
	}
	if organicRow.Metrics.CashGross != 30000 || organicRow.Metrics.DigitalGross != 30000 {
		t.Errorf("orgânico = efetivo %v / digital %v, esperado 30000 / 30000",
			organicRow.Metrics.CashGross, organicRow.Metrics.DigitalGross)
	}
	if organicRow.Metrics.NetLiquidation != organicRow.Metrics.CashGross {
		t.Error("liquidação orgânica deve igualar o efetivo (sem comissão)")
	}
	// Sublinhas: Web Directo primeiro, depois uma por admin com venda
	if len(organicRow.Members) != 2 {
		t.Fatalf("sublinhas orgânicas = %d, esperado 2", len(organicRow.Members))
	}
	if organicRow.Members[1].PromoterID != "adm-1" {
		t.Errorf("segunda sublinha orgânica = %q, esperado admin adm-1", organicRow.Members[1].PromoterID)
	}

	// Invariante de conciliação global
	var netSum float64
	var qtySum int
	for _, row := range report.Rows {
		netSum += row.Metrics.NetLiquidation
		qtySum += row.Metrics.TotalQty()
	}
	want := report.GrandTotals.CashGross - report.GrandTotals.TotalCommission
	if netSum != want {
		t.Errorf("Σ net das linhas = %v, esperado cash - comissão = %v", netSum, want)
	}
	if qtySum != 7 {
		t.Errorf("Σ ingressos das linhas = %d, esperado 7 (nenhum pedido duplicado ou perdido)", qtySum)
	}
	if report.GrandTotals.TotalCommission != 15000 {
		t.Errorf("comissão total = %v, esperado 15000 (orgânico zerado)", report.GrandTotals.TotalCommission)
	}
}

func TestBuildLiquidationReportTeamEqualsMemberSum(t *testing.T) {
	// A métrica do squad deve ser idêntica à soma das métricas individuais
	// dos seus membros (consistência entre visão agregada e abertura).
	promoters, teams := testRoster()
	orders := []order.Order{
		makeOrder("1", "mgr-1", order.PaymentMethodCash, 80000, 6000, 2),
		makeOrder("2", "p-team", "bold", 45000, 3000, 1),
		makeOrder("3", "p-team", order.PaymentMethodCash, 15000, 1000, 1),
	}

	report, err := BuildLiquidationReport(orders, teams, promoters, testEventID)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	for _, row := range report.Rows {
		if row.Kind != KindTeam {
			continue
		}
		var memberSum Metrics
		for _, m := range row.Members {
			memberSum = memberSum.Add(m.Metrics)
		}
		if memberSum != row.Metrics {
			t.Errorf("soma dos membros = %+v, esperado igual à linha do squad %+v", memberSum, row.Metrics)
		}
	}
}

func TestBuildLiquidationReportIgnoresOtherEvents(t *testing.T) {
	promoters, teams := testRoster()
	other := makeOrder("1", "p-team", order.PaymentMethodCash, 99999, 999, 1)
	other.EventID = "outro-evento"

	report, err := BuildLiquidationReport([]order.Order{other}, teams, promoters, testEventID)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if report.GrandTotals != (Metrics{}) {
		t.Errorf("pedido de outro evento vazou para o relatório: %+v", report.GrandTotals)
	}
}
