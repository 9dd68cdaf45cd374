package liquidation

import (
	"testing"
	"time"

	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
)

const testEventID = "evt-1"

func makeOrder(id, staffID, paymentMethod string, total, commission float64, qty int) order.Order {
	return order.Order{
		ID:               id,
		OrderNumber:      "MID-000" + id,
		EventID:          testEventID,
		CustomerEmail:    "cliente@example.com",
		CustomerName:     "Cliente",
		Total:            total,
		Status:           order.StatusCompleted,
		PaymentMethod:    paymentMethod,
		StaffID:          staffID,
		CommissionAmount: commission,
		NetAmount:        total - commission,
		Items: []order.OrderItem{
			{TierID: "tier-1", TierName: "General", Quantity: qty, UnitPrice: total / float64(qty), Subtotal: total},
		},
		CreatedAt: time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC),
	}
}

func makePromoter(id, name string, role promoter.Role, teamID string) promoter.Promoter {
	return promoter.Promoter{
		UserID:      id,
		Name:        name,
		Code:        name,
		Role:        role,
		SalesTeamID: teamID,
	}
}

func TestComputeMetricsSplitsCashAndDigital(t *testing.T) {
	// Cenário concreto de conciliação: venda em efetivo de 100000 com
	// comissão 8000 mais venda digital de 50000 com comissão 4000.
	orders := []order.Order{
		makeOrder("a", "p1", order.PaymentMethodCash, 100000, 8000, 2),
		makeOrder("b", "p1", "bold", 50000, 4000, 1),
	}

	m := ComputeMetrics(orders, false)

	if m.DigitalGross != 50000 {
		t.Errorf("DigitalGross = %v, esperado 50000", m.DigitalGross)
	}
	if m.CashGross != 100000 {
		t.Errorf("CashGross = %v, esperado 100000", m.CashGross)
	}
	if m.DigitalQty != 1 || m.CashQty != 2 {
		t.Errorf("quantidades = digital %d / efetivo %d, esperado 1 / 2", m.DigitalQty, m.CashQty)
	}
	if m.TotalCommission != 12000 {
		t.Errorf("TotalCommission = %v, esperado 12000", m.TotalCommission)
	}
	if m.NetLiquidation != 88000 {
		t.Errorf("NetLiquidation = %v, esperado 88000", m.NetLiquidation)
	}
}

func TestComputeMetricsForceNoCommission(t *testing.T) {
	orders := []order.Order{
		makeOrder("a", "", order.PaymentMethodCash, 30000, 2000, 1),
		makeOrder("b", "", "card", 20000, 1500, 1),
	}

	m := ComputeMetrics(orders, true)

	if m.TotalCommission != 0 {
		t.Errorf("TotalCommission = %v, esperado 0 com força-zero", m.TotalCommission)
	}
	if m.NetLiquidation != m.CashGross {
		t.Errorf("NetLiquidation = %v, esperado igual a CashGross %v", m.NetLiquidation, m.CashGross)
	}
}

func TestComputeMetricsNegativeLiquidation(t *testing.T) {
	// Comissões de vendas digitais podem superar o efetivo recebido;
	// a liquidação fica legitimamente negativa.
	orders := []order.Order{
		makeOrder("a", "p1", "bold", 100000, 15000, 2),
		makeOrder("b", "p1", order.PaymentMethodCash, 10000, 1000, 1),
	}

	m := ComputeMetrics(orders, false)

	if m.NetLiquidation != -6000 {
		t.Errorf("NetLiquidation = %v, esperado -6000", m.NetLiquidation)
	}
}

func TestComputeMetricsIgnoresPendingAndFailed(t *testing.T) {
	pending := makeOrder("a", "p1", "bold", 50000, 4000, 1)
	pending.Status = order.StatusPending
	failed := makeOrder("b", "p1", "bold", 50000, 4000, 1)
	failed.Status = order.StatusFailed
	completed := makeOrder("c", "p1", order.PaymentMethodCash, 20000, 1000, 1)

	m := ComputeMetrics([]order.Order{pending, failed, completed}, false)

	if m.TotalGross() != 20000 {
		t.Errorf("TotalGross = %v, esperado 20000 (só pedido concluído)", m.TotalGross())
	}
	if m.TotalQty() != 1 {
		t.Errorf("TotalQty = %d, esperado 1", m.TotalQty())
	}
}

func TestComputeMetricsAdditivity(t *testing.T) {
	setA := []order.Order{
		makeOrder("a", "p1", order.PaymentMethodCash, 100000, 8000, 2),
		makeOrder("b", "p2", "bold", 50000, 4000, 1),
	}
	setB := []order.Order{
		makeOrder("c", "p3", "card", 75000, 5000, 3),
		makeOrder("d", "", order.PaymentMethodCash, 25000, 0, 1),
	}

	union := append(append([]order.Order{}, setA...), setB...)
	got := ComputeMetrics(union, false)
	want := ComputeMetrics(setA, false).Add(ComputeMetrics(setB, false))

	if got != want {
		t.Errorf("métricas da união = %+v, esperado soma das partes %+v", got, want)
	}
}

func TestComputeMetricsEmptyInput(t *testing.T) {
	m := ComputeMetrics(nil, false)
	if m != (Metrics{}) {
		t.Errorf("métricas de entrada vazia = %+v, esperado zeros", m)
	}
}
