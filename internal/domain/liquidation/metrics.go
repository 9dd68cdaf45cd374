package liquidation

import (
	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
)

// Metrics agrega as métricas de comissão de um subconjunto de pedidos
type Metrics struct {
	DigitalQty      int     `json:"digital_qty"`
	DigitalGross    float64 `json:"digital_gross"`
	CashQty         int     `json:"cash_qty"`
	CashGross       float64 `json:"cash_gross"`
	TotalCommission float64 `json:"total_commission"`
	// NetLiquidation é o valor em dinheiro que o responsável deve
	// repassar à organização: efetivo recebido menos comissões devidas.
	NetLiquidation float64 `json:"net_liquidation"`
}

// ComputeMetrics calcula as métricas de um subconjunto de pedidos de um
// mesmo evento. Apenas pedidos concluídos entram no cálculo.
//
// A liquidação é calculada somente contra o efetivo: pagamentos digitais
// liquidam direto no gateway e ficam fora da conciliação de caixa, mas as
// comissões de vendas digitais continuam descontando do que o responsável
// pelo caixa repassa. Por isso NetLiquidation pode ser legitimamente
// negativo quando as comissões digitais superam o efetivo recebido.
//
// A função é comutativa sobre o conjunto de entrada: aplicada à união de
// subconjuntos disjuntos produz a soma campo a campo dos resultados
// parciais.
func ComputeMetrics(orders []order.Order, forceNoCommission bool) Metrics {
	var m Metrics
	for _, o := range orders {
		if !o.IsCompleted() {
			continue
		}
		qty := o.TicketCount()
		if o.IsCash() {
			m.CashQty += qty
			m.CashGross += o.Total
		} else {
			m.DigitalQty += qty
			m.DigitalGross += o.Total
		}
		if !forceNoCommission {
			m.TotalCommission += o.CommissionAmount
		}
	}
	m.NetLiquidation = m.CashGross - m.TotalCommission
	return m
}

// Add soma duas métricas campo a campo. NetLiquidation é linear em
// CashGross e TotalCommission, então a soma direta preserva a invariante
// net == cash - comissão.
func (m Metrics) Add(other Metrics) Metrics {
	return Metrics{
		DigitalQty:      m.DigitalQty + other.DigitalQty,
		DigitalGross:    m.DigitalGross + other.DigitalGross,
		CashQty:         m.CashQty + other.CashQty,
		CashGross:       m.CashGross + other.CashGross,
		TotalCommission: m.TotalCommission + other.TotalCommission,
		NetLiquidation:  m.NetLiquidation + other.NetLiquidation,
	}
}

// TotalGross retorna a receita bruta total (digital + efetivo)
func (m Metrics) TotalGross() float64 {
	return m.DigitalGross + m.CashGross
}

// TotalQty retorna a quantidade total de ingressos (digital + efetivo)
func (m Metrics) TotalQty() int {
	return m.DigitalQty + m.CashQty
}
