package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hugohenrick/midnight-tickets/internal/domain/event"
	"github.com/hugohenrick/midnight-tickets/internal/domain/liquidation"
	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
)

func TestWriteLiquidationCSVLayout(t *testing.T) {
	report := &liquidation.Report{
		EventID: "evt-1",
		Rows: []liquidation.Row{
			{
				Kind:        liquidation.KindTeam,
				TeamName:    "Squad Norte",
				ManagerName: "Marta",
				Metrics: liquidation.Metrics{
					DigitalQty: 1, DigitalGross: 50000,
					CashQty: 2, CashGross: 100000,
					TotalCommission: 12000, NetLiquidation: 88000,
				},
			},
		},
		GrandTotals: liquidation.Metrics{
			DigitalQty: 1, DigitalGross: 50000,
			CashQty: 2, CashGross: 100000,
			TotalCommission: 12000, NetLiquidation: 88000,
		},
	}

	var buf bytes.Buffer
	if err := WriteLiquidationCSV(&buf, report); err != nil {
		t.Fatalf("err = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("linhas = %d, esperado 3 (cabeçalho, squad, totais)", len(lines))
	}

	// Contrato byte a byte do cabeçalho
	wantHeader := "Squad,Manager,Ventas Digital($),Ventas Efectivo($),Recaudo Efectivo,Comision Total,A Liquidar (Neto)"
	if lines[0] != wantHeader {
		t.Errorf("cabeçalho = %q, esperado %q", lines[0], wantHeader)
	}
	if lines[1] != "Squad Norte,Marta,50000,100000,100000,12000,88000" {
		t.Errorf("linha do squad = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "TOTALES,") {
		t.Errorf("rodapé = %q, esperado começar com TOTALES", lines[2])
	}
}

func TestWriteSalesDetailCSVOneRowPerLineItem(t *testing.T) {
	createdAt := time.Date(2025, 6, 10, 21, 15, 0, 0, time.UTC)
	orders := []order.Order{
		{
			ID:            "o1",
			EventID:       "evt-1",
			CustomerName:  "Carlos Ruiz",
			CustomerEmail: "carlos@example.com",
			Status:        order.StatusCompleted,
			PaymentMethod: "bold",
			StaffID:       "p1",
			CreatedAt:     createdAt,
			Items: []order.OrderItem{
				{TierID: "t1", TierName: "Early Bird", Quantity: 2, UnitPrice: 50000, Subtotal: 100000},
				{TierID: "t2", TierName: "VIP", Quantity: 1, UnitPrice: 150000, Subtotal: 150000},
			},
		},
		{
			ID:            "o2",
			EventID:       "evt-1",
			CustomerName:  "Lucia Gomez",
			CustomerEmail: "lucia@example.com",
			Status:        order.StatusCompleted,
			PaymentMethod: order.PaymentMethodCash,
			CreatedAt:     createdAt,
			Items: []order.OrderItem{
				{TierID: "t1", TierName: "Early Bird", Quantity: 1, UnitPrice: 50000, Subtotal: 50000},
			},
		},
	}
	promoters := []promoter.Promoter{
		{UserID: "p1", Name: "Paula", Code: "PAULA", Role: promoter.RolePromoter},
	}
	tiers := []event.TicketTier{
		{ID: "t1", Stage: event.StageEarlyBird},
		{ID: "t2", Stage: event.StageGeneral},
	}

	var buf bytes.Buffer
	if err := WriteSalesDetailCSV(&buf, orders, promoters, tiers); err != nil {
		t.Fatalf("err = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Um pedido com 2 tipos de boleta gera 2 linhas; total 3 + cabeçalho
	if len(lines) != 4 {
		t.Fatalf("linhas = %d, esperado 4", len(lines))
	}

	wantHeader := "Nombre Cliente,Correo Electronico,Cantidad,Tipo Boleta,Valor Total,Fecha Compra,Medio Pago,Promotor,Etapa"
	if lines[0] != wantHeader {
		t.Errorf("cabeçalho = %q, esperado %q", lines[0], wantHeader)
	}
	if lines[1] != "Carlos Ruiz,carlos@example.com,2,Early Bird,100000,2025-06-10 21:15:00,bold,Paula,early_bird" {
		t.Errorf("primeira linha = %q", lines[1])
	}
	if !strings.Contains(lines[3], "Orgánico") {
		t.Errorf("venda sem promoter deve sair como Orgánico: %q", lines[3])
	}
}

func TestWriteSalesDetailCSVSkipsPending(t *testing.T) {
	orders := []order.Order{
		{
			ID:            "o1",
			CustomerName:  "Carlos",
			CustomerEmail: "carlos@example.com",
			Status:        order.StatusPending,
			PaymentMethod: "bold",
			Items:         []order.OrderItem{{TierID: "t1", TierName: "General", Quantity: 1}},
		},
	}

	var buf bytes.Buffer
	if err := WriteSalesDetailCSV(&buf, orders, nil, nil); err != nil {
		t.Fatalf("err = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("pedido pendente não pode aparecer no detalhe de vendas: %v", lines)
	}
}
