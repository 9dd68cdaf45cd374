package order

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func newTestOrder(t *testing.T, paymentMethod string) *Order {
	t.Helper()
	o, err := NewOrder(
		"evt-1",
		"  Carlos.RUIZ@Example.COM ",
		"Carlos Ruiz",
		paymentMethod,
		"p1",
		[]OrderItem{
			{TierID: "t1", TierName: "Early Bird", Quantity: 2, UnitPrice: 50000},
			{TierID: "t2", TierName: "VIP", Quantity: 1, UnitPrice: 150000},
		},
		map[string]float64{"t1": 5000, "t2": 10000},
	)
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}
	return o
}

func TestNewOrderNormalizesEmail(t *testing.T) {
	o := newTestOrder(t, "bold")
	if o.CustomerEmail != "carlos.ruiz@example.com" {
		t.Errorf("email = %q, esperado normalizado em minúsculas e sem espaços", o.CustomerEmail)
	}
}

func TestNewOrderComputesTotals(t *testing.T) {
	o := newTestOrder(t, "bold")

	if o.Total != 250000 {
		t.Errorf("Total = %v, esperado 250000", o.Total)
	}
	// Comissão fixa por unidade: 2×5000 + 1×10000
	if o.CommissionAmount != 20000 {
		t.Errorf("CommissionAmount = %v, esperado 20000", o.CommissionAmount)
	}
	if o.NetAmount != 230000 {
		t.Errorf("NetAmount = %v, esperado 230000", o.NetAmount)
	}
	if o.TicketCount() != 3 {
		t.Errorf("TicketCount = %d, esperado 3", o.TicketCount())
	}
	if o.Items[0].Subtotal != 100000 {
		t.Errorf("Subtotal do item = %v, esperado 100000", o.Items[0].Subtotal)
	}
}

func TestNewOrderStatusByPaymentMethod(t *testing.T) {
	// Venda digital aguarda o gateway; venda em dinheiro conclui na hora
	if got := newTestOrder(t, "bold").Status; got != StatusPending {
		t.Errorf("status digital = %s, esperado pending", got)
	}
	if got := newTestOrder(t, PaymentMethodCash).Status; got != StatusCompleted {
		t.Errorf("status em dinheiro = %s, esperado completed", got)
	}
}

func TestNewOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^MID-\d{6}$`)
	for i := 0; i < 50; i++ {
		n := NewOrderNumber()
		if !pattern.MatchString(n) {
			t.Fatalf("número de pedido %q fora do formato MID-<6 dígitos>", n)
		}
	}
}

func TestNewOrderValidation(t *testing.T) {
	items := []OrderItem{{TierID: "t1", TierName: "General", Quantity: 1, UnitPrice: 100}}

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{"sem evento", func() error {
			_, err := NewOrder("", "a@b.com", "Ana", "bold", "", items, nil)
			return err
		}, ErrEmptyEventID},
		{"email inválido", func() error {
			_, err := NewOrder("evt-1", "sem-arroba", "Ana", "bold", "", items, nil)
			return err
		}, ErrInvalidEmail},
		{"sem itens", func() error {
			_, err := NewOrder("evt-1", "a@b.com", "Ana", "bold", "", nil, nil)
			return err
		}, ErrNoItems},
		{"quantidade zero", func() error {
			_, err := NewOrder("evt-1", "a@b.com", "Ana", "bold", "",
				[]OrderItem{{TierID: "t1", Quantity: 0, UnitPrice: 100}}, nil)
			return err
		}, ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, esperado %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompleteAndFailTransitions(t *testing.T) {
	o := newTestOrder(t, "bold")
	if err := o.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if o.Status != StatusCompleted {
		t.Errorf("status = %s, esperado completed", o.Status)
	}
	// Transições só valem a partir de pending
	if err := o.Complete(); !errors.Is(err, ErrOrderNotPending) {
		t.Errorf("Complete em pedido concluído: err = %v, esperado ErrOrderNotPending", err)
	}
	if err := o.Fail(); !errors.Is(err, ErrOrderNotPending) {
		t.Errorf("Fail em pedido concluído: err = %v, esperado ErrOrderNotPending", err)
	}
}

func TestRedeemIsIdempotent(t *testing.T) {
	o := newTestOrder(t, PaymentMethodCash)
	now := time.Now()

	if err := o.Redeem(now); err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if !o.Used || o.UsedAt == nil {
		t.Fatal("primeiro scan deve marcar used/used_at")
	}
	firstUse := *o.UsedAt

	// Segundo scan: estado não muda, resultado distinto para a portaria
	err := o.Redeem(now.Add(time.Minute))
	if !errors.Is(err, ErrTicketAlreadyUsed) {
		t.Errorf("err = %v, esperado ErrTicketAlreadyUsed", err)
	}
	if !o.UsedAt.Equal(firstUse) {
		t.Error("segundo scan não pode alterar used_at")
	}
}

func TestRedeemRequiresCompletedOrder(t *testing.T) {
	o := newTestOrder(t, "bold") // pending
	if err := o.Redeem(time.Now()); !errors.Is(err, ErrOrderNotCompleted) {
		t.Errorf("err = %v, esperado ErrOrderNotCompleted", err)
	}
}
