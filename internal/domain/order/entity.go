package order

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyEventID      = errors.New("evento não informado")
	ErrEmptyCustomerName = errors.New("nome do cliente não pode ser vazio")
	ErrInvalidEmail      = errors.New("email do cliente inválido")
	ErrNoItems           = errors.New("pedido deve ter ao menos um item")
	ErrInvalidQuantity   = errors.New("quantidade do item deve ser maior que zero")
	ErrOrderNotPending   = errors.New("pedido não está pendente")
	ErrOrderNotCompleted = errors.New("pedido não está concluído")
	ErrTicketAlreadyUsed = errors.New("ingresso já utilizado")
)

// Status representa o estado do pedido
type Status string

const (
	// StatusPending aguarda confirmação assíncrona do gateway de pagamento.
	// Pedidos pendentes não contam para métricas, estoque nem comissão.
	StatusPending Status = "pending"
	// StatusCompleted é o único status que entra em vendas e liquidação.
	StatusCompleted Status = "completed"
	// StatusFailed é terminal; o gateway recusou ou o pagamento expirou.
	StatusFailed Status = "failed"
)

// PaymentMethodCash identifica venda manual/presencial em dinheiro.
// Qualquer outro valor de meio de pagamento é tratado como digital.
const PaymentMethodCash = "cash"

// OrderItem é o snapshot de um lote no momento da compra. Nome e preço
// não mudam retroativamente se o lote for editado depois.
type OrderItem struct {
	TierID    string  `json:"tier_id"`
	TierName  string  `json:"tier_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Order representa uma transação de venda de ingressos
type Order struct {
	ID            string  `json:"id"`
	OrderNumber   string  `json:"order_number"`
	EventID       string  `json:"event_id"`
	CustomerEmail string  `json:"customer_email"`
	CustomerName  string  `json:"customer_name"`
	Total         float64 `json:"total"`
	Status        Status  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
	// StaffID é a referência opcional ao promoter creditado pela venda.
	// Vazio (ou referência não resolvível) significa venda orgânica.
	StaffID string `json:"staff_id,omitempty"`
	// CommissionAmount e NetAmount são calculados na criação a partir da
	// comissão fixa dos lotes e gravados no pedido, para que o histórico
	// não derive se a comissão do lote mudar depois.
	CommissionAmount float64     `json:"commission_amount"`
	NetAmount        float64     `json:"net_amount"`
	Items            []OrderItem `json:"items"`
	Used             bool        `json:"used"`
	UsedAt           *time.Time  `json:"used_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// NormalizeEmail normaliza um email de cliente (minúsculas, sem espaços).
// A normalização na escrita é invariante: a carteira de ingressos do
// cliente e o ranking de clientes dependem de igualdade exata.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewOrderNumber gera um número de pedido legível no formato MID-<6 dígitos>.
// O sufixo vem de crypto/rand; a unicidade é garantida pela constraint UNIQUE
// no banco, com retry limitado no repositório em caso de colisão.
func NewOrderNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// Fallback improvável; ainda passa pela constraint UNIQUE.
		n = big.NewInt(time.Now().UnixNano() % 1000000)
	}
	return fmt.Sprintf("MID-%06d", n.Int64())
}

// NewOrder cria um novo pedido com itens snapshotados e totais calculados.
// commissionPerUnit mapeia tier_id para a comissão fixa vigente do lote.
func NewOrder(eventID, customerEmail, customerName, paymentMethod, staffID string, items []OrderItem, commissionPerUnit map[string]float64) (*Order, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, ErrEmptyEventID
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrEmptyCustomerName
	}
	customerEmail = NormalizeEmail(customerEmail)
	if customerEmail == "" || !strings.Contains(customerEmail, "@") {
		return nil, ErrInvalidEmail
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	var total, commission float64
	for i := range items {
		if items[i].Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		items[i].Subtotal = items[i].UnitPrice * float64(items[i].Quantity)
		total += items[i].Subtotal
		commission += commissionPerUnit[items[i].TierID] * float64(items[i].Quantity)
	}

	status := StatusPending
	if paymentMethod == PaymentMethodCash {
		// Venda manual em dinheiro não passa pelo gateway.
		status = StatusCompleted
	}

	now := time.Now()
	return &Order{
		ID:               uuid.New().String(),
		OrderNumber:      NewOrderNumber(),
		EventID:          eventID,
		CustomerEmail:    customerEmail,
		CustomerName:     strings.TrimSpace(customerName),
		Total:            total,
		Status:           status,
		PaymentMethod:    paymentMethod,
		StaffID:          staffID,
		CommissionAmount: commission,
		NetAmount:        total - commission,
		Items:            items,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// IsCash verifica se o pedido foi pago em dinheiro
func (o *Order) IsCash() bool {
	return o.PaymentMethod == PaymentMethodCash
}

// IsCompleted verifica se o pedido está concluído
func (o *Order) IsCompleted() bool {
	return o.Status == StatusCompleted
}

// TicketCount retorna a quantidade total de ingressos do pedido
func (o *Order) TicketCount() int {
	var count int
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// Complete confirma um pedido pendente após o retorno do gateway
func (o *Order) Complete() error {
	if o.Status != StatusPending {
		return ErrOrderNotPending
	}
	o.Status = StatusCompleted
	o.UpdatedAt = time.Now()
	return nil
}

// Fail marca um pedido pendente como recusado
func (o *Order) Fail() error {
	if o.Status != StatusPending {
		return ErrOrderNotPending
	}
	o.Status = StatusFailed
	o.UpdatedAt = time.Now()
	return nil
}

// Redeem marca o ingresso como utilizado pelo scanner de acesso.
// A operação é idempotente: um segundo scan não altera estado e retorna
// ErrTicketAlreadyUsed para que a portaria veja o resultado distinto.
func (o *Order) Redeem(now time.Time) error {
	if o.Status != StatusCompleted {
		return ErrOrderNotCompleted
	}
	if o.Used {
		return ErrTicketAlreadyUsed
	}
	o.Used = true
	o.UsedAt = &now
	o.UpdatedAt = now
	return nil
}
