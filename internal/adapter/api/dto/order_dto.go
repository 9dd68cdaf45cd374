package dto

import (
	"time"

	"github.com/hugohenrick/midnight-tickets/internal/domain/order"
)

// OrderItemRequest representa um item da requisição de compra
type OrderItemRequest struct {
	TierID   string `json:"tier_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest representa a requisição de compra da vitrine.
// StaffCode é o código de referência opcional do promoter que originou a
// venda (link de venda); código não resolvível vira venda orgânica.
type CheckoutRequest struct {
	EventID       string             `json:"event_id" binding:"required"`
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerEmail string             `json:"customer_email" binding:"required,email"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
	StaffCode     string             `json:"staff_code"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ManualSaleRequest representa a requisição de venda manual em dinheiro
// registrada pelo próprio promoter autenticado
type ManualSaleRequest struct {
	EventID       string             `json:"event_id" binding:"required"`
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerEmail string             `json:"customer_email" binding:"required,email"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderItemResponse representa um item do pedido (snapshot da compra)
type OrderItemResponse struct {
	TierID    string  `json:"tier_id"`
	TierName  string  `json:"tier_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderResponse representa a resposta de pedido
type OrderResponse struct {
	ID               string              `json:"id"`
	OrderNumber      string              `json:"order_number"`
	EventID          string              `json:"event_id"`
	CustomerEmail    string              `json:"customer_email"`
	CustomerName     string              `json:"customer_name"`
	Total            float64             `json:"total"`
	Status           order.Status        `json:"status"`
	PaymentMethod    string              `json:"payment_method"`
	StaffID          string              `json:"staff_id,omitempty"`
	CommissionAmount float64             `json:"commission_amount"`
	NetAmount        float64             `json:"net_amount"`
	Items            []OrderItemResponse `json:"items"`
	Used             bool                `json:"used"`
	UsedAt           *time.Time          `json:"used_at,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// OrderListResponse representa a resposta de lista de pedidos
type OrderListResponse struct {
	Items      []OrderResponse `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalPages int             `json:"total_pages"`
}

// RedeemResponse representa o resultado do scan de um ingresso na portaria
type RedeemResponse struct {
	OrderNumber  string     `json:"order_number"`
	CustomerName string     `json:"customer_name"`
	EventID      string     `json:"event_id"`
	Tickets      int        `json:"tickets"`
	Used         bool       `json:"used"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
	Message      string     `json:"message"`
}

// WalletResponse representa a carteira de ingressos de um cliente
type WalletResponse struct {
	Email  string          `json:"email"`
	Orders []OrderResponse `json:"orders"`
}

// ToOrderResponse converte um pedido do domínio para DTO
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			TierID:    item.TierID,
			TierName:  item.TierName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}

	return &OrderResponse{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		EventID:          o.EventID,
		CustomerEmail:    o.CustomerEmail,
		CustomerName:     o.CustomerName,
		Total:            o.Total,
		Status:           o.Status,
		PaymentMethod:    o.PaymentMethod,
		StaffID:          o.StaffID,
		CommissionAmount: o.CommissionAmount,
		NetAmount:        o.NetAmount,
		Items:            items,
		Used:             o.Used,
		UsedAt:           o.UsedAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// ToOrderListResponse converte uma lista de pedidos do domínio para DTO
func ToOrderListResponse(orders []order.Order, total, page, size int) *OrderListResponse {
	items := make([]OrderResponse, len(orders))
	for i := range orders {
		items[i] = *ToOrderResponse(&orders[i])
	}

	return &OrderListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}

// ToWalletResponse converte os pedidos de um cliente para a carteira
func ToWalletResponse(email string, orders []order.Order) *WalletResponse {
	resp := &WalletResponse{Email: email, Orders: []OrderResponse{}}
	for i := range orders {
		resp.Orders = append(resp.Orders, *ToOrderResponse(&orders[i]))
	}
	return resp
}
