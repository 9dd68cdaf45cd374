package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/dto"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/repository"
	eventdomain "github.com/hugohenrick/midnight-tickets/internal/domain/event"
	orderdomain "github.com/hugohenrick/midnight-tickets/internal/domain/order"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/hugohenrick/midnight-tickets/pkg/logger"
)

// OrderController gerencia as requisições relacionadas a pedidos:
// checkout da vitrine, venda manual, confirmação de pagamento, carteira
// do cliente e scan de ingressos na portaria
type OrderController struct {
	orderRepo    orderdomain.Repository
	eventRepo    eventdomain.Repository
	tierRepo     eventdomain.TierRepository
	promoterRepo promoter.Repository
	logger       logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(orderRepo orderdomain.Repository, eventRepo eventdomain.Repository, tierRepo eventdomain.TierRepository, promoterRepo promoter.Repository, logger logger.Logger) *OrderController {
	return &OrderController{
		orderRepo:    orderRepo,
		eventRepo:    eventRepo,
		tierRepo:     tierRepo,
		promoterRepo: promoterRepo,
		logger:       logger,
	}
}

// Checkout cria um pedido a partir da vitrine pública
// @Summary Comprar ingressos
// @Description Cria um pedido da vitrine. Pagamento digital fica pendente até a confirmação do gateway.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CheckoutRequest true "Dados da compra"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/checkout [post]
func (c *OrderController) Checkout(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	// Código de referência não resolvível vira venda orgânica, nunca erro:
	// o cliente não pode perder a compra por um link de promoter quebrado.
	var staffID string
	if req.StaffCode != "" {
		if p, err := c.promoterRepo.FindByCode(ctx, req.StaffCode); err == nil {
			staffID = p.UserID
		}
	}

	c.createOrder(ctx, req.EventID, req.CustomerName, req.CustomerEmail, req.PaymentMethod, staffID, req.Items)
}

// ManualSale registra uma venda manual em dinheiro do promoter autenticado
// @Summary Registrar venda manual
// @Description Registra uma venda presencial em dinheiro, concluída imediatamente
// @Tags orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param order body dto.ManualSaleRequest true "Dados da venda"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/manual [post]
func (c *OrderController) ManualSale(ctx *gin.Context) {
	var req dto.ManualSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	c.createOrder(ctx, req.EventID, req.CustomerName, req.CustomerEmail, orderdomain.PaymentMethodCash, ctx.GetString("user_id"), req.Items)
}

// createOrder valida o evento e os lotes, monta o snapshot dos itens e
// persiste o pedido. Pedidos em dinheiro já nascem concluídos e aplicam
// os efeitos de conclusão imediatamente.
func (c *OrderController) createOrder(ctx *gin.Context, eventID, customerName, customerEmail, paymentMethod, staffID string, itemsReq []dto.OrderItemRequest) {
	e, err := c.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "evento não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar evento", err.Error()))
		return
	}
	if !e.IsOnSale() {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "evento não está com vendas abertas", string(e.Status)))
		return
	}

	tiers, err := c.tierRepo.ListByEvent(ctx, eventID)
	if err != nil {
		c.logger.Error("erro ao listar lotes no checkout", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lotes", err.Error()))
		return
	}
	tiersByID := make(map[string]*eventdomain.TicketTier, len(tiers))
	for _, t := range tiers {
		tiersByID[t.ID] = t
	}

	items := make([]orderdomain.OrderItem, 0, len(itemsReq))
	commissionPerUnit := make(map[string]float64, len(itemsReq))
	for _, item := range itemsReq {
		t, ok := tiersByID[item.TierID]
		if !ok {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lote não encontrado", item.TierID))
			return
		}
		if t.Available() < item.Quantity {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "lote sem disponibilidade",
				fmt.Sprintf("lote %s tem %d ingressos disponíveis", t.Name, t.Available())))
			return
		}
		items = append(items, orderdomain.OrderItem{
			TierID:    t.ID,
			TierName:  t.Name,
			Quantity:  item.Quantity,
			UnitPrice: t.Price,
		})
		commissionPerUnit[t.ID] = t.CommissionFixed
	}

	o, err := orderdomain.NewOrder(eventID, customerEmail, customerName, paymentMethod, staffID, items, commissionPerUnit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar pedido", err.Error()))
		return
	}

	if err := c.orderRepo.Create(ctx, o); err != nil {
		c.logger.Error("erro ao criar pedido no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar pedido", err.Error()))
		return
	}

	if o.IsCompleted() {
		c.applyCompletionEffects(ctx, o)
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(o))
}

// applyCompletionEffects incrementa os contadores de vendidos dos lotes e
// recalcula os totais do promoter após a conclusão de um pedido
func (c *OrderController) applyCompletionEffects(ctx *gin.Context, o *orderdomain.Order) {
	for _, item := range o.Items {
		if err := c.tierRepo.IncrementSold(ctx, item.TierID, item.Quantity); err != nil {
			c.logger.Error("erro ao incrementar vendidos do lote", "tier_id", item.TierID, "error", err)
		}
	}
	if o.StaffID != "" {
		if err := c.promoterRepo.RefreshTotals(ctx, o.StaffID); err != nil {
			c.logger.Error("erro ao recalcular totais do promoter", "staff_id", o.StaffID, "error", err)
		}
	}
}

// Confirm confirma um pedido pendente após o retorno do gateway
// @Summary Confirmar pagamento
// @Description Confirma um pedido pendente, aplicando estoque e comissão
// @Tags orders
// @Produce json
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id}/confirm [post]
func (c *OrderController) Confirm(ctx *gin.Context) {
	o, err := c.findOrder(ctx, ctx.Param("id"))
	if err != nil {
		return
	}

	if err := o.Complete(); err != nil {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "pedido não pode ser confirmado", err.Error()))
		return
	}

	if err := c.orderRepo.UpdateStatus(ctx, o.ID, o.Status); err != nil {
		c.logger.Error("erro ao confirmar pedido", "order_id", o.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao confirmar pedido", err.Error()))
		return
	}

	c.applyCompletionEffects(ctx, o)

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// Fail marca um pedido pendente como recusado pelo gateway
// @Summary Recusar pagamento
// @Description Marca um pedido pendente como recusado
// @Tags orders
// @Produce json
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id}/fail [post]
func (c *OrderController) Fail(ctx *gin.Context) {
	o, err := c.findOrder(ctx, ctx.Param("id"))
	if err != nil {
		return
	}

	if err := o.Fail(); err != nil {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "pedido não pode ser recusado", err.Error()))
		return
	}

	if err := c.orderRepo.UpdateStatus(ctx, o.ID, o.Status); err != nil {
		c.logger.Error("erro ao recusar pedido", "order_id", o.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao recusar pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// Get retorna um pedido pelo ID
// @Summary Buscar pedido
// @Description Retorna os dados de um pedido pelo ID
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	o, err := c.findOrder(ctx, ctx.Param("id"))
	if err != nil {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// GetByNumber retorna um pedido pelo número legível
// @Summary Buscar pedido por número
// @Description Retorna os dados de um pedido pelo número MID-xxxxxx
// @Tags orders
// @Produce json
// @Param number path string true "Número do pedido"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/number/{number} [get]
func (c *OrderController) GetByNumber(ctx *gin.Context) {
	o, err := c.orderRepo.FindByNumber(ctx, ctx.Param("number"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar pedido por número", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar pedido", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOrderResponse(o))
}

// List retorna a lista de pedidos com filtros
// @Summary Listar pedidos
// @Description Retorna a lista de pedidos paginada, com filtros opcionais
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param event_id query string false "Filtrar por evento"
// @Param staff_id query string false "Filtrar por promoter"
// @Param status query string false "Filtrar por status"
// @Param payment_method query string false "Filtrar por meio de pagamento"
// @Param date_start query string false "Data inicial (YYYY-MM-DD)"
// @Param date_end query string false "Data final inclusiva (YYYY-MM-DD)"
// @Success 200 {object} dto.OrderListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)
	offset := (pagination.Page - 1) * pagination.PageSize

	filters := orderdomain.Filters{
		EventID:       ctx.Query("event_id"),
		StaffID:       ctx.Query("staff_id"),
		Status:        orderdomain.Status(ctx.Query("status")),
		PaymentMethod: ctx.Query("payment_method"),
	}
	if v := ctx.Query("date_start"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inicial inválida", v))
			return
		}
		filters.DateStart = &d
	}
	if v := ctx.Query("date_end"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data final inválida", v))
			return
		}
		// Data final é inclusiva: cobre o dia inteiro
		end := d.Add(24*time.Hour - time.Second)
		filters.DateEnd = &end
	}

	orders, err := c.orderRepo.List(ctx, filters, pagination.PageSize, offset)
	if err != nil {
		c.logger.Error("erro ao listar pedidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar pedidos", err.Error()))
		return
	}

	total, err := c.orderRepo.Count(ctx, filters)
	if err != nil {
		c.logger.Error("erro ao contar pedidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(orders, total, pagination.Page, pagination.PageSize))
}

// Redeem marca o ingresso como utilizado no scan da portaria
// @Summary Validar ingresso
// @Description Marca o ingresso como utilizado. Um segundo scan retorna conflito, sem alterar estado.
// @Tags orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param number path string true "Número do pedido"
// @Success 200 {object} dto.RedeemResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.RedeemResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/redeem/{number} [post]
func (c *OrderController) Redeem(ctx *gin.Context) {
	o, err := c.orderRepo.FindByNumber(ctx, ctx.Param("number"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar pedido no scan", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar pedido", err.Error()))
		return
	}

	now := time.Now()
	if err := o.Redeem(now); err != nil {
		if errors.Is(err, orderdomain.ErrTicketAlreadyUsed) {
			// Resposta distinta para a portaria: ingresso válido, porém já usado
			ctx.JSON(http.StatusConflict, dto.RedeemResponse{
				OrderNumber:  o.OrderNumber,
				CustomerName: o.CustomerName,
				EventID:      o.EventID,
				Tickets:      o.TicketCount(),
				Used:         true,
				UsedAt:       o.UsedAt,
				Message:      "ingresso já utilizado",
			})
			return
		}
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "ingresso não pode ser validado", err.Error()))
		return
	}

	if err := c.orderRepo.MarkUsed(ctx, o.ID, now); err != nil {
		c.logger.Error("erro ao gravar uso do ingresso", "order_id", o.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao validar ingresso", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RedeemResponse{
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		EventID:      o.EventID,
		Tickets:      o.TicketCount(),
		Used:         true,
		UsedAt:       o.UsedAt,
		Message:      "ingresso validado",
	})
}

// Wallet retorna a carteira de ingressos de um cliente
// @Summary Carteira do cliente
// @Description Retorna os pedidos concluídos de um cliente pelo email
// @Tags orders
// @Produce json
// @Param email query string true "Email do cliente"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /orders/wallet [get]
func (c *OrderController) Wallet(ctx *gin.Context) {
	email := orderdomain.NormalizeEmail(ctx.Query("email"))
	if email == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "email não informado", ""))
		return
	}

	orders, err := c.orderRepo.ListByCustomerEmail(ctx, email)
	if err != nil {
		c.logger.Error("erro ao listar carteira do cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar carteira", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(email, orders))
}

// findOrder busca um pedido pelo ID, escrevendo a resposta de erro quando falha
func (c *OrderController) findOrder(ctx *gin.Context, id string) (*orderdomain.Order, error) {
	o, err := c.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido não encontrado", err.Error()))
			return nil, err
		}
		c.logger.Error("erro ao buscar pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar pedido", err.Error()))
		return nil, err
	}
	return o, nil
}
