package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/dto"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/repository"
	eventdomain "github.com/hugohenrick/midnight-tickets/internal/domain/event"
	"github.com/hugohenrick/midnight-tickets/pkg/logger"
)

// EventController gerencia as requisições relacionadas a eventos,
// lotes de ingressos e custos fixos
type EventController struct {
	eventRepo eventdomain.Repository
	tierRepo  eventdomain.TierRepository
	costRepo  eventdomain.CostRepository
	logger    logger.Logger
}

// NewEventController cria uma nova instância de EventController
func NewEventController(eventRepo eventdomain.Repository, tierRepo eventdomain.TierRepository, costRepo eventdomain.CostRepository, logger logger.Logger) *EventController {
	return &EventController{
		eventRepo: eventRepo,
		tierRepo:  tierRepo,
		costRepo:  costRepo,
		logger:    logger,
	}
}

// Create cria um novo evento
// @Summary Criar evento
// @Description Cria um novo evento em rascunho
// @Tags events
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param event body dto.EventRequest true "Dados do evento"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [post]
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	e, err := eventdomain.NewEvent(req.Name, req.Description, req.Venue, req.City, req.StartsAt)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar evento", err.Error()))
		return
	}

	if err := c.eventRepo.Create(ctx, e); err != nil {
		c.logger.Error("erro ao criar evento no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar evento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEventResponse(e))
}

// Get retorna um evento pelo ID
// @Summary Buscar evento
// @Description Retorna os dados de um evento pelo ID
// @Tags events
// @Produce json
// @Param id path string true "ID do evento"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id} [get]
func (c *EventController) Get(ctx *gin.Context) {
	e, err := c.eventRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "evento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar evento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar evento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEventResponse(e))
}

// List retorna a lista de eventos
// @Summary Listar eventos
// @Description Retorna a lista de eventos paginada, com filtro opcional de status
// @Tags events
// @Produce json
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param status query string false "Filtrar por status"
// @Success 200 {object} dto.EventListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [get]
func (c *EventController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)
	offset := (pagination.Page - 1) * pagination.PageSize

	var events []*eventdomain.Event
	var err error
	if status := ctx.Query("status"); status != "" {
		events, err = c.eventRepo.ListByStatus(ctx, eventdomain.Status(status), pagination.PageSize, offset)
	} else {
		events, err = c.eventRepo.List(ctx, pagination.PageSize, offset)
	}
	if err != nil {
		c.logger.Error("erro ao listar eventos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar eventos", err.Error()))
		return
	}

	total, err := c.eventRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar eventos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar eventos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEventListResponse(events, total, pagination.Page, pagination.PageSize))
}

// Update atualiza um evento
// @Summary Atualizar evento
// @Description Atualiza os dados de um evento
// @Tags events
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Param event body dto.EventRequest true "Dados do evento"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	e, err := c.eventRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "evento não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar evento", err.Error()))
		return
	}

	e.Name = req.Name
	e.Description = req.Description
	e.Venue = req.Venue
	e.City = req.City
	e.StartsAt = req.StartsAt
	e.UpdatedAt = time.Now()

	if err := c.eventRepo.Update(ctx, e); err != nil {
		c.logger.Error("erro ao atualizar evento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar evento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEventResponse(e))
}

// Publish publica um evento, abrindo as vendas
// @Summary Publicar evento
// @Description Muda o status do evento para publicado
// @Tags events
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/publish [patch]
func (c *EventController) Publish(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.eventRepo.UpdateStatus(ctx, id, eventdomain.StatusPublished); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "evento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao publicar evento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao publicar evento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("evento publicado", nil))
}

// UpdateStatus muda o status de um evento
// @Summary Mudar status do evento
// @Description Muda o status do evento (draft, published, finished, cancelled)
// @Tags events
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Param status query string true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/status [patch]
func (c *EventController) UpdateStatus(ctx *gin.Context) {
	status := eventdomain.Status(ctx.Query("status"))
	switch status {
	case eventdomain.StatusDraft, eventdomain.StatusPublished, eventdomain.StatusFinished, eventdomain.StatusCancelled:
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", string(status)))
		return
	}

	if err := c.eventRepo.UpdateStatus(ctx, ctx.Param("id"), status); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "evento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao mudar status do evento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao mudar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("status atualizado", nil))
}

// Delete remove um evento
// @Summary Remover evento
// @Description Remove um evento
// @Tags events
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	if err := c.eventRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "evento não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao remover evento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover evento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("evento removido", nil))
}

// CreateTier cria um lote de ingressos para o evento
// @Summary Criar lote
// @Description Cria um novo lote de ingressos para o evento
// @Tags events
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Param tier body dto.TierRequest true "Dados do lote"
// @Success 201 {object} dto.TierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/tiers [post]
func (c *EventController) CreateTier(ctx *gin.Context) {
	var req dto.TierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	eventID := ctx.Param("id")
	if _, err := c.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "evento não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar evento", err.Error()))
		return
	}

	t, err := eventdomain.NewTicketTier(eventID, req.Name, req.Stage, req.Price, req.Quantity, req.CommissionFixed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar lote", err.Error()))
		return
	}

	if err := c.tierRepo.Create(ctx, t); err != nil {
		c.logger.Error("erro ao criar lote no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar lote", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTierResponse(t))
}

// ListTiers lista os lotes de ingressos de um evento
// @Summary Listar lotes
// @Description Retorna os lotes de ingressos do evento
// @Tags events
// @Produce json
// @Param id path string true "ID do evento"
// @Success 200 {array} dto.TierResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/tiers [get]
func (c *EventController) ListTiers(ctx *gin.Context) {
	tiers, err := c.tierRepo.ListByEvent(ctx, ctx.Param("id"))
	if err != nil {
		c.logger.Error("erro ao listar lotes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lotes", err.Error()))
		return
	}

	responses := make([]dto.TierResponse, len(tiers))
	for i, t := range tiers {
		responses[i] = *dto.ToTierResponse(t)
	}
	ctx.JSON(http.StatusOK, responses)
}

// UpdateTier atualiza um lote de ingressos
// @Summary Atualizar lote
// @Description Atualiza os dados de um lote de ingressos
// @Tags events
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Param tierId path string true "ID do lote"
// @Param tier body dto.TierRequest true "Dados do lote"
// @Success 200 {object} dto.TierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/tiers/{tierId} [put]
func (c *EventController) UpdateTier(ctx *gin.Context) {
	var req dto.TierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}
	if !req.Stage.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "etapa inválida", string(req.Stage)))
		return
	}

	t, err := c.tierRepo.FindByID(ctx, ctx.Param("tierId"))
	if err != nil {
		if errors.Is(err, repository.ErrTierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lote não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lote", err.Error()))
		return
	}

	t.Name = req.Name
	t.Stage = req.Stage
	t.Price = req.Price
	t.Quantity = req.Quantity
	t.CommissionFixed = req.CommissionFixed
	t.UpdatedAt = time.Now()

	if err := c.tierRepo.Update(ctx, t); err != nil {
		c.logger.Error("erro ao atualizar lote", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar lote", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTierResponse(t))
}

// DeleteTier remove um lote de ingressos
// @Summary Remover lote
// @Description Remove um lote de ingressos
// @Tags events
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Param tierId path string true "ID do lote"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/tiers/{tierId} [delete]
func (c *EventController) DeleteTier(ctx *gin.Context) {
	if err := c.tierRepo.Delete(ctx, ctx.Param("tierId")); err != nil {
		if errors.Is(err, repository.ErrTierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lote não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao remover lote", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover lote", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("lote removido", nil))
}

// CreateCost cria um custo fixo para o evento
// @Summary Criar custo fixo
// @Description Registra um custo fixo do evento
// @Tags events
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Param cost body dto.CostRequest true "Dados do custo"
// @Success 201 {object} dto.CostResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/costs [post]
func (c *EventController) CreateCost(ctx *gin.Context) {
	var req dto.CostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cost, err := eventdomain.NewEventCost(ctx.Param("id"), req.Concept, req.Category, req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar custo", err.Error()))
		return
	}

	if err := c.costRepo.Create(ctx, cost); err != nil {
		c.logger.Error("erro ao criar custo no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar custo", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCostResponse(cost))
}

// ListCosts lista os custos fixos de um evento
// @Summary Listar custos
// @Description Retorna os custos fixos do evento
// @Tags events
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Success 200 {array} dto.CostResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/costs [get]
func (c *EventController) ListCosts(ctx *gin.Context) {
	costs, err := c.costRepo.ListByEvent(ctx, ctx.Param("id"))
	if err != nil {
		c.logger.Error("erro ao listar custos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar custos", err.Error()))
		return
	}

	responses := make([]dto.CostResponse, len(costs))
	for i := range costs {
		responses[i] = *dto.ToCostResponse(&costs[i])
	}
	ctx.JSON(http.StatusOK, responses)
}

// UpdateCostStatus muda o status de um custo fixo
// @Summary Mudar status do custo
// @Description Muda o status de um custo (pending, paid, cancelled)
// @Tags events
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Param costId path string true "ID do custo"
// @Param status body dto.CostStatusRequest true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/costs/{costId}/status [patch]
func (c *EventController) UpdateCostStatus(ctx *gin.Context) {
	var req dto.CostStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}
	switch req.Status {
	case eventdomain.CostStatusPending, eventdomain.CostStatusPaid, eventdomain.CostStatusCancelled:
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", string(req.Status)))
		return
	}

	if err := c.costRepo.UpdateStatus(ctx, ctx.Param("costId"), req.Status); err != nil {
		if errors.Is(err, repository.ErrCostNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "custo não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao mudar status do custo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao mudar status do custo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("status do custo atualizado", nil))
}

// DeleteCost remove um custo fixo
// @Summary Remover custo
// @Description Remove um custo fixo do evento
// @Tags events
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Param costId path string true "ID do custo"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/costs/{costId} [delete]
func (c *EventController) DeleteCost(ctx *gin.Context) {
	if err := c.costRepo.Delete(ctx, ctx.Param("costId")); err != nil {
		if errors.Is(err, repository.ErrCostNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "custo não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao remover custo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover custo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("custo removido", nil))
}
