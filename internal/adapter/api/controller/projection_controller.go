package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/dto"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/repository"
	eventdomain "github.com/hugohenrick/midnight-tickets/internal/domain/event"
	"github.com/hugohenrick/midnight-tickets/internal/domain/liquidation"
	"github.com/hugohenrick/midnight-tickets/pkg/logger"
)

// ProjectionController gerencia as projeções financeiras de um evento:
// cenários de ocupação e ponto de equilíbrio
type ProjectionController struct {
	eventRepo eventdomain.Repository
	tierRepo  eventdomain.TierRepository
	costRepo  eventdomain.CostRepository
	logger    logger.Logger
}

// NewProjectionController cria uma nova instância de ProjectionController
func NewProjectionController(eventRepo eventdomain.Repository, tierRepo eventdomain.TierRepository, costRepo eventdomain.CostRepository, logger logger.Logger) *ProjectionController {
	return &ProjectionController{
		eventRepo: eventRepo,
		tierRepo:  tierRepo,
		costRepo:  costRepo,
		logger:    logger,
	}
}

// ProjectionResponse agrupa os cenários e o ponto de equilíbrio do evento
type ProjectionResponse struct {
	EventID    string                     `json:"event_id"`
	FixedCosts float64                    `json:"fixed_costs"`
	BreakEven  liquidation.BreakEvenPoint `json:"break_even"`
	Scenarios  []liquidation.Scenario     `json:"scenarios"`
}

// Scenarios retorna as projeções financeiras de um evento
// @Summary Projeções do evento
// @Description Simula cenários de ocupação (10% a 100%) e o ponto de equilíbrio
// @Tags projections
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do evento"
// @Success 200 {object} controller.ProjectionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/projections [get]
func (c *ProjectionController) Scenarios(ctx *gin.Context) {
	eventID := ctx.Param("id")
	if _, err := c.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "evento não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar evento", err.Error()))
		return
	}

	tierPtrs, err := c.tierRepo.ListByEvent(ctx, eventID)
	if err != nil {
		c.logger.Error("erro ao listar lotes para projeção", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lotes", err.Error()))
		return
	}
	tiers := make([]eventdomain.TicketTier, len(tierPtrs))
	for i, t := range tierPtrs {
		tiers[i] = *t
	}

	costs, err := c.costRepo.ListByEvent(ctx, eventID)
	if err != nil {
		c.logger.Error("erro ao listar custos para projeção", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar custos", err.Error()))
		return
	}

	fixedCosts := eventdomain.SumFixedCosts(costs)

	ctx.JSON(http.StatusOK, ProjectionResponse{
		EventID:    eventID,
		FixedCosts: fixedCosts,
		BreakEven:  liquidation.BreakEven(tiers, fixedCosts),
		Scenarios:  liquidation.ProjectScenarios(tiers, fixedCosts),
	})
}
