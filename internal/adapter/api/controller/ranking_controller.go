package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/dto"
	"github.com/hugohenrick/midnight-tickets/internal/domain/liquidation"
	orderdomain "github.com/hugohenrick/midnight-tickets/internal/domain/order"
	promoterdomain "github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/hugohenrick/midnight-tickets/pkg/logger"
)

// RankingController gerencia o ranking de promoters por volume de vendas
type RankingController struct {
	orderRepo    orderdomain.Repository
	promoterRepo promoterdomain.Repository
	logger       logger.Logger
}

// NewRankingController cria uma nova instância de RankingController
func NewRankingController(orderRepo orderdomain.Repository, promoterRepo promoterdomain.Repository, logger logger.Logger) *RankingController {
	return &RankingController{
		orderRepo:    orderRepo,
		promoterRepo: promoterRepo,
		logger:       logger,
	}
}

// Promoters retorna o ranking de promoters por ingressos vendidos
// @Summary Ranking de promoters
// @Description Ordena os promoters por ingressos vendidos na janela opcional de evento e datas
// @Tags rankings
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param event_id query string false "Filtrar por evento"
// @Param date_start query string false "Data inicial (YYYY-MM-DD)"
// @Param date_end query string false "Data final inclusiva (YYYY-MM-DD)"
// @Success 200 {array} liquidation.RankedPromoter
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /rankings/promoters [get]
func (c *RankingController) Promoters(ctx *gin.Context) {
	filters := liquidation.RankingFilters{EventID: ctx.Query("event_id")}
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
		filters.DateEnd = &d
	}

	orders, err := c.orderRepo.List(ctx, orderdomain.Filters{
		EventID: filters.EventID,
		Status:  orderdomain.StatusCompleted,
	}, 0, 0)
	if err != nil {
		c.logger.Error("erro ao listar pedidos para ranking", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar pedidos", err.Error()))
		return
	}

	promoters, err := c.promoterRepo.ListAll(ctx)
	if err != nil {
		c.logger.Error("erro ao listar promoters para ranking", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar promoters", err.Error()))
		return
	}

	ranking := liquidation.RankPromoters(orders, promoters, filters)
	if ranking == nil {
		ranking = []liquidation.RankedPromoter{}
	}
	ctx.JSON(http.StatusOK, ranking)
}
