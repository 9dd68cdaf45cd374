package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/dto"
	eventdomain "github.com/hugohenrick/midnight-tickets/internal/domain/event"
	"github.com/hugohenrick/midnight-tickets/internal/domain/liquidation"
	orderdomain "github.com/hugohenrick/midnight-tickets/internal/domain/order"
	promoterdomain "github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/hugohenrick/midnight-tickets/pkg/export"
	"github.com/hugohenrick/midnight-tickets/pkg/logger"
)

// DashboardController gerencia as requisições do back-office: indicadores,
// relatório de liquidação, exportações CSV e ranking de clientes. Todos os
// cálculos delegam ao motor de liquidação sobre snapshots do banco.
type DashboardController struct {
	orderRepo    orderdomain.Repository
	promoterRepo promoterdomain.Repository
	teamRepo     promoterdomain.TeamRepository
	tierRepo     eventdomain.TierRepository
	logger       logger.Logger
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(orderRepo orderdomain.Repository, promoterRepo promoterdomain.Repository, teamRepo promoterdomain.TeamRepository, tierRepo eventdomain.TierRepository, logger logger.Logger) *DashboardController {
	return &DashboardController{
		orderRepo:    orderRepo,
		promoterRepo: promoterRepo,
		teamRepo:     teamRepo,
		tierRepo:     tierRepo,
		logger:       logger,
	}
}

// snapshot carrega os insumos do motor de liquidação de forma consistente
// para um evento: pedidos concluídos, promoters e squads
func (c *DashboardController) snapshot(ctx *gin.Context, eventID string) ([]orderdomain.Order, []promoterdomain.Promoter, []promoterdomain.SalesTeam, error) {
	orders, err := c.orderRepo.ListCompletedByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	promoters, err := c.promoterRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao listar promoters: %w", err)
	}
	teams, err := c.teamRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao listar squads: %w", err)
	}
	return orders, promoters, teams, nil
}

// KPIs retorna os indicadores do dashboard de um evento
// @Summary Indicadores do evento
// @Description Retorna receita, ingressos, comissões e liquidação do evento
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param event_id query string true "ID do evento"
// @Success 200 {object} liquidation.KPIs
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/kpis [get]
func (c *DashboardController) KPIs(ctx *gin.Context) {
	eventID := ctx.Query("event_id")
	if eventID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, liquidation.ErrNoEventSelected.Error(), ""))
		return
	}

	orders, promoters, teams, err := c.snapshot(ctx, eventID)
	if err != nil {
		c.logger.Error("erro ao montar snapshot dos indicadores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular indicadores", err.Error()))
		return
	}

	kpis, err := liquidation.ComputeKPIs(orders, promoters, teams, eventID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		return
	}

	ctx.JSON(http.StatusOK, kpis)
}

// Liquidation retorna o relatório de liquidação de um evento
// @Summary Relatório de liquidação
// @Description Retorna o relatório de liquidação por squad, independentes e vendas orgânicas
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param event_id query string true "ID do evento"
// @Success 200 {object} liquidation.Report
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/liquidation [get]
func (c *DashboardController) Liquidation(ctx *gin.Context) {
	report, ok := c.buildReport(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// ExportLiquidationCSV exporta o relatório de liquidação em CSV
// @Summary Exportar liquidação (CSV)
// @Description Exporta o relatório de liquidação do evento em CSV
// @Tags dashboard
// @Produce text/csv
// @Param Authorization header string true "Bearer token"
// @Param event_id query string true "ID do evento"
// @Success 200 {string} string "arquivo CSV"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/liquidation/export [get]
func (c *DashboardController) ExportLiquidationCSV(ctx *gin.Context) {
	report, ok := c.buildReport(ctx)
	if !ok {
		return
	}

	filename := fmt.Sprintf("liquidacion_%s_%s.csv", report.EventID, time.Now().Format("20060102"))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteLiquidationCSV(ctx.Writer, report); err != nil {
		c.logger.Error("erro ao exportar liquidação", "error", err)
	}
}

// ExportSalesCSV exporta o detalhe de vendas de um evento em CSV
// @Summary Exportar vendas (CSV)
// @Description Exporta o detalhe de vendas concluídas do evento em CSV, uma linha por item
// @Tags dashboard
// @Produce text/csv
// @Param Authorization header string true "Bearer token"
// @Param event_id query string true "ID do evento"
// @Success 200 {string} string "arquivo CSV"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/sales/export [get]
func (c *DashboardController) ExportSalesCSV(ctx *gin.Context) {
	eventID := ctx.Query("event_id")
	if eventID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, liquidation.ErrNoEventSelected.Error(), ""))
		return
	}

	orders, err := c.orderRepo.ListCompletedByEvent(ctx, eventID)
	if err != nil {
		c.logger.Error("erro ao listar pedidos para exportação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar pedidos", err.Error()))
		return
	}
	promoters, err := c.promoterRepo.ListAll(ctx)
	if err != nil {
		c.logger.Error("erro ao listar promoters para exportação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar promoters", err.Error()))
		return
	}
	tierPtrs, err := c.tierRepo.ListByEvent(ctx, eventID)
	if err != nil {
		c.logger.Error("erro ao listar lotes para exportação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lotes", err.Error()))
		return
	}
	tiers := make([]eventdomain.TicketTier, len(tierPtrs))
	for i, t := range tierPtrs {
		tiers[i] = *t
	}

	filename := fmt.Sprintf("ventas_%s_%s.csv", eventID, time.Now().Format("20060102"))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteSalesDetailCSV(ctx.Writer, orders, promoters, tiers); err != nil {
		c.logger.Error("erro ao exportar vendas", "error", err)
	}
}

// TopClients retorna os maiores compradores
// @Summary Ranking de clientes
// @Description Retorna os clientes com maior receita, agregados por email
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param event_id query string false "Filtrar por evento"
// @Param limit query int false "Número máximo de clientes (padrão 10)"
// @Success 200 {array} liquidation.TopClient
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/top-clients [get]
func (c *DashboardController) TopClients(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	filters := orderdomain.Filters{
		EventID: ctx.Query("event_id"),
		Status:  orderdomain.StatusCompleted,
	}
	orders, err := c.orderRepo.List(ctx, filters, 0, 0)
	if err != nil {
		c.logger.Error("erro ao listar pedidos para ranking de clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar pedidos", err.Error()))
		return
	}

	clients := liquidation.TopClients(orders, ctx.Query("event_id"), limit)
	if clients == nil {
		clients = []liquidation.TopClient{}
	}
	ctx.JSON(http.StatusOK, clients)
}

// buildReport monta o relatório de liquidação do evento da query string,
// escrevendo a resposta de erro quando falha
func (c *DashboardController) buildReport(ctx *gin.Context) (*liquidation.Report, bool) {
	eventID := ctx.Query("event_id")
	if eventID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, liquidation.ErrNoEventSelected.Error(), ""))
		return nil, false
	}

	orders, promoters, teams, err := c.snapshot(ctx, eventID)
	if err != nil {
		c.logger.Error("erro ao montar snapshot da liquidação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório", err.Error()))
		return nil, false
	}

	report, err := liquidation.BuildLiquidationReport(orders, teams, promoters, eventID)
	if err != nil {
		if errors.Is(err, liquidation.ErrNoEventSelected) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
			return nil, false
		}
		c.logger.Error("erro ao montar relatório de liquidação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório", err.Error()))
		return nil, false
	}
	return report, true
}
