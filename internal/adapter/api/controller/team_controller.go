package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/dto"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/repository"
	promoterdomain "github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/hugohenrick/midnight-tickets/pkg/logger"
)

// TeamController gerencia as requisições relacionadas a squads de venda
type TeamController struct {
	teamRepo     promoterdomain.TeamRepository
	promoterRepo promoterdomain.Repository
	logger       logger.Logger
}

// NewTeamController cria uma nova instância de TeamController
func NewTeamController(teamRepo promoterdomain.TeamRepository, promoterRepo promoterdomain.Repository, logger logger.Logger) *TeamController {
	return &TeamController{
		teamRepo:     teamRepo,
		promoterRepo: promoterRepo,
		logger:       logger,
	}
}

// Create cria um novo squad
// @Summary Criar squad
// @Description Cria um novo squad de vendas
// @Tags teams
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param team body dto.TeamRequest true "Dados do squad"
// @Success 201 {object} dto.TeamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /teams [post]
func (c *TeamController) Create(ctx *gin.Context) {
	var req dto.TeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	t, err := promoterdomain.NewSalesTeam(req.Name, req.ManagerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar squad", err.Error()))
		return
	}

	if err := c.teamRepo.Create(ctx, t); err != nil {
		c.logger.Error("erro ao criar squad no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar squad", err.Error()))
		return
	}

	// Manager também é membro do squad
	if t.ManagerID != "" {
		if err := c.promoterRepo.AssignTeam(ctx, t.ManagerID, t.ID); err != nil {
			c.logger.Warn("erro ao atribuir manager ao squad recém-criado", "manager_id", t.ManagerID, "error", err)
		}
	}

	ctx.JSON(http.StatusCreated, dto.ToTeamResponse(t, nil))
}

// Get retorna um squad pelo ID, com os membros
// @Summary Buscar squad
// @Description Retorna os dados de um squad e seus membros
// @Tags teams
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do squad"
// @Success 200 {object} dto.TeamResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /teams/{id} [get]
func (c *TeamController) Get(ctx *gin.Context) {
	t, err := c.teamRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "squad não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar squad", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar squad", err.Error()))
		return
	}

	members, err := c.promoterRepo.ListByTeam(ctx, t.ID)
	if err != nil {
		c.logger.Error("erro ao listar membros do squad", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar membros", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeamResponse(t, members))
}

// List retorna a lista de squads
// @Summary Listar squads
// @Description Retorna todos os squads de venda
// @Tags teams
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.TeamListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /teams [get]
func (c *TeamController) List(ctx *gin.Context) {
	teams, err := c.teamRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar squads", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar squads", err.Error()))
		return
	}

	resp := dto.TeamListResponse{Items: []dto.TeamResponse{}, Total: len(teams)}
	for i := range teams {
		resp.Items = append(resp.Items, *dto.ToTeamResponse(&teams[i], nil))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Update atualiza um squad
// @Summary Atualizar squad
// @Description Atualiza o nome e o manager de um squad
// @Tags teams
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do squad"
// @Param team body dto.TeamRequest true "Dados do squad"
// @Success 200 {object} dto.TeamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /teams/{id} [put]
func (c *TeamController) Update(ctx *gin.Context) {
	var req dto.TeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	t, err := c.teamRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "squad não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar squad", err.Error()))
		return
	}

	t.Name = req.Name
	t.ManagerID = req.ManagerID
	t.UpdatedAt = time.Now()

	if err := c.teamRepo.Update(ctx, t); err != nil {
		c.logger.Error("erro ao atualizar squad", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar squad", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTeamResponse(t, nil))
}

// Delete remove um squad, desatribuindo os membros
// @Summary Remover squad
// @Description Remove um squad. Os membros são desatribuídos, nunca removidos.
// @Tags teams
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do squad"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /teams/{id} [delete]
func (c *TeamController) Delete(ctx *gin.Context) {
	if err := c.teamRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "squad não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao remover squad", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover squad", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("squad removido", nil))
}
