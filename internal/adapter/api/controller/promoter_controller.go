package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/dto"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/repository"
	promoterdomain "github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/hugohenrick/midnight-tickets/pkg/logger"
)

// PromoterController gerencia as requisições relacionadas a promoters
type PromoterController struct {
	promoterRepo promoterdomain.Repository
	logger       logger.Logger
}

// NewPromoterController cria uma nova instância de PromoterController
func NewPromoterController(promoterRepo promoterdomain.Repository, logger logger.Logger) *PromoterController {
	return &PromoterController{
		promoterRepo: promoterRepo,
		logger:       logger,
	}
}

// Create cria um novo promoter
// @Summary Criar promoter
// @Description Cria um novo promoter no sistema
// @Tags promoters
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param promoter body dto.PromoterRequest true "Dados do promoter"
// @Success 201 {object} dto.PromoterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /promoters [post]
func (c *PromoterController) Create(ctx *gin.Context) {
	var req dto.PromoterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := promoterdomain.NewPromoter(req.Name, req.Email, req.Code, req.Role)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar promoter", err.Error()))
		return
	}
	p.ManagerID = req.ManagerID
	if err := p.SetPassword(req.Password); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao configurar senha", err.Error()))
		return
	}

	if err := c.promoterRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrPromoterDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "promoter já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar promoter no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar promoter", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPromoterResponse(p))
}

// Get retorna um promoter pelo ID
// @Summary Buscar promoter
// @Description Retorna os dados de um promoter pelo ID
// @Tags promoters
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do promoter"
// @Success 200 {object} dto.PromoterResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /promoters/{id} [get]
func (c *PromoterController) Get(ctx *gin.Context) {
	p, err := c.promoterRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPromoterNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "promoter não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar promoter", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar promoter", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPromoterResponse(p))
}

// List retorna a lista de promoters
// @Summary Listar promoters
// @Description Retorna a lista de promoters paginada
// @Tags promoters
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.PromoterListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /promoters [get]
func (c *PromoterController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)
	offset := (pagination.Page - 1) * pagination.PageSize

	promoters, err := c.promoterRepo.List(ctx, pagination.PageSize, offset)
	if err != nil {
		c.logger.Error("erro ao listar promoters", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar promoters", err.Error()))
		return
	}

	total, err := c.promoterRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar promoters", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar promoters", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPromoterListResponse(promoters, total, pagination.Page, pagination.PageSize))
}

// Update atualiza um promoter
// @Summary Atualizar promoter
// @Description Atualiza os dados de um promoter
// @Tags promoters
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do promoter"
// @Param promoter body dto.PromoterUpdateRequest true "Dados do promoter"
// @Success 200 {object} dto.PromoterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /promoters/{id} [put]
func (c *PromoterController) Update(ctx *gin.Context) {
	var req dto.PromoterUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}
	if !req.Role.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "papel inválido", string(req.Role)))
		return
	}

	p, err := c.promoterRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPromoterNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "promoter não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar promoter", err.Error()))
		return
	}

	p.Name = req.Name
	p.Email = req.Email
	p.Role = req.Role
	p.ManagerID = req.ManagerID
	p.UpdatedAt = time.Now()

	if err := c.promoterRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrPromoterDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "promoter já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar promoter", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar promoter", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPromoterResponse(p))
}

// AssignTeam atribui ou remove o squad de um promoter
// @Summary Atribuir squad
// @Description Atribui o promoter a um squad; team_id vazio desatribui
// @Tags promoters
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do promoter"
// @Param assignment body dto.AssignTeamRequest true "Squad de destino"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /promoters/{id}/team [patch]
func (c *PromoterController) AssignTeam(ctx *gin.Context) {
	var req dto.AssignTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.promoterRepo.AssignTeam(ctx, ctx.Param("id"), req.TeamID); err != nil {
		if errors.Is(err, repository.ErrPromoterNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "promoter não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atribuir squad", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atribuir squad", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("squad atribuído", nil))
}

// Delete remove um promoter
// @Summary Remover promoter
// @Description Remove um promoter do sistema. Os pedidos antigos mantêm a
// referência e passam a contar como venda orgânica na liquidação.
// @Tags promoters
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do promoter"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /promoters/{id} [delete]
func (c *PromoterController) Delete(ctx *gin.Context) {
	if err := c.promoterRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrPromoterNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "promoter não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao remover promoter", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover promoter", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("promoter removido", nil))
}
