package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/dto"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/repository"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/hugohenrick/midnight-tickets/pkg/jwt"
	"github.com/hugohenrick/midnight-tickets/pkg/logger"
)

const tokenDuration = 24 * time.Hour

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	promoterRepo promoter.Repository
	logger       logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(promoterRepo promoter.Repository, logger logger.Logger) *AuthController {
	return &AuthController{
		promoterRepo: promoterRepo,
		logger:       logger,
	}
}

// Login autentica um promoter pelo código e senha
// @Summary Autenticar promoter
// @Description Verifica as credenciais do promoter e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.promoterRepo.FindByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, repository.ErrPromoterNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", "código ou senha incorretos"))
			return
		}
		c.logger.Error("erro ao buscar promoter no login", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao autenticar", err.Error()))
		return
	}

	if !p.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", "código ou senha incorretos"))
		return
	}

	token, err := jwt.GenerateToken(p.UserID, p.Code, string(p.Role), tokenDuration)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(tokenDuration.Seconds()),
		Promoter:    dto.ToPromoterResponse(p),
	})
}

// RefreshToken renova um token JWT existente
// @Summary Renovar token
// @Description Renova um token JWT, inclusive recém-expirado
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token a ser renovado"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	newToken, err := jwt.RefreshToken(req.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshTokenResponse{
		AccessToken: newToken,
		ExpiresIn:   int64(tokenDuration.Seconds()),
	})
}

// Me retorna o promoter autenticado
// @Summary Promoter atual
// @Description Retorna os dados do promoter autenticado
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.PromoterResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "não autenticado", ""))
		return
	}

	p, err := c.promoterRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPromoterNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "promoter não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar promoter", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar promoter", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPromoterResponse(p))
}
