package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/controller"
	"github.com/hugohenrick/midnight-tickets/pkg/middleware"
)

// RegisterAuthRoutes registra as rotas do módulo de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.GET("/me", middleware.AuthMiddleware(), authController.Me)
	}
}
