package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/controller"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/hugohenrick/midnight-tickets/pkg/middleware"
)

// RegisterPromoterRoutes registra as rotas do módulo de promoters
func RegisterPromoterRoutes(r *gin.RouterGroup, promoterController *controller.PromoterController) {
	promoters := r.Group("/promoters")
	promoters.Use(middleware.AuthMiddleware())
	{
		promoters.GET("", promoterController.List)
		promoters.GET("/:id", promoterController.Get)

		admin := middleware.RequireRoles(promoter.RoleAdmin, promoter.RoleHeadOfSales)
		promoters.POST("", admin, promoterController.Create)
		promoters.PUT("/:id", admin, promoterController.Update)
		promoters.PATCH("/:id/team", admin, promoterController.AssignTeam)
		promoters.DELETE("/:id", admin, promoterController.Delete)
	}
}
