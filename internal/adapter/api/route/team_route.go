package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/controller"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/hugohenrick/midnight-tickets/pkg/middleware"
)

// RegisterTeamRoutes registra as rotas do módulo de squads
func RegisterTeamRoutes(r *gin.RouterGroup, teamController *controller.TeamController) {
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.GET("", teamController.List)
		teams.GET("/:id", teamController.Get)

		admin := middleware.RequireRoles(promoter.RoleAdmin, promoter.RoleHeadOfSales)
		teams.POST("", admin, teamController.Create)
		teams.PUT("/:id", admin, teamController.Update)
		teams.DELETE("/:id", admin, teamController.Delete)
	}
}
