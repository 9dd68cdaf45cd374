package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/controller"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/hugohenrick/midnight-tickets/pkg/middleware"
)

// RegisterEventRoutes registra as rotas do módulo de eventos. A vitrine
// pública lê eventos e lotes sem autenticação; as mutações e os custos
// são restritos à administração.
func RegisterEventRoutes(r *gin.RouterGroup, eventController *controller.EventController, projectionController *controller.ProjectionController) {
	events := r.Group("/events")
	{
		events.GET("", eventController.List)
		events.GET("/:id", eventController.Get)
		events.GET("/:id/tiers", eventController.ListTiers)
	}

	admin := r.Group("/events")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(promoter.RoleAdmin, promoter.RoleHeadOfSales))
	{
		admin.POST("", eventController.Create)
		admin.PUT("/:id", eventController.Update)
		admin.PATCH("/:id/publish", eventController.Publish)
		admin.PATCH("/:id/status", eventController.UpdateStatus)
		admin.DELETE("/:id", eventController.Delete)

		admin.POST("/:id/tiers", eventController.CreateTier)
		admin.PUT("/:id/tiers/:tierId", eventController.UpdateTier)
		admin.DELETE("/:id/tiers/:tierId", eventController.DeleteTier)

		admin.POST("/:id/costs", eventController.CreateCost)
		admin.GET("/:id/costs", eventController.ListCosts)
		admin.PATCH("/:id/costs/:costId/status", eventController.UpdateCostStatus)
		admin.DELETE("/:id/costs/:costId", eventController.DeleteCost)
	}

	projections := r.Group("/events")
	projections.Use(middleware.AuthMiddleware(), middleware.RequireRoles(promoter.RoleManager, promoter.RoleHeadOfSales, promoter.RoleAdmin))
	{
		projections.GET("/:id/projections", projectionController.Scenarios)
	}
}
