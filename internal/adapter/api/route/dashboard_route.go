package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/controller"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/hugohenrick/midnight-tickets/pkg/middleware"
)

// RegisterDashboardRoutes registra as rotas do back-office: indicadores,
// liquidação, exportações e ranking de clientes
func RegisterDashboardRoutes(r *gin.RouterGroup, dashboardController *controller.DashboardController) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(), middleware.RequireRoles(promoter.RoleManager, promoter.RoleHeadOfSales, promoter.RoleAdmin))
	{
		dashboard.GET("/kpis", dashboardController.KPIs)
		dashboard.GET("/liquidation", dashboardController.Liquidation)
		dashboard.GET("/liquidation/export", dashboardController.ExportLiquidationCSV)
		dashboard.GET("/sales/export", dashboardController.ExportSalesCSV)
		dashboard.GET("/top-clients", dashboardController.TopClients)
	}
}
