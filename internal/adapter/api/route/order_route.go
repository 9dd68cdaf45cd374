package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/controller"
	"github.com/hugohenrick/midnight-tickets/internal/domain/promoter"
	"github.com/hugohenrick/midnight-tickets/pkg/middleware"
)

// RegisterOrderRoutes registra as rotas do módulo de pedidos. O checkout,
// o retorno do gateway e a carteira do cliente são públicos; a listagem é
// do back-office, a venda manual é do promoter e o scan é da portaria.
func RegisterOrderRoutes(r *gin.RouterGroup, orderController *controller.OrderController) {
	orders := r.Group("/orders")
	{
		orders.POST("/checkout", orderController.Checkout)
		orders.POST("/:id/confirm", orderController.Confirm)
		orders.POST("/:id/fail", orderController.Fail)
		orders.GET("/number/:number", orderController.GetByNumber)
		orders.GET("/wallet", orderController.Wallet)
	}

	staff := r.Group("/orders")
	staff.Use(middleware.AuthMiddleware())
	{
		staff.POST("/manual", middleware.RequireRoles(promoter.RolePromoter, promoter.RoleManager, promoter.RoleHeadOfSales, promoter.RoleAdmin), orderController.ManualSale)
		staff.GET("", middleware.RequireRoles(promoter.RoleManager, promoter.RoleHeadOfSales, promoter.RoleAdmin), orderController.List)
		staff.GET("/:id", orderController.Get)
		staff.POST("/redeem/:number", middleware.RequireRoles(promoter.RoleBouncer, promoter.RoleAdmin), orderController.Redeem)
	}
}
