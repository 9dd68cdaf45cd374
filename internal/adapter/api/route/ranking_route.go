package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/controller"
	"github.com/hugohenrick/midnight-tickets/pkg/middleware"
)

// RegisterRankingRoutes registra as rotas de ranking de promoters.
// Qualquer promoter autenticado vê o ranking, inclusive a própria posição.
func RegisterRankingRoutes(r *gin.RouterGroup, rankingController *controller.RankingController) {
	rankings := r.Group("/rankings")
	rankings.Use(middleware.AuthMiddleware())
	{
		rankings.GET("/promoters", rankingController.Promoters)
	}
}
