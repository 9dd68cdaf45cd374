package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/controller"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/api/route"
	"github.com/hugohenrick/midnight-tickets/internal/adapter/repository"
	"github.com/hugohenrick/midnight-tickets/internal/infrastructure/database"
	"github.com/hugohenrick/midnight-tickets/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo, conectando o banco e
// montando repositórios, controllers e rotas
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
	}

	// Repositórios
	eventRepo := repository.NewEventRepository(db)
	tierRepo := repository.NewTierRepository(db)
	costRepo := repository.NewCostRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	promoterRepo := repository.NewPromoterRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	// Controllers
	authController := controller.NewAuthController(promoterRepo, log)
	eventController := controller.NewEventController(eventRepo, tierRepo, costRepo, log)
	orderController := controller.NewOrderController(orderRepo, eventRepo, tierRepo, promoterRepo, log)
	promoterController := controller.NewPromoterController(promoterRepo, log)
	teamController := controller.NewTeamController(teamRepo, promoterRepo, log)
	dashboardController := controller.NewDashboardController(orderRepo, promoterRepo, teamRepo, tierRepo, log)
	projectionController := controller.NewProjectionController(eventRepo, tierRepo, costRepo, log)
	rankingController := controller.NewRankingController(orderRepo, promoterRepo, log)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	route.RegisterAuthRoutes(api, authController)
	route.RegisterEventRoutes(api, eventController, projectionController)
	route.RegisterOrderRoutes(api, orderController)
	route.RegisterPromoterRoutes(api, promoterController)
	route.RegisterTeamRoutes(api, teamController)
	route.RegisterDashboardRoutes(api, dashboardController)
	route.RegisterRankingRoutes(api, rankingController)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("iniciando servidor", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
