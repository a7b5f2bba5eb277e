package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	registrationHandler *handler.RegistrationHandler,
	accountHandler *handler.AccountHandler,
	intentHandler *handler.IntentHandler,
	callbackHandler *handler.CallbackHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	router.POST("/register", registrationHandler.Register)

	accountRoutes := router.Group("/accounts")
	{
		accountRoutes.POST("", accountHandler.OpenAccount)
		accountRoutes.GET("/:accountId/balance", accountHandler.GetBalance)
		accountRoutes.GET("/:accountId/transactions", accountHandler.ListTransactions)
		accountRoutes.POST("/:accountId/contributions", intentHandler.CreateContribution)
		accountRoutes.POST("/:accountId/withdrawals", intentHandler.CreateWithdrawal)
	}

	router.POST("/gateway/callback", callbackHandler.HandleCallback)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
