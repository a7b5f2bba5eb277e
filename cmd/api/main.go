package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	coreport "github.com/danielmaina/pension-ledger/internal/domain/port/core"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/balance"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/callback"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/ledger"
	"github.com/danielmaina/pension-ledger/internal/domain/usecase/registration"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/database"
	gatewayClient "github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/gateway"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/logger"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/danielmaina/pension-ledger/internal/infrastructure/adapter/time"
	"github.com/danielmaina/pension-ledger/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() {
		_ = appLogger.Flush()
	}()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database and apply schema
	dbManager := database.NewManager(&cfg.Database, appLogger, tp)
	db, err := dbManager.Connect()
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = dbManager.Close()
	}()

	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repository.NewTransactionRepository(db, appLogger)
	accountRepo := repository.NewAccountRepository(db, appLogger)
	userRepo := repository.NewUserRepository(db, appLogger)

	// Use cases
	ledgerService := ledger.NewService(transactionRepo, tp, appLogger)
	engine := balance.NewEngine(accountRepo, tp, appLogger).
		WithRetryPolicy(cfg.Balance.MaxRetryAttempts, coreport.Duration(cfg.Balance.RetryBaseDelayMs)*coreport.Millisecond)
	resolver := registration.NewResolver(userRepo, tp, appLogger)
	processor := callback.NewProcessor(ledgerService, engine, resolver, appLogger, cfg.Gateway.SharedSecret)

	checkoutGateway := gatewayClient.NewCheckoutClient(&cfg.Gateway, appLogger)

	// Background reconciliation sweep for transactions stuck pending
	reconcilerCtx, stopReconciler := context.WithCancel(context.Background())
	defer stopReconciler()
	if cfg.Reconciler.Enabled {
		reconciler := callback.NewReconciler(
			transactionRepo, processor, tp, appLogger,
			cfg.Reconciler.Interval, cfg.Reconciler.StaleAfter,
		)
		go reconciler.Run(reconcilerCtx)
	}

	// Handlers
	registrationHandler := handler.NewRegistrationHandler(ledgerService, checkoutGateway, appLogger)
	accountHandler := handler.NewAccountHandler(engine, ledgerService, appLogger)
	intentHandler := handler.NewIntentHandler(ledgerService, engine, checkoutGateway, appLogger)
	callbackHandler := handler.NewCallbackHandler(processor, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, registrationHandler, accountHandler, intentHandler, callbackHandler, healthHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	stopReconciler()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or PL_DB_HOST environment variable)")
	}
	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or PL_DB_PORT environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or PL_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or PL_DB_NAME environment variable)")
	}

	if cfg.Gateway.BaseURL == "" {
		missingConfigs = append(missingConfigs, "gateway.baseUrl (or PL_GATEWAY_BASE_URL environment variable)")
	}
	if cfg.Gateway.CallbackURL == "" {
		missingConfigs = append(missingConfigs, "gateway.callbackUrl (or PL_GATEWAY_CALLBACK_URL environment variable)")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missingConfigs, ", "))
	}

	return nil
}
