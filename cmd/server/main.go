package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	billapp "github.com/payflow/backend/internal/application/bill"
	userapp "github.com/payflow/backend/internal/application/user"
	"github.com/payflow/backend/internal/infrastructure/auth"
	"github.com/payflow/backend/internal/infrastructure/config"
	"github.com/payflow/backend/internal/infrastructure/csvimport"
	"github.com/payflow/backend/internal/infrastructure/logger"
	"github.com/payflow/backend/internal/infrastructure/persistence"
	"github.com/payflow/backend/internal/interfaces/http/handler"
	"github.com/payflow/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync(log)

	log.Info("Starting PayFlow backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	billRepo := persistence.NewGormBillRepository(db.DB, log)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.JWT)
	passwordHasher := auth.NewBcryptHasher()
	billImporter := csvimport.NewBillImporter(log)

	// Use cases
	createUC := billapp.NewCreateBillUseCase(billRepo)
	updateUC := billapp.NewUpdateBillUseCase(billRepo)
	payUC := billapp.NewPayBillUseCase(billRepo)
	findUC := billapp.NewFindBillUseCase(billRepo)
	listUC := billapp.NewListBillsUseCase(billRepo)
	totalPaidUC := billapp.NewCalculateTotalPaidUseCase(billRepo)
	changeStatusUC := billapp.NewChangeBillStatusUseCase(billRepo)
	importUC := billapp.NewImportBillsUseCase(billRepo, billImporter, log)
	authService := userapp.NewAuthService(userRepo, passwordHasher, jwtService)

	// Handlers
	billHandler := handler.NewBillHandler(
		createUC, updateUC, payUC, findUC,
		listUC, totalPaidUC, changeStatusUC, importUC,
	)
	authHandler := handler.NewAuthHandler(authService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(router.Config{
		Logger:      log,
		JWTService:  jwtService,
		Import:      cfg.Import,
		BillHandler: billHandler,
		AuthHandler: authHandler,
		System:      systemHandler,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
