package router

import (
	"github.com/gin-gonic/gin"
	"github.com/payflow/backend/internal/infrastructure/auth"
	"github.com/payflow/backend/internal/infrastructure/config"
	"github.com/payflow/backend/internal/interfaces/http/handler"
	"github.com/payflow/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Config bundles the dependencies the router needs to wire all routes.
type Config struct {
	Logger      *zap.Logger
	JWTService  *auth.JWTService
	Import      config.ImportConfig
	BillHandler *handler.BillHandler
	AuthHandler *handler.AuthHandler
	System      *handler.SystemHandler
}

// New builds the gin engine with all middleware and routes registered.
// Everything under /api/v1/bills requires a valid access token; the auth
// and health endpoints are public.
func New(cfg Config) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
		middleware.CORS(middleware.DefaultCORSConfig()),
	)

	engine.GET("/health", cfg.System.Health)

	api := engine.Group("/api/v1")
	{
		api.GET("/system/info", cfg.System.Info)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
		}

		bills := api.Group("/bills")
		bills.Use(middleware.JWTAuth(cfg.JWTService))
		{
			bills.POST("", cfg.BillHandler.Create)
			bills.GET("", cfg.BillHandler.List)
			bills.GET("/total-paid", cfg.BillHandler.TotalPaid)
			bills.POST("/import", middleware.BodyLimit(cfg.Import.MaxFileSize), cfg.BillHandler.Import)
			bills.GET("/:id", cfg.BillHandler.Get)
			bills.PUT("/:id", cfg.BillHandler.Update)
			bills.PATCH("/:id/pay", cfg.BillHandler.Pay)
			bills.PATCH("/:id/status", cfg.BillHandler.ChangeStatus)
		}
	}

	return engine
}
