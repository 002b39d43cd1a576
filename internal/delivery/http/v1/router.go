package v1

import (
	"net/http"

	"go-visa-diagnosis-backend/config"
	"go-visa-diagnosis-backend/internal/delivery/http/middleware"
	"go-visa-diagnosis-backend/internal/delivery/http/response"
	"go-visa-diagnosis-backend/internal/domain"
	"go-visa-diagnosis-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	DiagnosisUC domain.DiagnosisUsecase
	CatalogUC   domain.CatalogUsecase
	HealthUC    usecase.HealthUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	cfg := deps.Config

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL)) // CORS must be first!
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, cfg.RateLimitWindowSeconds)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Public routes. The diagnosis endpoint carries its own stricter
	// rate limit because each call fans out into catalog queries and an
	// optional language-model request.
	diagnoseLimit := middleware.RateLimitMiddleware(
		middleware.DiagnoseRateLimitConfig(cfg.RateLimitDiagnoseThreshold, cfg.RateLimitWindowSeconds))
	NewDiagnosisHandler(v1, deps.DiagnosisUC, diagnoseLimit)
	NewVisaHandler(v1, deps.CatalogUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Admin routes (catalog management)
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.AdminAPIToken))
	{
		NewAdminHandler(admin, deps.CatalogUC)
	}

	return r
}
