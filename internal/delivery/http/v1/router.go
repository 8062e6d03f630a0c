package v1

import (
	"job-board-backend/config"
	"job-board-backend/internal/delivery/http/middleware"
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"job-board-backend/internal/usecase"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	UserUC        domain.UserUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	MatchingUC    domain.MatchingUsecase
	HealthUC      usecase.HealthUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.ErrorHandler())

	// Prometheus scrape endpoint, outside the rate limit
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.Use(middleware.GlobalRateLimitMiddleware(deps.Config.RateLimitGlobalThreshold, window))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		report := deps.HealthUC.Check(c.Request.Context())
		if report.Status == usecase.StatusFail {
			response.Error(c, http.StatusServiceUnavailable, "System unavailable", report)
			return
		}
		response.Success(c, http.StatusOK, "System operational", report)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config.JWTSecret, deps.UserUC))
	{
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewMatchHandler(protected, deps.MatchingUC)
		NewUserHandler(v1, protected, deps.UserUC)
		NewAdminHandler(protected, deps.UserUC, deps.JobUC)
	}

	return r
}
