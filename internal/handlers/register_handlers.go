package handlers

import (
	"github.com/finca-nomina/nomina_backend/cmd/docs"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/middleware"
	"github.com/finca-nomina/nomina_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	loginLimiter *limiter.Limiter,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", getHealth)

	// Register public authentication routes
	registerAuthRoutes(r, loginLimiter, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
// Every route requires a token; writes additionally require a writer role.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	v1.GET("/auth/me", newAuthHandler(service.User, service.Token).me)
	registerUserRoutes(v1, service.User)
	registerCatalogRoutes(v1, service.Catalog, service.Labor)
	registerVigencyRoutes(v1, service.Vigency, service.Labor)
	registerWorkerRoutes(v1, service.Worker)
	registerLoanRoutes(v1, service.Loan)
	registerPayPeriodRoutes(v1, service.PayPeriod)
	registerLaborRecordRoutes(v1, service.LaborRecord)
	registerPayrollRoutes(v1, service.Payroll)
	registerAuditRoutes(v1, service.Audit)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
