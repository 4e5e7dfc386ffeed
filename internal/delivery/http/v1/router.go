package v1

import (
	"go-leadform-backend/config"
	"go-leadform-backend/internal/delivery/http/middleware"
	"go-leadform-backend/internal/delivery/http/response"
	"go-leadform-backend/internal/domain"
	"go-leadform-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC     domain.ContactUsecase
	EstimateUC    domain.EstimateUsecase
	ApplicationUC domain.ApplicationUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// The wizards only ever POST; anything else on a form route is answered
	// with the wire contract's 405, not gin's default 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.Error(apperror.MethodNotAllowed())
	})

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.OK(c)
	})

	// Form submission routes (all public)
	NewContactHandler(api, deps.ContactUC)
	NewEstimateHandler(api, deps.EstimateUC)
	NewApplyHandler(api, deps.ApplicationUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
