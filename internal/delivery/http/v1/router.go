package v1

import (
	"net/http"

	"cleanpro-web/config"
	"cleanpro-web/internal/delivery/http/middleware"
	"cleanpro-web/internal/delivery/http/response"
	"cleanpro-web/internal/delivery/http/web"
	"cleanpro-web/internal/domain"
	"cleanpro-web/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CatalogUC domain.CatalogUsecase
	ContactUC domain.ContactUsecase
	SEOUC     domain.SEOUsecase
	HealthUC  usecase.HealthUsecase
	// Counter backs the rate limits; nil keeps them per process.
	Counter middleware.Counter
	Config  *config.Config
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	cfg := deps.Config
	release := cfg.GinMode == gin.ReleaseMode
	window := cfg.RateLimitWindow()

	pages, err := web.NewHandler(web.Deps{
		Site:          cfg.Site(),
		CatalogUC:     deps.CatalogUC,
		ContactUC:     deps.ContactUC,
		SEOUC:         deps.SEOUC,
		StaticDir:     cfg.StaticDir,
		SecureCookies: release,
	})
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.SiteURL, release)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(release))
	r.Use(middleware.Theme())

	globalLimit := middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window, deps.Counter)
	contactLimit := middleware.ContactRateLimitConfig(cfg.RateLimitContactThreshold, window, deps.Counter)
	// API and site routes count against the same buckets, with or without the shared store.
	memory := middleware.NewMemoryCounter()
	globalLimit.Memory = memory
	contactLimit.Memory = memory
	formSession := middleware.FormSession(cfg.ContactFormTTL, release)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(globalLimit))
	api.Use(middleware.ErrorHandler())

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Public routes
	NewCatalogHandler(api, deps.CatalogUC)
	contact := api.Group("", formSession)
	NewContactHandler(contact, deps.ContactUC, middleware.RateLimitMiddleware(contactLimit))

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Site
	globalLimit.PlainText = true
	contactLimit.PlainText = true
	pages.RegisterRoutes(r, web.Middleware{
		Site:   []gin.HandlerFunc{middleware.RateLimitMiddleware(globalLimit), middleware.CSRFMiddleware(release)},
		Form:   []gin.HandlerFunc{formSession},
		Submit: []gin.HandlerFunc{middleware.RateLimitMiddleware(contactLimit)},
	})
	r.NoRoute(pages.NotFound)

	return r, nil
}
