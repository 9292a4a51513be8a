package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gstrly/docs"
	"gstrly/internal/config"
	"gstrly/internal/domain"
	"gstrly/internal/handler"
	"gstrly/internal/middleware"
	"gstrly/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	profileH *handler.ProfileHandler,
	customerH *handler.CustomerHandler,
	invoiceH *handler.InvoiceHandler,
	noteH *handler.NoteHandler,
	returnH *handler.ReturnHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Business profile
	protected.GET("/profile", profileH.Get)
	protected.PUT("/profile", middleware.RequireRole(domain.RoleOwner), profileH.Update)

	// Customers
	customers := protected.Group("/customers")
	customers.POST("", middleware.RequireRole(domain.RoleOwner), customerH.Create)
	customers.GET("", customerH.List)
	customers.GET("/:id", customerH.GetByID)
	customers.PUT("/:id", middleware.RequireRole(domain.RoleOwner), customerH.Update)
	customers.DELETE("/:id", middleware.RequireRole(domain.RoleOwner), customerH.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.POST("", middleware.RequireRole(domain.RoleOwner), invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.PUT("/:id", middleware.RequireRole(domain.RoleOwner), invoiceH.Update)
	invoices.DELETE("/:id", middleware.RequireRole(domain.RoleOwner), invoiceH.Delete)

	// Credit and debit notes
	notes := protected.Group("/notes")
	notes.POST("", middleware.RequireRole(domain.RoleOwner), noteH.Create)
	notes.GET("", noteH.List)
	notes.GET("/:id", noteH.GetByID)
	notes.DELETE("/:id", middleware.RequireRole(domain.RoleOwner), noteH.Delete)

	// GSTR-1 returns - professionals can read and deliver, owners can do everything
	returns := protected.Group("/returns/gstr1/:period")
	returns.GET("/summary", returnH.Summary)
	returns.GET("/workbook", returnH.Workbook)
	returns.GET("/payload", returnH.Payload)
	returns.POST("/archive", returnH.Archive)
	returns.POST("/send", returnH.Send)

	return r
}
