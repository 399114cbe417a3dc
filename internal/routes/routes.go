package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoicing-backend/internal/config"
	"invoicing-backend/internal/doclink"
	handler "invoicing-backend/internal/handlers"
	"invoicing-backend/internal/logger"
	"invoicing-backend/internal/mailer"
	"invoicing-backend/internal/middleware"
	"invoicing-backend/internal/repository"
	service "invoicing-backend/internal/services/invoice"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	userRepo := repository.NewUserRepository(db)

	var links *doclink.Signer
	if cfg.DocLinkSecret != "" {
		links = doclink.NewSigner(cfg.DocLinkSecret, cfg.DocLinkTTL)
	}

	invoiceService := service.NewService(
		invoiceRepo,
		userRepo,
		mailer.NewMailtrapClient(cfg.MailtrapToken, cfg.MailtrapInboxID),
		mailer.Address{Name: cfg.SenderName, Email: cfg.SenderEmail},
		cfg.BaseURL,
		links,
		cfg.NotifyOnUpdate,
		logger.With("invoice-service"),
	)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	pdfHandler := handler.NewPDFHandler(invoiceService)
	userHandler := handler.NewUserHandler(userRepo)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public document download, reachable from emailed links
	api.GET("/pdf", pdfHandler.Download)

	// Everything below is scoped to the authenticated owner
	auth := api.Group("")
	auth.Use(middleware.RequireAuth(cfg.JWTSecret))

	invoices := auth.Group("/invoices")
	{
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/stats", invoiceHandler.Stats)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
		invoices.POST("/:id/paid", invoiceHandler.MarkPaid)
		invoices.POST("/:id/unpaid", invoiceHandler.MarkUnpaid)
		invoices.POST("/:id/remind", invoiceHandler.SendReminder)
	}

	users := auth.Group("/users")
	{
		users.GET("/me", userHandler.Me)
		users.PUT("/me", userHandler.UpsertMe)
	}
}
