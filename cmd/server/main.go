// @title GSTRLY API
// @version 1.0
// @description GST invoicing and GSTR-1 return generation for small Indian businesses.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
package main

import (
	"fmt"
	"log"

	"gstrly/internal/config"
	"gstrly/internal/email/noop"
	"gstrly/internal/email/ses"
	"gstrly/internal/handler"
	"gstrly/internal/port"
	"gstrly/internal/repository/postgres"
	"gstrly/internal/router"
	"gstrly/internal/service"
	s3storage "gstrly/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	profileRepo := postgres.NewProfileRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	noteRepo := postgres.NewNoteRepo(db)
	userRepo := postgres.NewUserRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email delivery
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	profileSvc := service.NewProfileService(profileRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo)
	noteSvc := service.NewNoteService(noteRepo)
	returnSvc := service.NewReturnService(profileRepo, customerRepo, invoiceRepo, noteRepo, s3Client, emailSender, cfg.S3)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	noteH := handler.NewNoteHandler(noteSvc)
	returnH := handler.NewReturnHandler(returnSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, profileH, customerH, invoiceH, noteH, returnH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
