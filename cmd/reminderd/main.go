// reminderd periodically emails payment reminders for overdue invoices that
// were flagged for automatic reminders. The invoicing API itself never
// schedules anything; this job is the collaborator that consumes the flag.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"invoicing-backend/internal/config"
	"invoicing-backend/internal/doclink"
	"invoicing-backend/internal/logger"
	"invoicing-backend/internal/mailer"
	"invoicing-backend/internal/repository"
	service "invoicing-backend/internal/services/invoice"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("invalid log configuration: %v", err)
	}
	logg := logger.With("reminderd")

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to database")
	}

	var links *doclink.Signer
	if cfg.DocLinkSecret != "" {
		links = doclink.NewSigner(cfg.DocLinkSecret, cfg.DocLinkTTL)
	}

	invoiceService := service.NewService(
		repository.NewInvoiceRepository(db),
		repository.NewUserRepository(db),
		mailer.NewMailtrapClient(cfg.MailtrapToken, cfg.MailtrapInboxID),
		mailer.Address{Name: cfg.SenderName, Email: cfg.SenderEmail},
		cfg.BaseURL,
		links,
		cfg.NotifyOnUpdate,
		logg,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logg.Info().Dur("interval", cfg.ReminderInterval).Msg("starting reminder job")

	ticker := time.NewTicker(cfg.ReminderInterval)
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			sent, err := invoiceService.RemindOverdue(ctx, time.Now())
			if err != nil {
				logg.Error().Err(err).Msg("reminder sweep failed")
				continue
			}
			logg.Info().Int("sent", sent).Msg("reminder sweep completed")
		case <-quit:
			logg.Info().Msg("shutting down reminder job")
			cancel()
			return
		}
	}
}
