// Package invoice owns the invoice lifecycle: validation, ownership-scoped
// persistence, status transitions and the notifications they trigger.
package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"invoicing-backend/internal/apperror"
	"invoicing-backend/internal/doclink"
	"invoicing-backend/internal/mailer"
	"invoicing-backend/internal/models"
	"invoicing-backend/internal/pdf"
	"invoicing-backend/internal/repository"
)

// InvoiceStore is the persistence contract the service needs. The gorm
// repository satisfies it; tests use an in-memory fake.
type InvoiceStore interface {
	Create(invoice *models.Invoice) error
	GetByID(id uuid.UUID) (*models.Invoice, error)
	GetForUser(id uuid.UUID, userID string) (*models.Invoice, error)
	Update(invoice *models.Invoice) error
	Delete(id uuid.UUID, userID string) error
	ListForUser(userID string) ([]models.Invoice, error)
	ListDueForReminder(now time.Time) ([]models.Invoice, error)
	StatsForUser(userID string) ([]repository.StatRow, error)
}

// UserStore provides the profile fields used to pre-fill the issuer block.
type UserStore interface {
	GetByID(id string) (*models.User, error)
}

type Service struct {
	store  InvoiceStore
	users  UserStore
	sender mailer.Sender

	from    mailer.Address
	baseURL string
	// nil when no link secret is configured; emailed links then carry the
	// bare invoice id.
	links          *doclink.Signer
	notifyOnUpdate bool

	log zerolog.Logger
}

func NewService(
	store InvoiceStore,
	users UserStore,
	sender mailer.Sender,
	from mailer.Address,
	baseURL string,
	links *doclink.Signer,
	notifyOnUpdate bool,
	log zerolog.Logger,
) *Service {
	return &Service{
		store:          store,
		users:          users,
		sender:         sender,
		from:           from,
		baseURL:        baseURL,
		links:          links,
		notifyOnUpdate: notifyOnUpdate,
		log:            log,
	}
}

// Create validates the input, persists a new PENDING invoice owned by
// ownerID and triggers the "new invoice" notification. The client-submitted
// total is advisory only; the stored total is recomputed from the items.
func (s *Service) Create(ctx context.Context, input Input, ownerID string) (*models.Invoice, error) {
	s.fillIssuerDefaults(&input, ownerID)

	date, appErr := input.validate()
	if appErr != nil {
		return nil, appErr
	}

	itemsJSON, err := json.Marshal(input.InvoiceItems)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	invoice := &models.Invoice{
		ID:                uuid.New(),
		UserID:            ownerID,
		InvoiceNumber:     input.InvoiceNumber,
		InvoiceName:       input.InvoiceName,
		ClientName:        input.ClientName,
		ClientEmail:       input.ClientEmail,
		ClientAddress:     input.ClientAddress,
		FromName:          input.FromName,
		FromEmail:         input.FromEmail,
		FromAddress:       input.FromAddress,
		Currency:          input.Currency,
		Date:              date,
		DueDate:           input.DueDate,
		Total:             models.ComputeTotal(input.InvoiceItems),
		InvoiceItems:      itemsJSON,
		Status:            models.StatusPending,
		Note:              input.Note,
		AutomaticReminder: input.AutomaticReminder,
		CreatedAt:         time.Now(),
	}

	if err := s.store.Create(invoice); err != nil {
		return nil, apperror.NewInternal(err)
	}

	s.notify(ctx, invoice)
	return invoice, nil
}

// Update re-validates and persists an invoice owned by ownerID. Whether the
// "new invoice" notification is re-sent on update is a wiring-time policy.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input, ownerID string) (*models.Invoice, error) {
	invoice, err := s.getOwned(id, ownerID)
	if err != nil {
		return nil, err
	}

	date, appErr := input.validate()
	if appErr != nil {
		return nil, appErr
	}

	itemsJSON, jsonErr := json.Marshal(input.InvoiceItems)
	if jsonErr != nil {
		return nil, apperror.NewInternal(jsonErr)
	}

	invoice.InvoiceNumber = input.InvoiceNumber
	invoice.InvoiceName = input.InvoiceName
	invoice.ClientName = input.ClientName
	invoice.ClientEmail = input.ClientEmail
	invoice.ClientAddress = input.ClientAddress
	invoice.FromName = input.FromName
	invoice.FromEmail = input.FromEmail
	invoice.FromAddress = input.FromAddress
	invoice.Currency = input.Currency
	invoice.Date = date
	invoice.DueDate = input.DueDate
	invoice.Total = models.ComputeTotal(input.InvoiceItems)
	invoice.InvoiceItems = itemsJSON
	invoice.Note = input.Note
	invoice.AutomaticReminder = input.AutomaticReminder

	if err := s.store.Update(invoice); err != nil {
		return nil, apperror.NewInternal(err)
	}

	if s.notifyOnUpdate {
		s.notify(ctx, invoice)
	}
	return invoice, nil
}

// Delete permanently removes an invoice owned by ownerID. A foreign-owned
// invoice reports not found, so existence of other users' records is not
// leaked.
func (s *Service) Delete(id uuid.UUID, ownerID string) error {
	err := s.store.Delete(id, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NewNotFound("invoice", id)
	}
	if err != nil {
		return apperror.NewInternal(err)
	}
	return nil
}

// MarkPaid sets status to PAID. Idempotent.
func (s *Service) MarkPaid(id uuid.UUID, ownerID string) (*models.Invoice, error) {
	return s.setStatus(id, ownerID, models.StatusPaid)
}

// MarkUnpaid sets status back to PENDING. Idempotent.
func (s *Service) MarkUnpaid(id uuid.UUID, ownerID string) (*models.Invoice, error) {
	return s.setStatus(id, ownerID, models.StatusPending)
}

func (s *Service) setStatus(id uuid.UUID, ownerID, status string) (*models.Invoice, error) {
	invoice, err := s.getOwned(id, ownerID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == status {
		return invoice, nil
	}
	invoice.Status = status
	if err := s.store.Update(invoice); err != nil {
		return nil, apperror.NewInternal(err)
	}
	return invoice, nil
}

// SendReminder emails the payment reminder for an outstanding invoice.
// Reminders for PAID invoices are rejected; the status is never touched.
// A transport failure surfaces as a soft notification-delivery error so the
// caller can show a transient message.
func (s *Service) SendReminder(ctx context.Context, id uuid.UUID, ownerID string) error {
	invoice, err := s.getOwned(id, ownerID)
	if err != nil {
		return err
	}
	if invoice.Status == models.StatusPaid {
		return apperror.NewBusinessRule("Factuur is al betaald")
	}

	msg := mailer.ComposeReminder(invoice, s.from, s.DocumentURL(invoice))
	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.Error().Err(err).Str("invoice_id", invoice.ID.String()).Msg("reminder delivery failed")
		return apperror.NewNotificationDelivery(err)
	}
	return nil
}

// Get returns a single invoice scoped to its owner.
func (s *Service) Get(id uuid.UUID, ownerID string) (*models.Invoice, error) {
	return s.getOwned(id, ownerID)
}

// List returns the owner's invoices, newest first.
func (s *Service) List(ownerID string) ([]models.Invoice, error) {
	invoices, err := s.store.ListForUser(ownerID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return invoices, nil
}

// Stats summarizes the owner's invoices for the dashboard blocks.
type Stats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalInvoices int64   `json:"total_invoices"`
	PaidCount     int64   `json:"paid_count"`
	PendingCount  int64   `json:"pending_count"`
}

func (s *Service) Stats(ownerID string) (Stats, error) {
	rows, err := s.store.StatsForUser(ownerID)
	if err != nil {
		return Stats{}, apperror.NewInternal(err)
	}

	var stats Stats
	for _, r := range rows {
		stats.TotalInvoices += r.Count
		stats.TotalRevenue += r.Sum
		switch r.Status {
		case models.StatusPaid:
			stats.PaidCount = r.Count
		case models.StatusPending:
			stats.PendingCount = r.Count
		}
	}
	return stats, nil
}

// Render produces the PDF bytes for an invoice. The lookup is deliberately
// not ownership-scoped: emailed recipients are not application users. The
// exposure is bounded by the signed link token when one is configured.
func (s *Service) Render(id uuid.UUID) ([]byte, error) {
	invoice, err := s.store.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NewNotFound("invoice", id)
	}
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return pdf.Render(invoice)
}

// VerifyDocumentToken checks a signed download token when link signing is
// enabled. With no signer configured, bare ids are accepted.
func (s *Service) VerifyDocumentToken(token string, id uuid.UUID) error {
	if s.links == nil {
		return nil
	}
	if err := s.links.Verify(token, id); err != nil {
		return apperror.NewNotFound("invoice", id)
	}
	return nil
}

// DocumentURL builds the emailed download link for an invoice.
func (s *Service) DocumentURL(invoice *models.Invoice) string {
	url := s.baseURL + "/api/pdf?invoiceId=" + invoice.ID.String()
	if s.links == nil {
		return url
	}
	token, err := s.links.Token(invoice.ID)
	if err != nil {
		s.log.Error().Err(err).Str("invoice_id", invoice.ID.String()).Msg("document link signing failed")
		return url
	}
	return url + "&token=" + token
}

// RemindOverdue sends reminder emails for all pending invoices flagged for
// automatic reminders whose due date has passed. The cadence is owned by the
// caller (the reminder job).
func (s *Service) RemindOverdue(ctx context.Context, now time.Time) (int, error) {
	invoices, err := s.store.ListDueForReminder(now)
	if err != nil {
		return 0, apperror.NewInternal(err)
	}

	sent := 0
	for i := range invoices {
		inv := &invoices[i]
		msg := mailer.ComposeReminder(inv, s.from, s.DocumentURL(inv))
		if err := s.sender.Send(ctx, msg); err != nil {
			s.log.Error().Err(err).Str("invoice_id", inv.ID.String()).Msg("automatic reminder delivery failed")
			continue
		}
		sent++
	}
	return sent, nil
}

func (s *Service) getOwned(id uuid.UUID, ownerID string) (*models.Invoice, error) {
	invoice, err := s.store.GetForUser(id, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NewNotFound("invoice", id)
	}
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return invoice, nil
}

// fillIssuerDefaults copies the owner's profile into blank issuer fields so
// a fresh invoice starts from the account details.
func (s *Service) fillIssuerDefaults(input *Input, ownerID string) {
	if input.FromName != "" && input.FromEmail != "" && input.FromAddress != "" {
		return
	}
	user, err := s.users.GetByID(ownerID)
	if err != nil {
		return
	}
	if input.FromName == "" {
		input.FromName = user.FullName()
	}
	if input.FromEmail == "" {
		input.FromEmail = user.Email
	}
	if input.FromAddress == "" {
		input.FromAddress = user.Address
	}
}

// notify sends the "new invoice" email after a write. Best effort: the
// invoice has already been committed and is never rolled back for a failed
// send.
func (s *Service) notify(ctx context.Context, invoice *models.Invoice) {
	msg := mailer.ComposeNewInvoice(invoice, s.from, s.DocumentURL(invoice))
	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.Error().Err(err).Str("invoice_id", invoice.ID.String()).Msg("invoice notification delivery failed")
	}
}
