package repository

import (
	"errors"
	"time"

	"invoicing-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matched the scoped query. A record
// owned by another user is reported the same way as a missing one.
var ErrNotFound = errors.New("record not found")

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// GetByID fetches a single invoice by id without an ownership filter. Only
// the document-rendering path uses this; everything else goes through
// GetForUser.
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetForUser fetches an invoice scoped to its owner.
func (r *InvoiceRepository) GetForUser(id uuid.UUID, userID string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Update(invoice *models.Invoice) error {
	return r.db.Save(invoice).Error
}

// Delete removes the invoice if owned by userID. Deleting a foreign or
// missing invoice reports ErrNotFound.
func (r *InvoiceRepository) Delete(id uuid.UUID, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Invoice{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListForUser returns the owner's invoices, newest first.
func (r *InvoiceRepository) ListForUser(userID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

// ListDueForReminder returns pending invoices flagged for automatic
// reminders whose derived due date (date + due_date days) has passed.
func (r *InvoiceRepository) ListDueForReminder(now time.Time) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.
		Where("automatic_reminder = ? AND status = ?", true, models.StatusPending).
		Where("date + (due_date * INTERVAL '1 day') < ?", now).
		Find(&invoices).Error
	return invoices, err
}

type StatRow struct {
	Status string
	Count  int64
	Sum    float64
}

// StatsForUser aggregates count and revenue per status in one query.
func (r *InvoiceRepository) StatsForUser(userID string) ([]StatRow, error) {
	var rows []StatRow
	err := r.db.Model(&models.Invoice{}).
		Where("user_id = ?", userID).
		Select("status, COUNT(*) as count, COALESCE(SUM(total),0) as sum").
		Group("status").
		Scan(&rows).Error
	return rows, err
}
