package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
)

const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// InvoiceItem is one billed line. Items are persisted as a JSON blob on the
// invoice, not as a child table.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// Amount is the line total.
func (it InvoiceItem) Amount() float64 {
	return it.Quantity * it.Rate
}

type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string    `gorm:"index" json:"userId"`
	InvoiceNumber int64     `json:"invoiceNumber"`
	InvoiceName   string    `json:"invoiceName"`

	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	ClientAddress string `json:"clientAddress"`

	FromName    string `json:"fromName"`
	FromEmail   string `json:"fromEmail"`
	FromAddress string `json:"fromAddress"`

	Currency string    `gorm:"index" json:"currency"`
	Date     time.Time `json:"date"`
	// DueDate is a number of days added to Date. 0 means due on receipt.
	DueDate int `json:"dueDate"`

	// Total is denormalized for list views and always recomputed from the
	// items when the invoice is written.
	Total float64 `json:"total"`

	InvoiceItems datatypes.JSON `json:"invoiceItems"`

	Status            string `gorm:"index" json:"status"`
	Note              string `json:"note,omitempty"`
	AutomaticReminder bool   `json:"automaticReminder"`

	CreatedAt time.Time `json:"createdAt"`
}

// DueDateAt derives the payment deadline. Every place that shows a due date
// (emails, PDF, list views) must go through this so the values cannot drift.
func (i *Invoice) DueDateAt() time.Time {
	return i.Date.AddDate(0, 0, i.DueDate)
}

// Items decodes the persisted line-item blob.
func (i *Invoice) Items() ([]InvoiceItem, error) {
	var items []InvoiceItem
	if len(i.InvoiceItems) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(i.InvoiceItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ComputeTotal sums quantity x rate over the given items.
func ComputeTotal(items []InvoiceItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Amount()
	}
	return total
}
