package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"invoicing-backend/internal/models"
)

func templateInvoice() *models.Invoice {
	return &models.Invoice{
		ClientName:  "Acme BV",
		ClientEmail: "billing@acme.nl",
		FromName:    "Jan Marshal",
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     15,
	}
}

func TestComposeNewInvoice(t *testing.T) {
	from := Address{Name: "Bit-Facturen", Email: "me@codebyjaron.nl"}
	msg := ComposeNewInvoice(templateInvoice(), from, "http://localhost:8080/api/pdf?invoiceId=abc")

	assert.Equal(t, SubjectNewInvoice, msg.Subject)
	assert.Equal(t, from, msg.From)
	assert.Equal(t, "billing@acme.nl", msg.To.Email)

	// Due date must be the derived one: 2024-01-01 + 15 days.
	assert.Contains(t, msg.HTML, "16-01-2024")
	assert.Contains(t, msg.Text, "16-01-2024")
	assert.Contains(t, msg.HTML, "Acme BV")
	assert.Contains(t, msg.HTML, "http://localhost:8080/api/pdf?invoiceId=abc")
	assert.Contains(t, msg.Text, "http://localhost:8080/api/pdf?invoiceId=abc")
	assert.Contains(t, msg.HTML, "Jan Marshal")
}

func TestComposeReminder(t *testing.T) {
	from := Address{Name: "Bit-Facturen", Email: "me@codebyjaron.nl"}
	msg := ComposeReminder(templateInvoice(), from, "http://localhost:8080/api/pdf?invoiceId=abc")

	assert.Equal(t, SubjectReminder, msg.Subject)
	assert.Contains(t, msg.HTML, "Herinnering")
	assert.Contains(t, msg.HTML, "16-01-2024")
	assert.Contains(t, msg.Text, "nog openstaat")
}

func TestDueDateConsistentWithModel(t *testing.T) {
	inv := templateInvoice()
	assert.Equal(t, "16-01-2024", inv.DueDateAt().Format(dueDateFormat))
}
