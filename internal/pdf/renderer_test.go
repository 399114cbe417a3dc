package pdf

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicing-backend/internal/models"
)

func testInvoice(t *testing.T) *models.Invoice {
	t.Helper()
	items, err := json.Marshal([]models.InvoiceItem{
		{Description: "Consulting", Quantity: 2, Rate: 100},
		{Description: "Hosting", Quantity: 1, Rate: 50},
	})
	require.NoError(t, err)

	return &models.Invoice{
		ID:            uuid.New(),
		UserID:        "user-1",
		InvoiceNumber: 42,
		InvoiceName:   "Consulting januari",
		ClientName:    "Acme BV",
		ClientEmail:   "billing@acme.nl",
		ClientAddress: "Damrak 5, Amsterdam",
		FromName:      "Jan Marshal",
		FromEmail:     "jan@alenix.de",
		FromAddress:   "Keizersgracht 1, Amsterdam",
		Currency:      models.CurrencyEUR,
		Date:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       15,
		Total:         9999, // deliberately stale; render must not trust it
		InvoiceItems:  items,
		Status:        models.StatusPending,
		Note:          "Graag betalen binnen de termijn.",
	}
}

func TestRenderProducesPDF(t *testing.T) {
	data, err := Render(testInvoice(t))
	require.NoError(t, err)
	require.True(t, len(data) > 1000)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderIgnoresStoredTotal(t *testing.T) {
	inv := testInvoice(t)
	items, err := inv.Items()
	require.NoError(t, err)

	// The document total must come from the items, not the stale column.
	assert.Equal(t, 250.0, models.ComputeTotal(items))

	data, err := Render(inv)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderRejectsCorruptItems(t *testing.T) {
	inv := testInvoice(t)
	inv.InvoiceItems = []byte("{not json")

	_, err := Render(inv)
	require.Error(t, err)
}

func TestRenderWithoutNote(t *testing.T) {
	inv := testInvoice(t)
	inv.Note = ""

	data, err := Render(inv)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
