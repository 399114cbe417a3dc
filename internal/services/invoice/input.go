package invoice

import (
	"fmt"
	"net/mail"
	"time"

	"invoicing-backend/internal/apperror"
	"invoicing-backend/internal/models"
)

// Input is the write payload for create and update. Total is accepted for
// backwards compatibility with older clients but is advisory only; the
// persisted total is always recomputed from the items.
type Input struct {
	InvoiceName   string  `json:"invoiceName"`
	InvoiceNumber int64   `json:"invoiceNumber"`
	Total         float64 `json:"total"`

	FromName    string `json:"fromName"`
	FromEmail   string `json:"fromEmail"`
	FromAddress string `json:"fromAddress"`

	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	ClientAddress string `json:"clientAddress"`

	Currency string `json:"currency"`
	// Date is the issuance date as YYYY-MM-DD.
	Date    string `json:"date"`
	DueDate int    `json:"dueDate"`

	Note              string `json:"note"`
	AutomaticReminder bool   `json:"automaticReminder"`

	InvoiceItems []models.InvoiceItem `json:"invoiceItems"`
}

const dateLayout = "2006-01-02"

// validate checks field presence, numeric minimums and email formats. All
// violations are collected into one validation error keyed per field so the
// form can be re-presented inline.
func (in Input) validate() (time.Time, *apperror.AppError) {
	fields := map[string]string{}

	if in.InvoiceName == "" {
		fields["invoiceName"] = "Factuurnaam is verplicht"
	}
	if in.InvoiceNumber < 1 {
		fields["invoiceNumber"] = "Factuurnummer moet minimaal 1 zijn"
	}
	if in.FromName == "" {
		fields["fromName"] = "Uw naam is verplicht"
	}
	if !validEmail(in.FromEmail) {
		fields["fromEmail"] = "Ongeldig e-mailadres"
	}
	if in.FromAddress == "" {
		fields["fromAddress"] = "Uw adres is verplicht"
	}
	if in.ClientName == "" {
		fields["clientName"] = "Klantnaam is verplicht"
	}
	if !validEmail(in.ClientEmail) {
		fields["clientEmail"] = "Ongeldig e-mailadres"
	}
	if in.ClientAddress == "" {
		fields["clientAddress"] = "Klantadres is verplicht"
	}
	if in.Currency != models.CurrencyUSD && in.Currency != models.CurrencyEUR {
		fields["currency"] = "Valuta is verplicht"
	}

	var date time.Time
	if in.Date == "" {
		fields["date"] = "Datum is verplicht"
	} else {
		var err error
		date, err = time.Parse(dateLayout, in.Date)
		if err != nil {
			fields["date"] = "Ongeldige datum"
		}
	}
	if in.DueDate < 0 {
		fields["dueDate"] = "Vervaldatum is verplicht"
	}

	if len(in.InvoiceItems) == 0 {
		fields["invoiceItems"] = "Minimaal 1 factuurregel is verplicht"
	}
	for i, it := range in.InvoiceItems {
		if it.Description == "" {
			fields[fmt.Sprintf("invoiceItems[%d].description", i)] = "Beschrijving is verplicht"
		}
		if it.Quantity < 1 {
			fields[fmt.Sprintf("invoiceItems[%d].quantity", i)] = "Hoeveelheid moet minimaal 1 zijn"
		}
		if it.Rate < 1 {
			fields[fmt.Sprintf("invoiceItems[%d].rate", i)] = "Tarief moet minimaal 1 zijn"
		}
	}

	if len(fields) > 0 {
		appErr := apperror.NewValidation("Invoice input is invalid")
		for k, v := range fields {
			appErr.WithDetail(k, v)
		}
		return time.Time{}, appErr
	}
	return date, nil
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
