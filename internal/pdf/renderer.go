// Package pdf turns an invoice's current state into a downloadable A4
// document. The layout mirrors the printable invoice page: issuer header,
// recipient block, itemized table, totals, status and optional note.
package pdf

import (
	"bytes"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"invoicing-backend/internal/apperror"
	"invoicing-backend/internal/models"
	"invoicing-backend/internal/money"
)

const dateFormat = "02-01-2006"

// Render produces the PDF bytes for one invoice. Line amounts and the grand
// total are recomputed from the items here; the stored total is never
// trusted at render time.
func Render(invoice *models.Invoice) ([]byte, error) {
	items, err := invoice.Items()
	if err != nil {
		return nil, apperror.NewRender(err)
	}
	total := models.ComputeTotal(items)

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate so the euro sign and accented names
	// survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Issuer header and FACTUUR block
	pdf.SetTextColor(31, 41, 55)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(110, 8, tr(invoice.FromName))
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 8, "FACTUUR", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(75, 85, 99)
	pdf.Cell(110, 5, tr(invoice.FromAddress))
	pdf.CellFormat(0, 5, "Factuurnummer: #"+strconv.FormatInt(invoice.InvoiceNumber, 10), "", 1, "R", false, 0, "")
	pdf.Cell(110, 5, invoice.FromEmail)
	pdf.CellFormat(0, 5, "Datum: "+invoice.Date.Format(dateFormat), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, "Vervaldatum: "+invoice.DueDateAt().Format(dateFormat), "", 1, "R", false, 0, "")
	pdf.Ln(10)

	// Recipient block on a grey fill, background preserved in print
	pdf.SetFillColor(249, 250, 251)
	pdf.SetTextColor(31, 41, 55)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "  Factuur aan:", "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "  "+tr(invoice.ClientName), "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "  "+tr(invoice.ClientAddress), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 6, "  "+invoice.ClientEmail, "", 1, "L", true, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Factuur voor:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(invoice.InvoiceName))
	pdf.Ln(12)

	// Items table
	colW := []float64{85, 20, 30, 35}
	pdf.SetFillColor(243, 244, 246)
	pdf.SetDrawColor(209, 213, 219)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colW[0], 8, "Omschrijving", "B", 0, "L", true, 0, "")
	pdf.CellFormat(colW[1], 8, "Aantal", "B", 0, "R", true, 0, "")
	pdf.CellFormat(colW[2], 8, "Prijs", "B", 0, "R", true, 0, "")
	pdf.CellFormat(colW[3], 8, "Bedrag", "B", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range items {
		pdf.CellFormat(colW[0], 8, tr(it.Description), "B", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 8, strconv.FormatFloat(it.Quantity, 'f', -1, 64), "B", 0, "R", false, 0, "")
		pdf.CellFormat(colW[2], 8, tr(money.Format(it.Rate, invoice.Currency)), "B", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 8, tr(money.Format(it.Amount(), invoice.Currency)), "B", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colW[0]+colW[1]+colW[2], 8, "Totaal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(colW[3], 8, tr(money.Format(total, invoice.Currency)), "", 1, "R", false, 0, "")
	pdf.Ln(8)

	// Payment info with status badge
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Betalingsinformatie:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Betaaltermijn: "+strconv.Itoa(invoice.DueDate)+" dagen")
	pdf.Ln(6)
	pdf.Cell(14, 6, "Status: ")
	pdf.SetFont("Helvetica", "B", 10)
	if invoice.Status == models.StatusPaid {
		pdf.SetTextColor(22, 163, 74)
		pdf.Cell(0, 6, "Betaald")
	} else {
		pdf.SetTextColor(234, 88, 12)
		pdf.Cell(0, 6, "Openstaand")
	}
	pdf.SetTextColor(75, 85, 99)
	pdf.Ln(12)

	// Optional note
	if invoice.Note != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(31, 41, 55)
		pdf.Cell(0, 7, "Opmerkingen:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(75, 85, 99)
		pdf.MultiCell(0, 6, tr(invoice.Note), "", "L", false)
		pdf.Ln(6)
	}

	// Issuer footer
	pdf.Ln(10)
	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.Cell(0, 5, tr(invoice.FromName))
	pdf.Ln(5)
	pdf.Cell(0, 5, tr(invoice.FromAddress))
	pdf.Ln(5)
	pdf.Cell(0, 5, invoice.FromEmail)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperror.NewRender(err)
	}
	return buf.Bytes(), nil
}
