package mailer

import (
	"fmt"

	"invoicing-backend/internal/models"
)

const (
	SubjectNewInvoice = "Nieuwe factuur"
	SubjectReminder   = "Herinnering: Openstaande factuur"
)

// dueDateFormat matches the nl-NL short date used in the original copy.
const dueDateFormat = "02-01-2006"

// ComposeNewInvoice builds the "new invoice" notification. The due date is
// derived via Invoice.DueDateAt so it cannot diverge from the PDF.
func ComposeNewInvoice(invoice *models.Invoice, from Address, documentURL string) Message {
	due := invoice.DueDateAt().Format(dueDateFormat)
	return Message{
		From:    from,
		To:      Address{Email: invoice.ClientEmail},
		Subject: SubjectNewInvoice,
		HTML: htmlBody(
			"Factuur Aangemaakt",
			fmt.Sprintf("Beste %s,<br/><br/>Er is een nieuwe factuur voor u aangemaakt. U dient deze te voldoen voor <strong>%s</strong>.<br/><br/>Klik op de onderstaande knop om uw factuur te downloaden.", invoice.ClientName, due),
			documentURL,
			invoice.FromName,
		),
		Text: fmt.Sprintf(`Beste %s,

Er is een nieuwe factuur voor u aangemaakt die u dient te voldoen voor %s.
Download uw factuur via de volgende link: %s

Met vriendelijke groet,
%s
`, invoice.ClientName, due, documentURL, invoice.FromName),
	}
}

// ComposeReminder builds the payment-reminder notification for an invoice
// that is still outstanding.
func ComposeReminder(invoice *models.Invoice, from Address, documentURL string) Message {
	due := invoice.DueDateAt().Format(dueDateFormat)
	return Message{
		From:    from,
		To:      Address{Email: invoice.ClientEmail},
		Subject: SubjectReminder,
		HTML: htmlBody(
			"Herinnering: Openstaande Factuur",
			fmt.Sprintf("Beste %s,<br/><br/>Dit is een vriendelijke herinnering dat uw factuur nog openstaat. Wij verzoeken u de betaling te voldoen voor <strong>%s</strong>.<br/><br/>Klik op de onderstaande knop om uw factuur te downloaden.", invoice.ClientName, due),
			documentURL,
			invoice.FromName,
		),
		Text: fmt.Sprintf(`Beste %s,

Dit is een herinnering dat uw factuur nog openstaat. Wij verzoeken u vriendelijk om de betaling te voldoen voor %s.
Download uw factuur via de volgende link: %s

Met vriendelijke groet,
%s
`, invoice.ClientName, due, documentURL, invoice.FromName),
	}
}

func htmlBody(header, content, documentURL, fromName string) string {
	return fmt.Sprintf(`
    <html>
      <head>
        <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
        <style>
          .container { padding: 20px; font-family: Arial, sans-serif; }
          .header { font-size: 24px; font-weight: bold; margin-bottom: 16px; }
          .content { font-size: 16px; margin-bottom: 20px; line-height: 1.5; }
          .button {
            display: inline-block;
            padding: 10px 20px;
            background-color: #3B82F6;
            color: #ffffff;
            text-decoration: none;
            border-radius: 8px;
            margin-top: 20px;
          }
          @media (max-width: 600px) {
            .container { padding: 10px; }
            .header { font-size: 20px; }
            .content { font-size: 14px; }
          }
        </style>
      </head>
      <body>
        <div class="container">
          <div class="header">%s</div>
          <div class="content">%s</div>
          <a href="%s" class="button">Download Factuur</a>
          <div class="content" style="margin-top: 30px;">
            Met vriendelijke groet,<br/>
            %s
          </div>
        </div>
      </body>
    </html>
    `, header, content, documentURL, fromName)
}
