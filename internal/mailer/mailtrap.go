package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	sendEndpoint    = "https://send.api.mailtrap.io/api/send"
	sandboxEndpoint = "https://sandbox.api.mailtrap.io/api/send/"
)

// MailtrapClient sends through the Mailtrap transactional API. When an inbox
// id is configured, delivery goes to the sandbox inbox instead of real
// recipients.
type MailtrapClient struct {
	token   string
	inboxID string
	http    *http.Client
}

var _ Sender = (*MailtrapClient)(nil)

func NewMailtrapClient(token, inboxID string) *MailtrapClient {
	return &MailtrapClient{
		token:   token,
		inboxID: inboxID,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type mailtrapRequest struct {
	From    Address   `json:"from"`
	To      []Address `json:"to"`
	Subject string    `json:"subject"`
	HTML    string    `json:"html,omitempty"`
	Text    string    `json:"text,omitempty"`
}

func (c *MailtrapClient) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(mailtrapRequest{
		From:    msg.From,
		To:      []Address{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return err
	}

	endpoint := sendEndpoint
	if c.inboxID != "" {
		endpoint = sandboxEndpoint + c.inboxID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		respBody, _ := io.ReadAll(res.Body)
		return &mailtrapHTTPError{Status: res.StatusCode, Body: string(respBody)}
	}
	return nil
}

type mailtrapHTTPError struct {
	Status int
	Body   string
}

func (e *mailtrapHTTPError) Error() string {
	return fmt.Sprintf("mailtrap send failed: status %d", e.Status)
}
