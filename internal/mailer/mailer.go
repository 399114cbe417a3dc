// Package mailer is the transactional-email boundary. Invoice persistence is
// the source of truth; a failed send is logged and reported as a soft result,
// never propagated as a failure of the write that triggered it.
package mailer

import "context"

type Address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type Message struct {
	From    Address
	To      Address
	Subject string
	HTML    string
	Text    string
}

// Sender abstracts the mail transport so the lifecycle service can be tested
// with a fake and the real client's credentials stay explicit at wiring time.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
