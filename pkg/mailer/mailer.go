// Package mailer provides outbound email delivery behind a Transport
// interface, with an SMTP implementation and a log-only implementation
// for local runs.
package mailer

import "context"

// Attachment is a file carried by an outbound message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a fully composed outbound email.
type Message struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Transport delivers outbound messages.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}
