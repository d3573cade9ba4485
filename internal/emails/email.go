// Package emails defines the inbound email types shared by the workflow
// and its tools.
package emails

// Attachment is a single inbound email attachment with its raw payload.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// Message is one inbound email submitted for processing.
type Message struct {
	SenderEmail string       `json:"sender_email"`
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	Attachments []Attachment `json:"attachments"`
}

// Filenames returns the attachment filenames in submission order.
func (m *Message) Filenames() []string {
	names := make([]string, len(m.Attachments))
	for i, a := range m.Attachments {
		names[i] = a.Filename
	}
	return names
}
