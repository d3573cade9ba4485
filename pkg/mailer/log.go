package mailer

import (
	"context"
	"log/slog"
)

type logTransport struct {
	logger *slog.Logger
}

// NewLog creates a Transport that records messages to the logger instead of
// delivering them. Used for local runs without an SMTP relay.
func NewLog(logger *slog.Logger) Transport {
	return &logTransport{logger: logger.With("system", "mailer")}
}

func (t *logTransport) Send(ctx context.Context, msg Message) error {
	t.logger.InfoContext(ctx, "outbound email",
		"to", msg.To,
		"subject", msg.Subject,
		"attachments", len(msg.Attachments),
	)
	return nil
}
