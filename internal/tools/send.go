package tools

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/courier/pkg/artifacts"
	"github.com/JaimeStill/courier/pkg/mailer"
)

// Send delivers the final reply email with the processed document attached.
// All preconditions are checked before any transport call is made.
type Send struct {
	store     artifacts.Store
	transport mailer.Transport
	logger    *slog.Logger
}

// NewSend creates the send_final_email tool.
func NewSend(store artifacts.Store, transport mailer.Transport, logger *slog.Logger) *Send {
	return &Send{
		store:     store,
		transport: transport,
		logger:    logger.With("tool", "send_final_email"),
	}
}

func (t *Send) Name() string { return "send_final_email" }

func (t *Send) Call(ctx context.Context, args Args) *Result {
	recipient := args.String("recipient")
	subject := args.String("subject")
	body := args.String("body")
	name := args.String("artifact_name")
	version := args.Int("artifact_version")

	if recipient == "" || body == "" || name == "" {
		result := Error("missing required information")
		result.Output["send_status"] = "error"
		return result
	}

	artifact, err := t.store.Load(ctx, name, version)
	if err != nil {
		t.logger.Warn("artifact load failed", "name", name, "version", version, "error", err)
		result := Error(err.Error())
		result.Output["send_status"] = "error"
		result.Output["send_failure"] = err.Error()
		return result
	}

	msg := mailer.Message{
		To:      recipient,
		Subject: subject,
		Body:    body,
		Attachments: []mailer.Attachment{
			{
				Filename:    artifact.Name,
				ContentType: artifact.ContentType,
				Data:        artifact.Data,
			},
		},
	}

	if err := t.transport.Send(ctx, msg); err != nil {
		t.logger.Warn("delivery failed", "recipient", recipient, "error", err)
		result := Error(err.Error())
		result.Output["send_status"] = "error"
		result.Output["send_failure"] = err.Error()
		return result
	}

	t.logger.Info("final email sent", "recipient", recipient, "attachment", artifact.Name)
	return Success(map[string]any{
		"send_status": "success",
	})
}
