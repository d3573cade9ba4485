package workflow

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/courier/internal/emails"
	"github.com/JaimeStill/courier/internal/runs"
)

// Recorder persists run records. Recording is best-effort: a failure is
// logged and never fails the workflow run.
type Recorder interface {
	Record(ctx context.Context, cmd runs.RecordCommand) (*runs.Run, error)
}

// Service runs the workflow for inbound emails and records each run.
type Service struct {
	rt       *Runtime
	recorder Recorder
	logger   *slog.Logger
}

// NewService creates a workflow Service. The recorder may be nil, in which
// case runs are not persisted.
func NewService(rt *Runtime, recorder Recorder) *Service {
	return &Service{
		rt:       rt,
		recorder: recorder,
		logger:   rt.Logger.With("system", "workflow"),
	}
}

// Process executes one isolated workflow run for the inbound email and
// returns its terminal result.
func (svc *Service) Process(ctx context.Context, msg emails.Message) (*Result, error) {
	result, err := Execute(ctx, svc.rt, msg)
	if err != nil {
		return nil, err
	}

	svc.logger.InfoContext(ctx, "workflow run finished",
		"run_id", result.RunID,
		"email_type", result.EmailType,
		"outcome", result.Outcome,
	)

	svc.record(ctx, msg, result)
	return result, nil
}

func (svc *Service) record(ctx context.Context, msg emails.Message, result *Result) {
	if svc.recorder == nil {
		return
	}

	_, err := svc.recorder.Record(ctx, runs.RecordCommand{
		ID:          result.RunID,
		SenderEmail: msg.SenderEmail,
		Subject:     msg.Subject,
		EmailType:   string(result.EmailType),
		Outcome:     string(result.Outcome),
		Message:     result.Message,
	})
	if err != nil {
		svc.logger.WarnContext(ctx, "run record failed", "run_id", result.RunID, "error", err)
	}
}
