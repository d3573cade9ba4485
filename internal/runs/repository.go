package runs

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/courier/pkg/repository"
)

const projection = `id, sender_email, subject, email_type, outcome, message, created_at`

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a run repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "runs"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Record(ctx context.Context, cmd RecordCommand) (*Run, error) {
	insertQ := fmt.Sprintf(`
		INSERT INTO runs(id, sender_email, subject, email_type, outcome, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, projection)

	insertArgs := []any{
		cmd.ID,
		cmd.SenderEmail,
		cmd.Subject,
		cmd.EmailType,
		cmd.Outcome,
		cmd.Message,
	}

	run, err := repository.QueryOne(ctx, r.db, insertQ, insertArgs, scanRun)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("run recorded",
		"id", run.ID,
		"email_type", run.EmailType,
		"outcome", run.Outcome,
	)
	return &run, nil
}

func (r *repo) List(ctx context.Context, limit, offset int) ([]Run, error) {
	listQ := fmt.Sprintf(`
		SELECT %s FROM runs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, projection)

	items, err := repository.QueryMany(ctx, r.db, listQ, []any{limit, offset}, scanRun)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	return items, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Run, error) {
	findQ := fmt.Sprintf(`SELECT %s FROM runs WHERE id = $1`, projection)

	run, err := repository.QueryOne(ctx, r.db, findQ, []any{id}, scanRun)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &run, nil
}

func scanRun(s repository.Scanner) (Run, error) {
	var run Run
	err := s.Scan(
		&run.ID,
		&run.SenderEmail,
		&run.Subject,
		&run.EmailType,
		&run.Outcome,
		&run.Message,
		&run.CreatedAt,
	)
	return run, err
}
