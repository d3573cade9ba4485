package runs

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for run record operations.
type System interface {
	Handler() *Handler

	Record(ctx context.Context, cmd RecordCommand) (*Run, error)
	List(ctx context.Context, limit, offset int) ([]Run, error)
	Find(ctx context.Context, id uuid.UUID) (*Run, error)
}
