package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/courier/internal/emails"
	"github.com/JaimeStill/courier/pkg/artifacts"
	"github.com/JaimeStill/courier/pkg/codec"
)

// Download persists inbound attachments to the artifact store so downstream
// tools reference them by (name, version) instead of raw bytes.
type Download struct {
	store   artifacts.Store
	workers int
	logger  *slog.Logger
}

// NewDownload creates the download_attachments tool. Uploads run with
// bounded concurrency capped at workers.
func NewDownload(store artifacts.Store, workers int, logger *slog.Logger) *Download {
	if workers < 1 {
		workers = 1
	}
	return &Download{
		store:   store,
		workers: workers,
		logger:  logger.With("tool", "download_attachments"),
	}
}

func (t *Download) Name() string { return "download_attachments" }

func (t *Download) Call(ctx context.Context, args Args) *Result {
	attachments, _ := args["attachments"].([]emails.Attachment)
	if len(attachments) == 0 {
		return Error("no attachments to download")
	}

	var mu sync.Mutex
	refs := make(map[string]int, len(attachments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(t.workers, len(attachments)))

	for _, a := range attachments {
		g.Go(func() error {
			if a.Filename == "" {
				return fmt.Errorf("attachment missing filename")
			}

			version, err := t.store.Save(gctx, a.Filename, a.Data, a.ContentType)
			if err != nil {
				return fmt.Errorf("save %s: %w", a.Filename, err)
			}

			mu.Lock()
			refs[a.Filename] = version
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.logger.Warn("attachment download failed", "error", err)
		return Error(err.Error())
	}

	first := attachments[0]
	return Success(map[string]any{
		"attachment_artifacts": refs,
		"original_file_format": codec.DetectFormat(first.ContentType, first.Filename),
	})
}
