package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/courier/pkg/artifacts"
	"github.com/JaimeStill/courier/pkg/codec"
)

// Extract pulls plain text out of stored attachments. The first attachment
// is the primary document; when a second attachment exists its text is also
// extracted as the candidate translation for review requests.
type Extract struct {
	store  artifacts.Store
	logger *slog.Logger
}

// NewExtract creates the extract_text tool.
func NewExtract(store artifacts.Store, logger *slog.Logger) *Extract {
	return &Extract{
		store:  store,
		logger: logger.With("tool", "extract_text"),
	}
}

func (t *Extract) Name() string { return "extract_text" }

func (t *Extract) Call(ctx context.Context, args Args) *Result {
	refs, _ := args["attachment_artifacts"].(map[string]int)
	filenames, _ := args["filenames"].([]string)

	if len(refs) == 0 || len(filenames) == 0 {
		return Error("no attachment artifacts to extract")
	}

	text, format, err := t.extract(ctx, refs, filenames[0])
	if err != nil {
		t.logger.Warn("extraction failed", "filename", filenames[0], "error", err)
		return Error(err.Error())
	}

	output := map[string]any{
		"extracted_text":       text,
		"original_file_format": format,
	}

	// a second attachment carries the candidate translation for review requests
	if len(filenames) > 1 {
		candidate, _, err := t.extract(ctx, refs, filenames[1])
		if err != nil {
			t.logger.Warn("candidate extraction failed", "filename", filenames[1], "error", err)
		} else {
			output["translated_text"] = candidate
		}
	}

	return Success(output)
}

func (t *Extract) extract(ctx context.Context, refs map[string]int, filename string) (string, string, error) {
	version, ok := refs[filename]
	if !ok {
		return "", "", fmt.Errorf("no artifact for %s", filename)
	}

	artifact, err := t.store.Load(ctx, filename, version)
	if err != nil {
		return "", "", fmt.Errorf("load %s: %w", filename, err)
	}

	text, format, err := codec.Extract(artifact.Data, artifact.ContentType, filename)
	if err != nil {
		return "", "", fmt.Errorf("extract %s: %w", filename, err)
	}

	return text, format, nil
}
