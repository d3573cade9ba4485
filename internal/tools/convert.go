package tools

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/courier/pkg/artifacts"
	"github.com/JaimeStill/courier/pkg/codec"
)

// Convert authors a Word document from translated text and stores it as a
// new artifact.
type Convert struct {
	store  artifacts.Store
	logger *slog.Logger
}

// NewConvert creates the convert_to_word tool.
func NewConvert(store artifacts.Store, logger *slog.Logger) *Convert {
	return &Convert{
		store:  store,
		logger: logger.With("tool", "convert_to_word"),
	}
}

func (t *Convert) Name() string { return "convert_to_word" }

func (t *Convert) Call(ctx context.Context, args Args) *Result {
	text := args.String("translated_text")
	if text == "" {
		return Error("no translated text to convert")
	}

	data, err := codec.AuthorDocx(text)
	if err != nil {
		t.logger.Warn("docx authoring failed", "error", err)
		return Error(err.Error())
	}

	name := outputName(args.String("source_filename"))
	version, err := t.store.Save(ctx, name, data, codec.ContentTypeDocx)
	if err != nil {
		t.logger.Warn("artifact save failed", "name", name, "error", err)
		return Error(err.Error())
	}

	return Success(map[string]any{
		"translated_document_artifact": artifacts.Ref{Name: name, Version: version},
	})
}

func outputName(source string) string {
	if source == "" {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")
		return fmt.Sprintf("translated_document_%s.docx", id[:6])
	}

	base := strings.TrimSuffix(source, filepath.Ext(source))
	return base + "_translated.docx"
}
