package tools

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/courier/internal/model"
	"github.com/JaimeStill/courier/internal/prompts"
	"github.com/JaimeStill/courier/pkg/artifacts"
	"github.com/JaimeStill/courier/pkg/codec"
)

// Edit applies edit instructions to a stored document and saves the result
// as a new version under the same artifact name. The prior version remains
// retrievable.
type Edit struct {
	store     artifacts.Store
	completer model.Completer
	logger    *slog.Logger
}

// NewEdit creates the edit_word_doc tool.
func NewEdit(store artifacts.Store, completer model.Completer, logger *slog.Logger) *Edit {
	return &Edit{
		store:     store,
		completer: completer,
		logger:    logger.With("tool", "edit_word_doc"),
	}
}

func (t *Edit) Name() string { return "edit_word_doc" }

func (t *Edit) Call(ctx context.Context, args Args) *Result {
	name := args.String("artifact_name")
	version := args.Int("artifact_version")
	editInstructions := args.String("edit_instructions")

	if name == "" {
		return Error("no artifact to edit")
	}
	if editInstructions == "" {
		return Error("no edit instructions")
	}

	artifact, err := t.store.Load(ctx, name, version)
	if err != nil {
		t.logger.Warn("artifact load failed", "name", name, "version", version, "error", err)
		return Error(err.Error())
	}

	text, _, err := codec.Extract(artifact.Data, artifact.ContentType, name)
	if err != nil {
		t.logger.Warn("document decode failed", "name", name, "error", err)
		return Error(err.Error())
	}

	prompt, err := prompts.Edit(text, editInstructions)
	if err != nil {
		return Error(err.Error())
	}

	revised, err := t.completer.Complete(ctx, prompt)
	if err != nil {
		t.logger.Warn("revision failed", "name", name, "error", err)
		return Error(err.Error())
	}

	data, err := codec.AuthorDocx(revised)
	if err != nil {
		return Error(err.Error())
	}

	newVersion, err := t.store.Save(ctx, name, data, codec.ContentTypeDocx)
	if err != nil {
		t.logger.Warn("artifact save failed", "name", name, "error", err)
		return Error(err.Error())
	}

	return Success(map[string]any{
		"edited_document_artifact": artifacts.Ref{Name: name, Version: newVersion},
	})
}
