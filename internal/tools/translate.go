package tools

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/courier/internal/language"
)

// Translate renders document text into the target language.
type Translate struct {
	translator language.Translator
	logger     *slog.Logger
}

// NewTranslate creates the translate_text tool.
func NewTranslate(translator language.Translator, logger *slog.Logger) *Translate {
	return &Translate{
		translator: translator,
		logger:     logger.With("tool", "translate_text"),
	}
}

func (t *Translate) Name() string { return "translate_text" }

func (t *Translate) Call(ctx context.Context, args Args) *Result {
	text := args.String("text")
	target := args.String("target_language")

	if text == "" {
		return Error("no text to translate")
	}
	if target == "" {
		return Error("no target language")
	}

	translated, err := t.translator.Translate(ctx, text, target)
	if err != nil {
		t.logger.Warn("translation failed", "error", err)
		return Error(err.Error())
	}

	return Success(map[string]any{
		"translated_text": translated,
	})
}
