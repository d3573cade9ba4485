package tools

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/courier/internal/language"
)

// Check reviews a translation against its original and reports feedback
// with an advisory quality score.
type Check struct {
	translator language.Translator
	logger     *slog.Logger
}

// NewCheck creates the check_translation tool.
func NewCheck(translator language.Translator, logger *slog.Logger) *Check {
	return &Check{
		translator: translator,
		logger:     logger.With("tool", "check_translation"),
	}
}

func (t *Check) Name() string { return "check_translation" }

func (t *Check) Call(ctx context.Context, args Args) *Result {
	original := args.String("original_text")
	translated := args.String("translated_text")

	if original == "" || translated == "" {
		return Error("both original and translated text are required")
	}

	feedback, err := t.translator.Critique(ctx, original, translated)
	if err != nil {
		t.logger.Warn("translation check failed", "error", err)
		return Error(err.Error())
	}

	return Success(map[string]any{
		"feedback_text": feedback.Text,
		"score":         feedback.Score,
	})
}
