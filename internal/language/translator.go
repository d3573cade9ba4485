package language

import (
	"context"
	"fmt"

	"github.com/JaimeStill/courier/internal/model"
	"github.com/JaimeStill/courier/internal/prompts"
	"github.com/JaimeStill/courier/pkg/formatting"
)

type translator struct {
	completer model.Completer
}

// New creates a Translator that delegates to the model invocation layer.
func New(completer model.Completer) Translator {
	return &translator{completer: completer}
}

func (t *translator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt, err := prompts.Translate(text, targetLanguage)
	if err != nil {
		return "", err
	}

	translated, err := t.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}

	return translated, nil
}

func (t *translator) Critique(ctx context.Context, original, translated string) (*Feedback, error) {
	prompt, err := prompts.Critique(original, translated)
	if err != nil {
		return nil, err
	}

	content, err := t.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("critique: %w", err)
	}

	feedback, err := formatting.Parse[Feedback](content)
	if err != nil {
		return nil, fmt.Errorf("parse critique response: %w", err)
	}

	return &feedback, nil
}
