// Package language provides translation and translation quality review
// backed by the model invocation layer.
package language

import "context"

// Feedback is the result of a translation quality review.
type Feedback struct {
	Text  string `json:"feedback"`
	Score int    `json:"score"`
}

// Translator translates document text and critiques existing translations.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
	Critique(ctx context.Context, original, translated string) (*Feedback, error)
}
