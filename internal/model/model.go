// Package model wraps the language model invocation layer behind a
// single-method interface so workflow steps stay decoupled from any
// particular backend.
package model

import "context"

// Completer generates a text completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
