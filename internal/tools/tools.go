// Package tools implements the atomic units of work the workflow
// orchestrates: attachment download, text extraction, translation, quality
// review, document editing, document conversion, and final delivery.
//
// Tools communicate failure through structured results, never panics; the
// orchestrator interprets a missing output key as a gate failure.
package tools

import "context"

// Status reports whether a tool call succeeded.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Args carries the named inputs of one tool invocation.
type Args map[string]any

// String returns the named argument as a string, or empty when absent or
// of another type.
func (a Args) String(key string) string {
	v, _ := a[key].(string)
	return v
}

// Int returns the named argument as an int, tolerating the numeric types
// JSON decoding produces.
func (a Args) Int(key string) int {
	switch v := a[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Result is the structured outcome of one tool invocation. Output holds the
// named values a successful call produced; Message describes failures.
type Result struct {
	Status  Status         `json:"status"`
	Message string         `json:"message,omitempty"`
	Output  map[string]any `json:"-"`
}

// Success creates a success result carrying the given output values.
func Success(output map[string]any) *Result {
	return &Result{Status: StatusSuccess, Output: output}
}

// Error creates an error result with a descriptive message.
func Error(message string) *Result {
	return &Result{Status: StatusError, Message: message, Output: map[string]any{}}
}

// Tool is one atomic unit of workflow work.
type Tool interface {
	Name() string
	Call(ctx context.Context, args Args) *Result
}
