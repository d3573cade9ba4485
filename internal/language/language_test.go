package language_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/courier/internal/language"
)

type fakeCompleter struct {
	response string
	err      error
	prompt   string
}

func (c *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func TestTranslate(t *testing.T) {
	t.Run("returns model output", func(t *testing.T) {
		completer := &fakeCompleter{response: "Bonjour tout le monde."}
		translator := language.New(completer)

		got, err := translator.Translate(context.Background(), "Hello world.", "French")
		if err != nil {
			t.Fatalf("Translate error: %v", err)
		}
		if got != "Bonjour tout le monde." {
			t.Errorf("Translate = %q", got)
		}
		if !strings.Contains(completer.prompt, "French") {
			t.Error("target language missing from prompt")
		}
		if !strings.Contains(completer.prompt, "Hello world.") {
			t.Error("source text missing from prompt")
		}
	})

	t.Run("propagates model errors", func(t *testing.T) {
		completer := &fakeCompleter{err: errors.New("connection refused")}
		translator := language.New(completer)

		if _, err := translator.Translate(context.Background(), "Hello.", "French"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestCritique(t *testing.T) {
	t.Run("parses structured feedback", func(t *testing.T) {
		completer := &fakeCompleter{response: `{"feedback": "Accurate and complete.", "score": 9}`}
		translator := language.New(completer)

		got, err := translator.Critique(context.Background(), "Hello.", "Bonjour.")
		if err != nil {
			t.Fatalf("Critique error: %v", err)
		}
		if got.Text != "Accurate and complete." {
			t.Errorf("feedback = %q", got.Text)
		}
		if got.Score != 9 {
			t.Errorf("score = %d", got.Score)
		}
	})

	t.Run("parses fenced feedback", func(t *testing.T) {
		completer := &fakeCompleter{response: "```json\n{\"feedback\": \"Good.\", \"score\": 8}\n```"}
		translator := language.New(completer)

		got, err := translator.Critique(context.Background(), "Hello.", "Bonjour.")
		if err != nil {
			t.Fatalf("Critique error: %v", err)
		}
		if got.Score != 8 {
			t.Errorf("score = %d", got.Score)
		}
	})

	t.Run("rejects unparseable output", func(t *testing.T) {
		completer := &fakeCompleter{response: "looks fine to me"}
		translator := language.New(completer)

		if _, err := translator.Critique(context.Background(), "Hello.", "Bonjour."); err == nil {
			t.Error("expected parse error")
		}
	})
}
