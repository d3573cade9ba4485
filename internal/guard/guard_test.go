package guard_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/courier/internal/guard"
)

func TestRedact(t *testing.T) {
	g := guard.New()

	t.Run("replaces confidential markers", func(t *testing.T) {
		text := "Contains Confidential Info 42 in the body."

		redacted, mapping := g.Redact(text, nil)

		if strings.Contains(redacted, "Confidential Info 42") {
			t.Error("sensitive value still present after redaction")
		}
		if !strings.Contains(redacted, "__CONFIDENTIAL_1__") {
			t.Errorf("expected placeholder in redacted text, got %q", redacted)
		}
		if mapping["__CONFIDENTIAL_1__"] != "Confidential Info 42" {
			t.Errorf("mapping mismatch: %v", mapping)
		}
	})

	t.Run("replaces date tokens", func(t *testing.T) {
		text := "Delivered on 2024-03-15 and 2024-04-01."

		redacted, mapping := g.Redact(text, nil)

		if strings.Contains(redacted, "2024-03-15") || strings.Contains(redacted, "2024-04-01") {
			t.Error("date tokens still present after redaction")
		}
		if mapping["__DATE_1__"] != "2024-03-15" {
			t.Errorf("first date mapping mismatch: %v", mapping)
		}
		if mapping["__DATE_2__"] != "2024-04-01" {
			t.Errorf("second date mapping mismatch: %v", mapping)
		}
	})

	t.Run("one counter spans all rules", func(t *testing.T) {
		text := "Confidential Info 9 was filed on 2024-03-15."

		redacted, mapping := g.Redact(text, nil)

		if !strings.Contains(redacted, "__CONFIDENTIAL_1__") {
			t.Errorf("expected __CONFIDENTIAL_1__ in %q", redacted)
		}
		if !strings.Contains(redacted, "__DATE_2__") {
			t.Errorf("expected __DATE_2__ (numbering continues across rules) in %q", redacted)
		}
		if mapping["__DATE_2__"] != "2024-03-15" {
			t.Errorf("mapping mismatch: %v", mapping)
		}
	})

	t.Run("text without matches passes through unchanged", func(t *testing.T) {
		text := "Nothing sensitive here."

		redacted, mapping := g.Redact(text, nil)

		if redacted != text {
			t.Errorf("expected unchanged text, got %q", redacted)
		}
		if len(mapping) != 0 {
			t.Errorf("expected empty mapping, got %v", mapping)
		}
	})

	t.Run("extends existing mapping without mutating it", func(t *testing.T) {
		existing := map[string]string{"__DATE_9__": "2020-01-01"}

		_, mapping := g.Redact("Due 2024-06-30.", existing)

		if mapping["__DATE_9__"] != "2020-01-01" {
			t.Error("existing entry dropped from extended mapping")
		}
		if mapping["__DATE_1__"] != "2024-06-30" {
			t.Errorf("new entry missing from extended mapping: %v", mapping)
		}
		if len(existing) != 1 {
			t.Error("existing mapping was mutated")
		}
	})

	t.Run("counter restarts each call", func(t *testing.T) {
		_, first := g.Redact("Due 2024-06-30.", nil)
		_, second := g.Redact("Due 2025-01-01.", first)

		// both passes assign __DATE_1__; the later value wins
		if second["__DATE_1__"] != "2025-01-01" {
			t.Errorf("expected counter restart, got %v", second)
		}
	})
}

func TestRestore(t *testing.T) {
	g := guard.New()

	t.Run("round trip returns original text", func(t *testing.T) {
		original := "Confidential Info 7 was filed on 2024-03-15."

		redacted, mapping := g.Redact(original, nil)
		restored := g.Restore(redacted, mapping)

		if restored != original {
			t.Errorf("round trip mismatch: got %q, want %q", restored, original)
		}
	})

	t.Run("text without placeholders passes through unchanged", func(t *testing.T) {
		text := "No placeholders present."

		restored := g.Restore(text, map[string]string{"__DATE_1__": "2024-03-15"})

		if restored != text {
			t.Errorf("expected unchanged text, got %q", restored)
		}
	})

	t.Run("nil mapping passes through unchanged", func(t *testing.T) {
		text := "Still __DATE_1__ here."

		if got := g.Restore(text, nil); got != text {
			t.Errorf("expected unchanged text, got %q", got)
		}
	})
}

func TestDesignations(t *testing.T) {
	g := guard.New()

	tests := []struct {
		tool      string
		wantArg   string
		wantResp  string
		wantFound bool
	}{
		{"translate_text", "text", "translated_text", true},
		{"check_translation", "original_text", "feedback_text", true},
		{"download_attachments", "", "", false},
		{"send_final_email", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.tool, func(t *testing.T) {
			arg, ok := g.ArgField(tc.tool)
			if ok != tc.wantFound || arg != tc.wantArg {
				t.Errorf("ArgField(%s) = %q, %v; want %q, %v", tc.tool, arg, ok, tc.wantArg, tc.wantFound)
			}

			resp, ok := g.ResponseField(tc.tool)
			if ok != tc.wantFound || resp != tc.wantResp {
				t.Errorf("ResponseField(%s) = %q, %v; want %q, %v", tc.tool, resp, ok, tc.wantResp, tc.wantFound)
			}
		})
	}
}

func TestMapKey(t *testing.T) {
	if got := guard.MapKey("translate_text"); got != "sensitive_map_translate_text" {
		t.Errorf("MapKey = %q", got)
	}
}
