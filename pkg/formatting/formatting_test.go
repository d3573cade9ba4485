package formatting_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/courier/pkg/formatting"
)

type feedback struct {
	Text  string `json:"feedback"`
	Score int    `json:"score"`
}

func TestParse(t *testing.T) {
	t.Run("direct json", func(t *testing.T) {
		got, err := formatting.Parse[feedback](`{"feedback": "Accurate.", "score": 9}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Text != "Accurate." || got.Score != 9 {
			t.Errorf("Parse = %+v", got)
		}
	})

	t.Run("json inside code fence", func(t *testing.T) {
		content := "Here is the review:\n```json\n{\"feedback\": \"Good.\", \"score\": 8}\n```"

		got, err := formatting.Parse[feedback](content)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Text != "Good." || got.Score != 8 {
			t.Errorf("Parse = %+v", got)
		}
	})

	t.Run("unfenced prose fails", func(t *testing.T) {
		_, err := formatting.Parse[feedback]("The translation looks fine to me.")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("error = %v, want ErrParseFailed", err)
		}
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		got, err := formatting.Parse[feedback]("  \n{\"feedback\": \"Fine.\", \"score\": 7}\n  ")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Score != 7 {
			t.Errorf("Parse = %+v", got)
		}
	})
}

func TestParseWord(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bare word", "translation", "translation"},
		{"trailing period", "Translation.", "translation"},
		{"quoted", `"review"`, "review"},
		{"extra prose", "other things follow", "other"},
		{"surrounding whitespace", "  review  ", "review"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatting.ParseWord(tc.content); got != tc.want {
				t.Errorf("ParseWord(%q) = %q, want %q", tc.content, got, tc.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{"zero", 0, 2, "0 B"},
		{"bytes", 512, 0, "512 B"},
		{"kilobytes", 2048, 1, "2.0 KB"},
		{"megabytes", 50 * 1024 * 1024, 0, "50 MB"},
		{"negative precision clamps", 1024, -3, "1 KB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatting.FormatBytes(tc.n, tc.precision); got != tc.want {
				t.Errorf("FormatBytes(%d, %d) = %q, want %q", tc.n, tc.precision, got, tc.want)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"megabytes", "50MB", 50 * 1024 * 1024, false},
		{"gigabytes with space", "1 GB", 1024 * 1024 * 1024, false},
		{"bare number", "4096", 4096, false},
		{"lowercase unit", "10mb", 10 * 1024 * 1024, false},
		{"empty", "", 0, true},
		{"unknown unit", "5XB", 0, true},
		{"garbage", "lots", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseBytes(%q) expected error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBytes(%q) error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}
