package codec_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/courier/pkg/codec"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		filename    string
		want        string
	}{
		{"docx content type", codec.ContentTypeDocx, "report.bin", codec.FormatDocx},
		{"pdf content type", codec.ContentTypePDF, "report.bin", codec.FormatPDF},
		{"docx extension fallback", "application/octet-stream", "report.docx", codec.FormatDocx},
		{"pdf extension fallback", "", "report.pdf", codec.FormatPDF},
		{"case insensitive extension", "", "REPORT.DOCX", codec.FormatDocx},
		{"unknown defaults to text", "application/octet-stream", "notes.bin", codec.FormatText},
		{"empty inputs default to text", "", "", codec.FormatText},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := codec.DetectFormat(tc.contentType, tc.filename); got != tc.want {
				t.Errorf("DetectFormat(%q, %q) = %q, want %q", tc.contentType, tc.filename, got, tc.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		text, format, err := codec.Extract([]byte("Hello world."), "text/plain", "notes.txt")
		if err != nil {
			t.Fatalf("Extract error: %v", err)
		}
		if format != codec.FormatText {
			t.Errorf("format = %q", format)
		}
		if text != "Hello world." {
			t.Errorf("text = %q", text)
		}
	})

	t.Run("invalid utf8 is rejected", func(t *testing.T) {
		_, _, err := codec.Extract([]byte{0xff, 0xfe, 0xfd}, "", "raw.bin")
		if !errors.Is(err, codec.ErrNotText) {
			t.Errorf("error = %v, want ErrNotText", err)
		}
	})

	t.Run("malformed docx is rejected", func(t *testing.T) {
		_, _, err := codec.Extract([]byte("not a zip archive"), codec.ContentTypeDocx, "broken.docx")
		if !errors.Is(err, codec.ErrMalformed) {
			t.Errorf("error = %v, want ErrMalformed", err)
		}
	})

	t.Run("malformed pdf is rejected", func(t *testing.T) {
		_, _, err := codec.Extract([]byte("not a pdf"), codec.ContentTypePDF, "broken.pdf")
		if !errors.Is(err, codec.ErrMalformed) {
			t.Errorf("error = %v, want ErrMalformed", err)
		}
	})
}

func TestAuthorDocx(t *testing.T) {
	t.Run("authored document extracts to the same text", func(t *testing.T) {
		original := "First paragraph.\nSecond paragraph.\nThird paragraph."

		data, err := codec.AuthorDocx(original)
		if err != nil {
			t.Fatalf("AuthorDocx error: %v", err)
		}
		if len(data) == 0 {
			t.Fatal("authored document is empty")
		}

		text, format, err := codec.Extract(data, codec.ContentTypeDocx, "out.docx")
		if err != nil {
			t.Fatalf("Extract error: %v", err)
		}
		if format != codec.FormatDocx {
			t.Errorf("format = %q", format)
		}

		for _, line := range strings.Split(original, "\n") {
			if !strings.Contains(text, line) {
				t.Errorf("extracted text missing %q: %q", line, text)
			}
		}
	})

	t.Run("empty text still produces a document", func(t *testing.T) {
		data, err := codec.AuthorDocx("")
		if err != nil {
			t.Fatalf("AuthorDocx error: %v", err)
		}
		if len(data) == 0 {
			t.Error("authored document is empty")
		}
	})
}
