// Package codec converts between document formats and plain text.
// It extracts text from DOCX and PDF payloads and authors DOCX documents
// from plain text.
package codec

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Recognized document formats.
const (
	FormatDocx = "docx"
	FormatPDF  = "pdf"
	FormatText = "txt"
)

const (
	ContentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypePDF  = "application/pdf"
)

// DetectFormat resolves a document format from the declared content type,
// falling back to the filename extension when the content type is generic.
func DetectFormat(contentType, filename string) string {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case ContentTypeDocx:
		return FormatDocx
	case ContentTypePDF:
		return FormatPDF
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return FormatDocx
	case ".pdf":
		return FormatPDF
	}

	return FormatText
}

// Extract returns the plain text of a document payload along with the format
// it was decoded as. Unrecognized formats fall back to a raw UTF-8 decode.
func Extract(data []byte, contentType, filename string) (string, string, error) {
	switch DetectFormat(contentType, filename) {
	case FormatDocx:
		text, err := extractDocx(data)
		return text, FormatDocx, err
	case FormatPDF:
		text, err := extractPDF(data)
		return text, FormatPDF, err
	default:
		if !utf8.Valid(data) {
			return "", FormatText, ErrNotText
		}
		return string(data), FormatText, nil
	}
}

// AuthorDocx builds a DOCX document from plain text, one paragraph per line.
func AuthorDocx(text string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for _, line := range strings.Split(text, "\n") {
		doc.AddParagraph().AddText(line)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("author docx: %w", err)
	}

	return buf.Bytes(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch block := item.(type) {
		case *docx.Paragraph:
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(block.String())
		case *docx.Table:
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(block.String())
		}
	}

	return sb.String(), nil
}

func extractPDF(data []byte) (string, error) {
	// page count doubles as structural validation before text extraction
	pages, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if pages == 0 {
		return "", fmt.Errorf("%w: empty document", ErrMalformed)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	body, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	text, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return string(text), nil
}
