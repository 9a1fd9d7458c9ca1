// Package kb loads the static knowledge base injected into every prompt:
// the contents of a directory of reference documents, concatenated into
// one text blob at startup.
package kb

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Load reads every supported document in dir and joins them with blank
// lines. Markdown and plain-text files are taken verbatim; PDF files are
// reduced to their plain text. The order across files is not significant.
// A missing directory or a directory yielding no text is an error: the
// server cannot answer meaningfully without its knowledge base.
func Load(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read knowledge base directory: %w", err)
	}

	var blocks []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		path := filepath.Join(dir, e.Name())
		var text string
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".md", ".txt":
			b, err := os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("failed to read %s: %w", e.Name(), err)
			}
			text = strings.TrimSpace(string(b))
		case ".pdf":
			text, err = extractPDF(path)
			if err != nil {
				return "", fmt.Errorf("failed to extract %s: %w", e.Name(), err)
			}
		default:
			continue
		}

		if text != "" {
			blocks = append(blocks, text)
		}
	}

	if len(blocks) == 0 {
		return "", fmt.Errorf("knowledge base directory %s contains no documents", dir)
	}

	return strings.Join(blocks, "\n\n"), nil
}

func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	text := normalizeExtractedText(b.String())
	if text == "" {
		return "", fmt.Errorf("no extractable text found in pdf")
	}

	return text, nil
}

func normalizeExtractedText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	buf := bytes.Buffer{}

	emptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			emptyCount++
			if emptyCount > 1 {
				continue
			}
			buf.WriteString("\n")
			continue
		}
		emptyCount = 0
		buf.WriteString(trimmed)
		buf.WriteString("\n")
	}

	return strings.TrimSpace(buf.String())
}
