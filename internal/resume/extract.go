package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gen2brain/go-fitz"
)

// Short extractions are almost always a scanned PDF or a binary blob, not a
// usable resume.
const minExtractedChars = 50

// ExtractFile reads a resume file from disk and returns its plain text.
// PDFs go through MuPDF; anything else is treated as text.
func ExtractFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	default:
		return extractPlain(path)
	}
}

func extractPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var full strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", n+1, err)
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		full.WriteString(text)
		full.WriteString("\n\n")
	}

	result := strings.TrimSpace(full.String())
	if len(result) < minExtractedChars {
		return "", fmt.Errorf("pdf yielded %d chars of text; likely scanned or empty", len(result))
	}

	return result, nil
}

func extractPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read resume: %w", err)
	}

	// Strip non-printable bytes so a stray binary upload degrades instead of
	// polluting the heuristics.
	text := strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		return -1
	}, string(data))

	return strings.TrimSpace(text), nil
}

// AllowedExtensions lists the upload types the parser accepts.
var AllowedExtensions = []string{".pdf", ".txt", ".doc", ".docx"}

// ExtensionAllowed reports whether the filename carries an accepted resume
// extension.
func ExtensionAllowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
